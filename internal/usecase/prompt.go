package usecase

import (
	"strings"
	"unicode/utf8"
)

const (
	// signalExcerptChars is the raw-markup excerpt appended when signals
	// were found; the excerpt is just extra context for the model.
	signalExcerptChars = 2000
	// rawExcerptChars is the larger excerpt used when extraction found
	// almost nothing and the model has to work from the page itself.
	rawExcerptChars = 6000
	// maxPromptChars bounds the assembled prompt to cap token usage.
	maxPromptChars = 8000
)

// minSignalsForLabeledPrompt is the threshold between the labeled-signal and
// raw-excerpt prompt forms.
const minSignalsForLabeledPrompt = 2

// AssemblePrompt builds the bounded text block sent to the completion
// endpoint. With at least two detected signals it emits one labeled line per
// found field plus a short raw excerpt; otherwise just the URL and a larger
// excerpt.
func AssemblePrompt(pageURL, reduced string, sig Signals) string {
	var b strings.Builder
	b.WriteString("URL: ")
	b.WriteString(pageURL)
	b.WriteString("\n")

	if sig.Count() >= minSignalsForLabeledPrompt {
		writeLine(&b, "Title", sig.Title)
		writeLine(&b, "Price", sig.Price)
		writeLine(&b, "Sizes", strings.Join(sig.Sizes, ", "))
		writeLine(&b, "Colors", strings.Join(sig.Colors, ", "))
		writeLine(&b, "Category", sig.Category)
		writeLine(&b, "Description", sig.Description)
		writeExcerpt(&b, reduced, signalExcerptChars)
	} else {
		writeExcerpt(&b, reduced, rawExcerptChars)
	}

	return truncateAtRune(b.String(), maxPromptChars)
}

// truncateAtRune cuts s to at most limit bytes without splitting a rune.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	s = s[:limit]
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func writeExcerpt(b *strings.Builder, reduced string, limit int) {
	if reduced == "" {
		return
	}
	reduced = truncateAtRune(reduced, limit)
	b.WriteString("\nPage excerpt:\n")
	b.WriteString(reduced)
}
