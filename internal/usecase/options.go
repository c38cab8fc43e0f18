package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// maxOptionLength bounds option labels; anything this long is noise scooped
// up from surrounding markup, not a size or color value.
const maxOptionLength = 20

// containerSelectors are the places a field's option values tend to live,
// tried in order. The %s is the field name ("size", "color").
var containerSelectors = []string{
	"select[name*=%s]",
	"select[id*=%s]",
	"select[class*=%s]",
	"[class*=%s] select",
	"ul[class*=%s]",
	"div[class*=%s][class*=option]",
	"div[class*=%s][class*=swatch]",
	"fieldset[class*=%s]",
	"[data-option-name*=%s]",
	"div[class*=%s]",
}

// itemSelector matches the option-like sub-elements inside a container.
const itemSelector = "option, li, button, a, label, [data-value]"

// unavailableKeywords mark an option as not purchasable; such options are
// excluded rather than surfaced.
var unavailableKeywords = []string{
	"disabled", "sold-out", "sold out", "soldout",
	"out-of-stock", "out of stock", "unavailable",
}

// placeholderPrefixes are non-value labels that selects commonly lead with.
var placeholderPrefixes = []string{"select", "choose", "pick a", "--"}

// ExtractOptions locates the first container that looks like it holds the
// field's options and collects the available item labels from it:
// unavailable items are excluded, placeholder labels and overlong strings are
// dropped, and the result is deduplicated case-sensitively in page order.
func ExtractOptions(doc *goquery.Document, field string) []string {
	container := findContainer(doc, field)
	if container == nil {
		return nil
	}
	return collectItems(container)
}

func findContainer(doc *goquery.Document, field string) *goquery.Selection {
	for _, pattern := range containerSelectors {
		sel := strings.ReplaceAll(pattern, "%s", field)
		if container := doc.Find(sel).First(); container.Length() > 0 {
			// a container with no option-like children is a false hit;
			// keep trying the lower-priority patterns
			if container.Find(itemSelector).Length() > 0 {
				return container
			}
		}
	}
	return nil
}

func collectItems(container *goquery.Selection) []string {
	var options []string
	seen := make(map[string]bool)

	container.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		if isUnavailable(item) {
			return
		}
		text := strings.TrimSpace(item.Text())
		if text == "" || isPlaceholder(text) || utf8.RuneCountInString(text) >= maxOptionLength {
			return
		}
		if seen[text] {
			return
		}
		seen[text] = true
		options = append(options, text)
	})

	return options
}

func isUnavailable(item *goquery.Selection) bool {
	if _, disabled := item.Attr("disabled"); disabled {
		return true
	}
	class, _ := item.Attr("class")
	haystack := strings.ToLower(item.Text() + " " + class)
	for _, keyword := range unavailableKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func isPlaceholder(text string) bool {
	lower := strings.ToLower(text)
	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// colorVocabulary is the fixed set of color names cross-checked against the
// markup. Matches are reported in this canonical casing.
var colorVocabulary = []string{
	"Black", "White", "Red", "Blue", "Green", "Yellow", "Orange",
	"Purple", "Pink", "Brown", "Grey", "Gray", "Beige", "Navy",
	"Teal", "Maroon", "Olive", "Cream", "Gold", "Silver", "Khaki",
	"Burgundy", "Ivory", "Turquoise",
}

// swatchSelector limits the vocabulary scan to elements that plausibly
// represent a color choice; matching arbitrary page text would drown the
// result in false positives from product copy.
const swatchSelector = "[data-color], [style*=background], [class*=swatch], [class*=color]"

// ExtractColorOptions combines the generic container extraction for "color"
// with a vocabulary cross-check over swatch-like elements: element text,
// inline background-color styles, class tokens and data-color attributes all
// count as evidence. The union preserves container order first, then
// vocabulary order.
func ExtractColorOptions(doc *goquery.Document) []string {
	colors := ExtractOptions(doc, "color")
	seen := make(map[string]bool, len(colors))
	for _, c := range colors {
		seen[c] = true
	}

	found := make(map[string]bool)
	doc.Find(swatchSelector).Each(func(_ int, el *goquery.Selection) {
		if isUnavailable(el) {
			return
		}
		style, _ := el.Attr("style")
		class, _ := el.Attr("class")
		dataColor, _ := el.Attr("data-color")
		haystack := strings.ToLower(strings.Join([]string{
			el.Text(), backgroundColorValue(style), class, dataColor,
		}, " "))
		for _, name := range colorVocabulary {
			if strings.Contains(haystack, strings.ToLower(name)) {
				found[name] = true
			}
		}
	})

	for _, name := range colorVocabulary {
		if found[name] && !seen[name] {
			seen[name] = true
			colors = append(colors, name)
		}
	}
	return colors
}

// backgroundColorValue pulls the value of a background/background-color
// declaration out of an inline style string.
func backgroundColorValue(style string) string {
	lower := strings.ToLower(style)
	idx := strings.Index(lower, "background")
	if idx < 0 {
		return ""
	}
	rest := lower[idx:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return ""
	}
	value := rest[colon+1:]
	if semi := strings.Index(value, ";"); semi >= 0 {
		value = value[:semi]
	}
	return strings.TrimSpace(value)
}
