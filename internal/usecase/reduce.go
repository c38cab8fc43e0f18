package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	scriptPattern     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	stylePattern      = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	svgPattern        = regexp.MustCompile(`(?is)<svg\b[^>]*>.*?</svg>`)
	noscriptPattern   = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript>`)
	commentPattern    = regexp.MustCompile(`(?s)<!--.*?-->`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ReduceMarkup strips the markup regions that never carry product signals
// (scripts, styles, inline vector graphics, comments) and collapses
// whitespace runs, so prompt excerpts spend their budget on visible content.
func ReduceMarkup(raw string) string {
	reduced := scriptPattern.ReplaceAllString(raw, " ")
	reduced = stylePattern.ReplaceAllString(reduced, " ")
	reduced = svgPattern.ReplaceAllString(reduced, " ")
	reduced = noscriptPattern.ReplaceAllString(reduced, " ")
	reduced = commentPattern.ReplaceAllString(reduced, " ")
	reduced = whitespacePattern.ReplaceAllString(reduced, " ")
	return strings.TrimSpace(reduced)
}
