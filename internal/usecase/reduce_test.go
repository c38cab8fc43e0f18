package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script blocks",
			input:    `<p>Hello</p><script type="text/javascript">var x = 1;</script><p>World</p>`,
			expected: `<p>Hello</p> <p>World</p>`,
		},
		{
			name:     "strips style blocks",
			input:    `<style>.a { color: red; }</style><h1>Title</h1>`,
			expected: `<h1>Title</h1>`,
		},
		{
			name:     "strips svg blocks",
			input:    `<svg viewBox="0 0 10 10"><path d="M0 0"/></svg><span>x</span>`,
			expected: `<span>x</span>`,
		},
		{
			name:     "strips comments",
			input:    `<!-- nav starts here --><nav>menu</nav>`,
			expected: `<nav>menu</nav>`,
		},
		{
			name:     "strips noscript blocks",
			input:    `<noscript>enable js</noscript><p>ok</p>`,
			expected: `<p>ok</p>`,
		},
		{
			name:     "collapses whitespace runs",
			input:    "<p>one\n\n\t  two</p>",
			expected: `<p>one two</p>`,
		},
		{
			name:     "case-insensitive tag matching",
			input:    `<SCRIPT>alert(1)</SCRIPT><b>kept</b>`,
			expected: `<b>kept</b>`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReduceMarkup(tt.input))
		})
	}
}

func TestReduceMarkupMultipleBlocks(t *testing.T) {
	input := `<script>a</script><p>keep</p><script>b</script>`
	assert.Equal(t, `<p>keep</p>`, ReduceMarkup(input))
}
