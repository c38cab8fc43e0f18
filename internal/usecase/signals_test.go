package usecase

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func extract(t *testing.T, markup, pageURL string) Signals {
	t.Helper()
	return ExtractSignals(parseDoc(t, markup), ReduceMarkup(markup), pageURL)
}

func TestExtractSignalsTitle(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "product heading class wins over plain h1",
			markup:   `<h1>Nav Junk</h1><h1 class="product-title">Linen Shirt</h1>`,
			expected: "Linen Shirt",
		},
		{
			name:     "plain h1",
			markup:   `<h1>Widget</h1>`,
			expected: "Widget",
		},
		{
			name:     "og title when no heading",
			markup:   `<head><meta property="og:title" content="Meta Widget"></head>`,
			expected: "Meta Widget",
		},
		{
			name:     "document title as last resort",
			markup:   `<head><title>Shop | Widget</title></head>`,
			expected: "Shop | Widget",
		},
		{
			name:     "no match yields empty",
			markup:   `<p>nothing here</p>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := extract(t, tt.markup, "https://example.com/p/1")
			assert.Equal(t, tt.expected, sig.Title)
		})
	}
}

func TestExtractSignalsPrice(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "price class span",
			markup:   `<span class="price">$19.99</span>`,
			expected: "19.99",
		},
		{
			name:     "thousands separator stripped",
			markup:   `<div class="product-price">$1,299.00</div>`,
			expected: "1299.00",
		},
		{
			name:     "four digits without separator stay whole",
			markup:   `<span class="price">$1299.99</span>`,
			expected: "1299.99",
		},
		{
			name:     "currency scan keeps four digits whole",
			markup:   `<p>now only $1299.99 while stocks last</p>`,
			expected: "1299.99",
		},
		{
			name:     "itemprop content attribute",
			markup:   `<meta itemprop="price" content="42.50">`,
			expected: "42.50",
		},
		{
			name:     "og price meta",
			markup:   `<meta property="og:price:amount" content="15.00">`,
			expected: "15.00",
		},
		{
			name:     "currency scan over text",
			markup:   `<p>Our best seller at only $7.25 today</p>`,
			expected: "7.25",
		},
		{
			name:     "no price",
			markup:   `<p>contact us for pricing</p>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := extract(t, tt.markup, "https://example.com/p/1")
			assert.Equal(t, tt.expected, sig.Price)
		})
	}
}

func TestExtractSignalsCategory(t *testing.T) {
	t.Run("breadcrumb last-but-one", func(t *testing.T) {
		markup := `<nav class="breadcrumbs">
			<a href="/">Home</a>
			<a href="/c/shoes">Shoes</a>
			<a href="/p/1">Runner X</a>
		</nav>`
		sig := extract(t, markup, "https://example.com/p/1")
		assert.Equal(t, "Shoes", sig.Category)
	})

	t.Run("url path collections segment", func(t *testing.T) {
		sig := extract(t, `<p>x</p>`, "https://shop.example.com/collections/summer-dresses/products/maxi")
		assert.Equal(t, "summer dresses", sig.Category)
	})

	t.Run("no category", func(t *testing.T) {
		sig := extract(t, `<p>x</p>`, "https://example.com/p/1")
		assert.Equal(t, "", sig.Category)
	})
}

func TestExtractSignalsDescription(t *testing.T) {
	t.Run("meta description", func(t *testing.T) {
		markup := `<head><meta name="description" content="A soft linen shirt."></head>`
		sig := extract(t, markup, "https://example.com/p/1")
		assert.Equal(t, "A soft linen shirt.", sig.Description)
	})

	t.Run("description class fallback", func(t *testing.T) {
		markup := `<div class="product-description">Handmade from oak.</div>`
		sig := extract(t, markup, "https://example.com/p/1")
		assert.Equal(t, "Handmade from oak.", sig.Description)
	})
}

func TestSignalsCount(t *testing.T) {
	assert.Equal(t, 0, Signals{}.Count())
	assert.Equal(t, 2, Signals{Title: "x", Price: "1.00"}.Count())
	assert.Equal(t, 3, Signals{Title: "x", Sizes: []string{"S"}, Colors: []string{"Red"}}.Count())
}

// The title and price signals from a minimal product page must survive all
// the way into the assembled prompt.
func TestSignalsReachAssembledPrompt(t *testing.T) {
	markup := `<h1>Widget</h1><span class="price">$19.99</span>`
	sig := extract(t, markup, "https://example.com/widget")
	require.GreaterOrEqual(t, sig.Count(), 2)

	prompt := AssemblePrompt("https://example.com/widget", ReduceMarkup(markup), sig)
	assert.Contains(t, prompt, "Title: Widget")
	assert.Contains(t, prompt, "Price: 19.99")
}
