package usecase

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Signals is the ephemeral bag of product hints pulled from one page. It
// lives for a single request and is discarded after prompt assembly.
type Signals struct {
	Title       string
	Price       string
	Category    string
	Description string
	Sizes       []string
	Colors      []string
}

// Count returns how many fields were detected. The prompt assembler switches
// to the raw-excerpt-only form when fewer than two were found.
func (s Signals) Count() int {
	count := 0
	for _, v := range []string{s.Title, s.Price, s.Category, s.Description} {
		if v != "" {
			count++
		}
	}
	if len(s.Sizes) > 0 {
		count++
	}
	if len(s.Colors) > 0 {
		count++
	}
	return count
}

// signalInput bundles everything a detector rule may inspect.
type signalInput struct {
	doc     *goquery.Document
	reduced string
	pageURL string
}

// signalRule is one named detector: it either finds a value or returns "".
// Rules for a field run in priority order; the first non-empty value wins.
type signalRule struct {
	name string
	find func(in signalInput) string
}

func runRules(rules []signalRule, in signalInput) string {
	for _, rule := range rules {
		if v := rule.find(in); v != "" {
			return v
		}
	}
	return ""
}

// selectorText returns the trimmed text of the first element matching sel.
func selectorText(sel string) func(in signalInput) string {
	return func(in signalInput) string {
		return strings.TrimSpace(in.doc.Find(sel).First().Text())
	}
}

// metaContent returns the content attribute of a meta tag by property or name.
func metaContent(key string) func(in signalInput) string {
	return func(in signalInput) string {
		content, _ := in.doc.Find("meta[property='" + key + "'], meta[name='" + key + "']").First().Attr("content")
		return strings.TrimSpace(content)
	}
}

var titleRules = []signalRule{
	{name: "product heading class", find: selectorText("h1[class*=product], h1[class*=title]")},
	{name: "first heading", find: selectorText("h1")},
	{name: "og title", find: metaContent("og:title")},
	{name: "document title", find: selectorText("title")},
}

// The grouped branch must require at least one comma group: alternation is
// leftmost-first, so an optional-group form would clip "1299" to "129".
var pricePattern = regexp.MustCompile(`(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`)

// currencyPattern finds a currency-marked amount anywhere in the reduced text.
var currencyPattern = regexp.MustCompile(`[$£€]\s*(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`)

// normalizePrice reduces a matched snippet like "$1,299.00 USD" to "1299.00".
func normalizePrice(snippet string) string {
	match := pricePattern.FindString(snippet)
	return strings.ReplaceAll(match, ",", "")
}

func priceFrom(find func(in signalInput) string) func(in signalInput) string {
	return func(in signalInput) string {
		return normalizePrice(find(in))
	}
}

var priceRules = []signalRule{
	{name: "price class", find: priceFrom(selectorText("[class*=price]"))},
	{name: "itemprop content", find: priceFrom(func(in signalInput) string {
		content, _ := in.doc.Find("[itemprop=price]").First().Attr("content")
		return content
	})},
	{name: "itemprop text", find: priceFrom(selectorText("[itemprop=price]"))},
	{name: "og price", find: priceFrom(metaContent("og:price:amount"))},
	{name: "product price meta", find: priceFrom(metaContent("product:price:amount"))},
	{name: "currency scan", find: func(in signalInput) string {
		return normalizePrice(currencyPattern.FindString(in.reduced))
	}},
}

// categorySegments are URL path markers whose following segment names the
// product category on most storefronts (/collections/dresses/..., /c/shoes).
var categorySegments = map[string]bool{
	"collections": true,
	"category":    true,
	"categories":  true,
	"c":           true,
	"shop":        true,
}

var categoryRules = []signalRule{
	{name: "breadcrumb", find: func(in signalInput) string {
		links := in.doc.Find("[class*=breadcrumb] a")
		// last-but-one crumb: the last is usually the product itself
		if links.Length() >= 2 {
			return strings.TrimSpace(links.Eq(links.Length() - 2).Text())
		}
		if links.Length() == 1 {
			return strings.TrimSpace(links.First().Text())
		}
		return ""
	}},
	{name: "category meta", find: metaContent("product:category")},
	{name: "section meta", find: metaContent("article:section")},
	{name: "url path", find: func(in signalInput) string {
		u, err := url.Parse(in.pageURL)
		if err != nil {
			return ""
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i := 0; i < len(segments)-1; i++ {
			if categorySegments[strings.ToLower(segments[i])] {
				return humanizeSlug(segments[i+1])
			}
		}
		return ""
	}},
}

var descriptionRules = []signalRule{
	{name: "meta description", find: metaContent("description")},
	{name: "og description", find: metaContent("og:description")},
	{name: "description class", find: selectorText("[class*=product-description], [class*=description]")},
	{name: "itemprop description", find: selectorText("[itemprop=description]")},
}

// humanizeSlug turns "summer-dresses" into "summer dresses".
func humanizeSlug(slug string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " "))
}

// ExtractSignals runs every detector over the page. Extractors are
// independent and side-effect-free; an undetected field stays empty rather
// than producing an error.
func ExtractSignals(doc *goquery.Document, reduced, pageURL string) Signals {
	in := signalInput{doc: doc, reduced: reduced, pageURL: pageURL}
	return Signals{
		Title:       runRules(titleRules, in),
		Price:       runRules(priceRules, in),
		Category:    runRules(categoryRules, in),
		Description: runRules(descriptionRules, in),
		Sizes:       ExtractOptions(doc, "size"),
		Colors:      ExtractColorOptions(doc),
	}
}
