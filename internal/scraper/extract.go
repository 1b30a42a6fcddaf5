package scraper

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// firstText returns the trimmed text of the first selector that matches an
// element with non-empty text. Selector order is a priority chain: earlier
// entries are site-specific, later ones generic.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := cleanText(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// metaContent returns the trimmed content attribute of the first element
// matched by selector, or "" when unmatched or blank.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// visibleText flattens the whole document into a single space-separated
// string for the free-text fallbacks.
func visibleText(doc *goquery.Document) string {
	return cleanText(doc.Text())
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}
