package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}

func TestJobPostingFromDoc_SingleObject(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">
{"@type": "JobPosting", "title": "Go Developer", "hiringOrganization": {"name": "Acme"}}
</script>
</head><body></body></html>`

	posting, ok := jobPostingFromDoc(mustDoc(t, html))
	if !ok {
		t.Fatalf("expected a posting")
	}
	if got := stringValue(posting["title"]); got != "Go Developer" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestJobPostingFromDoc_ListAndGraphWrappers(t *testing.T) {
	cases := []struct {
		name string
		html string
	}{
		{
			"list",
			`<script type="application/ld+json">
			[{"@type": "WebPage"}, {"@type": "JobPosting", "title": "SRE"}]
			</script>`,
		},
		{
			"graph",
			`<script type="application/ld+json">
			{"@graph": [{"@type": "Organization"}, {"@type": "JobPosting", "title": "SRE"}]}
			</script>`,
		},
	}

	for _, tc := range cases {
		posting, ok := jobPostingFromDoc(mustDoc(t, "<html><head>"+tc.html+"</head></html>"))
		if !ok {
			t.Fatalf("%s: expected a posting", tc.name)
		}
		if got := stringValue(posting["title"]); got != "SRE" {
			t.Fatalf("%s: unexpected title: %q", tc.name, got)
		}
	}
}

func TestJobPostingFromDoc_FirstMatchWins(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">
[{"@type": "JobPosting", "title": "First"}, {"@type": "JobPosting", "title": "Second"}]
</script>
</head></html>`

	posting, ok := jobPostingFromDoc(mustDoc(t, html))
	if !ok {
		t.Fatalf("expected a posting")
	}
	if got := stringValue(posting["title"]); got != "First" {
		t.Fatalf("expected document-order first match, got %q", got)
	}
}

func TestJobPostingFromDoc_SkipsMalformedBlocks(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">{not json</script>
<script type="application/ld+json">{"@type": "NewsArticle"}</script>
<script type="application/ld+json">{"@type": "JobPosting", "title": "Analyst"}</script>
</head></html>`

	posting, ok := jobPostingFromDoc(mustDoc(t, html))
	if !ok {
		t.Fatalf("expected the valid block to be found")
	}
	if got := stringValue(posting["title"]); got != "Analyst" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestJobPostingFromDoc_NotFound(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">{"@type": "WebSite"}</script>
</head><body><p>plain page</p></body></html>`

	if _, ok := jobPostingFromDoc(mustDoc(t, html)); ok {
		t.Fatalf("expected no posting")
	}
}

func TestStringValue(t *testing.T) {
	if got := stringValue(nil, "  ", "Acme"); got != "Acme" {
		t.Fatalf("expected first non-empty value, got %q", got)
	}
	if got := stringValue(map[string]any{"name": "Beta"}); got != "Beta" {
		t.Fatalf("expected object name, got %q", got)
	}
	if got := stringValue(float64(42)); got != "42" {
		t.Fatalf("expected stringified number, got %q", got)
	}
	if got := stringValue([]any{"x"}); got != "" {
		t.Fatalf("expected absence for unsupported shape, got %q", got)
	}
}

func TestMapValue(t *testing.T) {
	if got := mapValue(map[string]any{"name": "Acme"}, "name"); got != "Acme" {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := mapValue("Acme", "name"); got != nil {
		t.Fatalf("expected nil for non-object, got %v", got)
	}
}
