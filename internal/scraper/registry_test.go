package scraper

import "testing"

func TestSiteFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/123", SiteLinkedIn},
		{"https://de.linkedin.com/jobs/view/456", SiteLinkedIn},
		{"https://boards.greenhouse.io/acme/jobs/1", SiteGeneric},
		{"https://example.com/careers/engineer", SiteGeneric},
		{"://not-a-url", SiteGeneric},
	}

	for _, tc := range cases {
		if got := SiteFromURL(tc.url); got != tc.want {
			t.Fatalf("SiteFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestForURL(t *testing.T) {
	if got := ForURL("https://www.linkedin.com/jobs/view/123").Name(); got != SiteLinkedIn {
		t.Fatalf("expected linkedin extractor, got %q", got)
	}
	if got := ForURL("https://example.com/jobs/1").Name(); got != SiteGeneric {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestLinkedInSharesGenericPipeline(t *testing.T) {
	html := `
<html><head>
<meta property="og:title" content="Acme Corp hiring Site Reliability Engineer">
</head><body></body></html>`

	job := NewLinkedIn(NewGeneric()).Extract(mustDoc(t, html), "https://www.linkedin.com/jobs/view/789")
	if job.Company != "Acme Corp" {
		t.Fatalf("unexpected company: %q", job.Company)
	}
	if job.Title != "Site Reliability Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
}
