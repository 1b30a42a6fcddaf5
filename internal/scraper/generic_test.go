package scraper

import "testing"

func TestGenericExtract_StructuredBranch(t *testing.T) {
	html := `
<html><head>
<title>Some noisy page title</title>
<script type="application/ld+json">
{
  "@context": "http://schema.org",
  "@type": "JobPosting",
  "title": "Senior Platform Engineer (Remote)",
  "hiringOrganization": {"name": "Acme Corp"},
  "jobLocation": {"address": {"addressLocality": "Austin", "addressRegion": "TX", "addressCountry": "US"}},
  "baseSalary": {"value": {"minValue": 90000, "maxValue": 120000, "unitText": "YEAR"}},
  "datePosted": "2024-05-01",
  "jobLocationType": "TELECOMMUTE"
}
</script>
</head><body><p>Join us.</p></body></html>`

	job := NewGeneric().Extract(mustDoc(t, html), "https://example.com/jobs/1")

	if job.URL != "https://example.com/jobs/1" {
		t.Fatalf("unexpected url: %q", job.URL)
	}
	if job.Title != "Senior Platform Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
	if job.Company != "Acme Corp" {
		t.Fatalf("unexpected company: %q", job.Company)
	}
	if job.Location != "Austin, TX, US" {
		t.Fatalf("unexpected location: %q", job.Location)
	}
	if job.Pay != "90-120k" {
		t.Fatalf("unexpected pay: %q", job.Pay)
	}
	if job.PostedDate != "2024-05-01" {
		t.Fatalf("unexpected posted date: %q", job.PostedDate)
	}
	if job.WorkMode != "Remote" {
		t.Fatalf("unexpected work mode: %q", job.WorkMode)
	}
}

func TestGenericExtract_StructuredLocationFallsBackToText(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">
{"@type": "JobPosting", "title": "Data Engineer", "hiringOrganization": {"name": "Beta"}}
</script>
</head><body><p>This role is based in Denver, CO and pays well.</p></body></html>`

	job := NewGeneric().Extract(mustDoc(t, html), "https://example.com/jobs/2")

	if job.Location != "Denver, CO" {
		t.Fatalf("expected free-text location fallback, got %q", job.Location)
	}
	if job.Pay != "" {
		t.Fatalf("structured branch should not invent pay, got %q", job.Pay)
	}
	if job.PostedDate != "" {
		t.Fatalf("expected absent posted date, got %q", job.PostedDate)
	}
}

func TestGenericExtract_HeuristicBranch(t *testing.T) {
	html := `
<html><head>
<meta property="og:title" content="Acme Corp hiring Senior Backend Engineer">
<title>Acme Corp hiring Senior Backend Engineer | SomeSite</title>
</head>
<body>
  <div class="location">Denver, CO</div>
  <span class="salary">$120,000 - $150,000</span>
  <p>Hybrid schedule, three days in the office.</p>
</body></html>`

	job := NewGeneric().Extract(mustDoc(t, html), "https://example.com/jobs/3")

	if job.Company != "Acme Corp" {
		t.Fatalf("expected company from hiring split, got %q", job.Company)
	}
	if job.Title != "Senior Backend Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
	if job.Location != "Denver, CO" {
		t.Fatalf("unexpected location: %q", job.Location)
	}
	if job.Pay != "120-150k" {
		t.Fatalf("unexpected pay: %q", job.Pay)
	}
	if job.WorkMode != "Hybrid" {
		t.Fatalf("unexpected work mode: %q", job.WorkMode)
	}
	if job.PostedDate != "" {
		t.Fatalf("heuristic branch never sets a posted date, got %q", job.PostedDate)
	}
}

func TestGenericExtract_HeuristicTitleFallbackChain(t *testing.T) {
	html := `
<html><head><title>Platform Engineer - BigCo</title></head>
<body><h1>Platform Engineer</h1><div class="company-name">BigCo</div></body></html>`

	job := NewGeneric().Extract(mustDoc(t, html), "https://example.com/jobs/4")

	if job.Title != "Platform Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
	if job.Company != "BigCo" {
		t.Fatalf("expected selector-based company fallback, got %q", job.Company)
	}
}

func TestGenericExtract_EmptyDocument(t *testing.T) {
	job := NewGeneric().Extract(mustDoc(t, "<html><body><p>hello there</p></body></html>"), "https://example.com/jobs/5")

	if job.URL != "https://example.com/jobs/5" {
		t.Fatalf("url must always be present, got %q", job.URL)
	}
	if job.Title != "" || job.Company != "" || job.Location != "" ||
		job.Pay != "" || job.PostedDate != "" || job.WorkMode != "" {
		t.Fatalf("expected every field absent, got %+v", job)
	}
}
