package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rcng81/job-tracker/internal/models"
)

// Generic extracts from any job posting page: JSON-LD metadata when present,
// HTML/meta-tag heuristics otherwise.
type Generic struct{}

func NewGeneric() *Generic {
	return &Generic{}
}

func (g *Generic) Name() string {
	return SiteGeneric
}

var (
	companySelectors = []string{
		"[data-company]",
		".company",
		".company-name",
	}
	locationSelectors = []string{
		"span[dir='ltr'] span.tvm__text--low-emphasis",
		"span.tvm__text--low-emphasis",
		"[data-location]",
		".location",
		".job-location",
	}
	workModeHintSelectors = []string{
		".job-details-fit-level-preferences button span.tvm__text--low-emphasis strong",
		"span[aria-hidden='true'] span.tvm__text--low-emphasis strong",
		"span.tvm__text--low-emphasis strong",
	}
	paySelectors = []string{
		"span.tvm__text--low-emphasis strong",
		"[data-salary]",
		".salary",
		".compensation",
	}
)

func (g *Generic) Extract(doc *goquery.Document, pageURL string) models.Job {
	job := models.Job{URL: pageURL}

	if posting, ok := jobPostingFromDoc(doc); ok {
		job.Title = cleanTitle(stringValue(posting["title"]))
		job.Company = stringValue(mapValue(posting["hiringOrganization"], "name"))
		job.Location = locationFromPosting(posting)
		if job.Location == "" {
			job.Location = findLocationInText(visibleText(doc))
		}
		job.Pay = salaryFromPosting(posting)
		job.PostedDate = stringValue(posting["datePosted"])
		job.WorkMode = workModeFromPosting(posting)
		if job.WorkMode == "" {
			job.WorkMode = findWorkModeInText(visibleText(doc))
		}
		return job
	}

	rawTitle := metaContent(doc, "meta[property='og:title']")
	if rawTitle == "" {
		rawTitle = firstText(doc, []string{"h1", "title"})
	}

	company, title := splitHiringTitle(rawTitle)
	if title == "" {
		title = rawTitle
	}
	job.Title = cleanTitle(title)
	job.Company = company
	if job.Company == "" {
		job.Company = firstText(doc, companySelectors)
	}

	job.Location = firstText(doc, locationSelectors)
	if job.Location == "" {
		job.Location = findLocationInText(visibleText(doc))
	}

	job.WorkMode = findWorkModeInText(firstText(doc, workModeHintSelectors))
	if job.WorkMode == "" {
		job.WorkMode = findWorkModeInText(visibleText(doc))
	}

	if pay := firstText(doc, paySelectors); pay != "" {
		job.Pay = normalizeSalaryText(pay)
	}

	return job
}
