package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rcng81/job-tracker/internal/models"
)

// Extractor turns a fetched document into a canonical job record. Extraction
// is pure computation; missing fields stay empty, never fabricated.
type Extractor interface {
	Name() string
	Extract(doc *goquery.Document, pageURL string) models.Job
}
