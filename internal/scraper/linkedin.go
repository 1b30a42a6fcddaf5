package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rcng81/job-tracker/internal/models"
)

// LinkedIn currently shares the generic pipeline (LinkedIn pages embed the
// same JSON-LD, and the heuristic selectors already cover its markup). It is
// registered separately so site-specific handling has a place to grow.
type LinkedIn struct {
	generic *Generic
}

func NewLinkedIn(generic *Generic) *LinkedIn {
	return &LinkedIn{generic: generic}
}

func (l *LinkedIn) Name() string {
	return SiteLinkedIn
}

func (l *LinkedIn) Extract(doc *goquery.Document, pageURL string) models.Job {
	return l.generic.Extract(doc, pageURL)
}
