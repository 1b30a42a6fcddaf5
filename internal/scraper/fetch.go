package scraper

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/rcng81/job-tracker/internal/models"
	"github.com/rcng81/job-tracker/internal/network"
)

// FetchDocument retrieves target and parses it into a goquery document.
// Transport errors and HTTP status >= 400 are fatal for the invocation.
func FetchDocument(ctx context.Context, client *network.Client, target string) (*goquery.Document, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// Scrape fetches the page at target and runs the extractor registered for
// its host.
func Scrape(ctx context.Context, client *network.Client, target string) (models.Job, error) {
	doc, err := FetchDocument(ctx, client, target)
	if err != nil {
		return models.Job{}, err
	}
	return ForURL(target).Extract(doc, target), nil
}
