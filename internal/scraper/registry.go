package scraper

import (
	"net/url"
	"strings"
)

const (
	SiteGeneric  = "generic"
	SiteLinkedIn = "linkedin"
)

// Registry maps site names to their extractors. The generic extractor is not
// registered; it is the fallback for hosts with no dedicated entry.
func Registry() map[string]Extractor {
	generic := NewGeneric()
	return map[string]Extractor{
		SiteLinkedIn: NewLinkedIn(generic),
	}
}

// SiteFromURL maps a URL to a registered site name. Unknown or unparsable
// hosts return SiteGeneric.
func SiteFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return SiteGeneric
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if strings.HasSuffix(host, "linkedin.com") {
		return SiteLinkedIn
	}
	return SiteGeneric
}

// ForURL returns the extractor for the URL's host, defaulting to generic.
func ForURL(raw string) Extractor {
	if extractor, ok := Registry()[SiteFromURL(raw)]; ok {
		return extractor
	}
	return NewGeneric()
}
