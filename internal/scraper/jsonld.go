package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const jobPostingType = "JobPosting"

// jobPostingFromDoc returns the first JSON-LD JobPosting object in document
// order. Top-level arrays and @graph wrappers are flattened before matching.
// Blocks that fail to decode are skipped, never fatal.
func jobPostingFromDoc(doc *goquery.Document) (map[string]any, bool) {
	var posting map[string]any

	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}

		data, err := decodeJSONLD(raw)
		if err != nil {
			return true
		}

		for _, candidate := range flattenJSONLD(data) {
			if typ, ok := candidate["@type"].(string); ok && typ == jobPostingType {
				posting = candidate
				return false
			}
		}
		return true
	})

	return posting, posting != nil
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "\u2028", "")
	raw = strings.ReplaceAll(raw, "\u2029", "")

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// flattenJSONLD normalizes a decoded block into its candidate objects: a list
// yields its elements, a mapping with an @graph list yields that list, and
// any other mapping is the sole candidate.
func flattenJSONLD(data any) []map[string]any {
	switch value := data.(type) {
	case []any:
		var candidates []map[string]any
		for _, item := range value {
			if obj, ok := item.(map[string]any); ok {
				candidates = append(candidates, obj)
			}
		}
		return candidates
	case map[string]any:
		if graph, ok := value["@graph"].([]any); ok {
			var candidates []map[string]any
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok {
					candidates = append(candidates, obj)
				}
			}
			return candidates
		}
		return []map[string]any{value}
	}
	return nil
}

// stringValue resolves the first argument that carries usable text. Numbers
// are stringified, objects contribute their name, everything else is absence.
func stringValue(values ...any) string {
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
		case json.Number:
			return v.String()
		case map[string]any:
			if name := stringValue(v["name"]); name != "" {
				return name
			}
		}
	}
	return ""
}

// mapValue reads key from value when value is an object; any shape mismatch
// is absence.
func mapValue(value any, key string) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}
