package scraper

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// titleSeparators is an ordered rule table; each entry truncates the title at
// its first occurrence. " at " comes last so dash-separated company suffixes
// are stripped first.
var titleSeparators = []string{" | ", " - ", " – ", " — ", " · ", " at "}

// employmentKeywords truncate trailing qualifiers like "- Internship".
// "internship" precedes "intern" so the longer keyword wins the cut point.
var employmentKeywords = []string{"internship", "intern", "contract", "temporary"}

// cleanTitle reduces a raw page or posting title to the bare role name.
// Idempotent: cleaning a cleaned title is a no-op.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return ""
	}

	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
	}

	// Trailing location phrases: "Engineer in Austin, TX".
	if idx := strings.LastIndex(strings.ToLower(title), " in "); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}

	if strings.HasSuffix(title, ")") && strings.Contains(title, "(") {
		title = strings.TrimSpace(title[:strings.LastIndex(title, "(")])
	}

	for _, term := range employmentKeywords {
		if idx := strings.Index(strings.ToLower(title), term); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
	}

	return title
}

const hiringMarker = " hiring "

// splitHiringTitle handles the "<Company> hiring <Title>" page-title
// convention. Both results are empty when the marker is missing; empty halves
// stay empty.
func splitHiringTitle(raw string) (company, title string) {
	text := strings.TrimSpace(raw)
	idx := strings.Index(text, hiringMarker)
	if idx < 0 {
		return "", ""
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(hiringMarker):])
}

// locationFromPosting joins locality, region and country from the posting's
// first jobLocation address. Any shape mismatch along the way is absence.
func locationFromPosting(posting map[string]any) string {
	loc := posting["jobLocation"]
	if list, ok := loc.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		loc = list[0]
	}

	address, ok := mapValue(loc, "address").(map[string]any)
	if !ok {
		return ""
	}

	var parts []string
	for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
		if part := stringValue(address[key]); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// usStates validates two-letter codes in city/state matches so free text like
// "Go, To market" is not mistaken for a location.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {},
}

var cityStateRE = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:[ -][A-Z][a-zA-Z]+)*)\s*,\s*([A-Z]{2})\b`)

// findLocationInText scans free text for the first "City, XX" match with a
// valid state code, then falls back to remote/hybrid keywords.
func findLocationInText(text string) string {
	for _, match := range cityStateRE.FindAllStringSubmatch(text, -1) {
		if _, ok := usStates[match[2]]; ok {
			return match[1] + ", " + match[2]
		}
	}

	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "remote") {
		return "Remote"
	}
	if strings.Contains(lowered, "hybrid") {
		return "Hybrid"
	}
	return ""
}

// salaryFromPosting normalizes a baseSalary object: min/max ranges get the
// k-scale treatment, scalar values are stringified (string values through the
// free-text normalizer).
func salaryFromPosting(posting map[string]any) string {
	base, ok := posting["baseSalary"].(map[string]any)
	if !ok {
		return ""
	}

	value := base["value"]
	if valueMap, ok := value.(map[string]any); ok {
		unit, _ := valueMap["unitText"].(string)
		if text := formatSalaryRange(valueMap["minValue"], valueMap["maxValue"], unit); text != "" {
			return text
		}
		return formatSalaryValue(valueMap["minValue"], unit)
	}
	return formatSalaryValue(value, "")
}

// formatSalaryValue renders a single salary value. Amounts of 1000+ quoted
// yearly (or with no unit) are floored to thousands: 95000 -> "95k".
func formatSalaryValue(raw any, unit string) string {
	if text, ok := raw.(string); ok {
		return normalizeSalaryText(text)
	}
	numeric, ok := toFloat(raw)
	if !ok {
		return ""
	}

	if numeric >= 1000 && yearlyUnit(unit) {
		return fmt.Sprintf("%dk", kilo(numeric))
	}
	return strings.TrimSpace(formatNumber(numeric) + " " + strings.TrimSpace(unit))
}

// formatSalaryRange renders a min/max pair, k-scaled when both sides qualify:
// 90000-120000 YEAR -> "90-120k". Empty when either bound is missing.
func formatSalaryRange(minRaw, maxRaw any, unit string) string {
	minVal, okMin := toFloat(minRaw)
	maxVal, okMax := toFloat(maxRaw)
	if !okMin || !okMax {
		return ""
	}

	if minVal >= 1000 && maxVal >= 1000 && yearlyUnit(unit) {
		return fmt.Sprintf("%d-%dk", kilo(minVal), kilo(maxVal))
	}
	return strings.TrimSpace(formatNumber(minVal) + "-" + formatNumber(maxVal) + " " + strings.TrimSpace(unit))
}

var salaryNumberRE = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// normalizeSalaryText rewrites free-form pay strings into the short tracker
// form ("50,000 - 60,000" -> "50-60k"). Strings already carrying a k or an
// hourly marker are human-normalized and pass through; unparseable text is
// returned as-is, best effort.
func normalizeSalaryText(text string) string {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return ""
	}

	lowered := strings.ToLower(raw)
	if strings.Contains(lowered, "k") || strings.Contains(lowered, "hr") || strings.Contains(lowered, "hour") {
		return raw
	}

	var numbers []float64
	for _, match := range salaryNumberRE.FindAllString(raw, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, value)
	}
	if len(numbers) == 0 {
		return raw
	}

	allBelow := true
	for _, value := range numbers {
		if value >= 1000 {
			allBelow = false
			break
		}
	}
	if allBelow {
		if len(numbers) >= 2 {
			return formatNumber(numbers[0]) + "-" + formatNumber(numbers[1])
		}
		return formatNumber(numbers[0])
	}

	if len(numbers) >= 2 && numbers[0] >= 1000 && numbers[1] >= 1000 {
		return fmt.Sprintf("%d-%dk", kilo(numbers[0]), kilo(numbers[1]))
	}
	if numbers[0] >= 1000 {
		return fmt.Sprintf("%dk", kilo(numbers[0]))
	}
	return raw
}

func yearlyUnit(unit string) bool {
	lowered := strings.ToLower(strings.TrimSpace(unit))
	return lowered == "" || strings.Contains(lowered, "year") || strings.Contains(lowered, "yr")
}

func kilo(value float64) int {
	return int(math.Floor(value / 1000))
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", ""), 64)
		return parsed, err == nil
	}
	return 0, false
}

// workModeFromPosting classifies the posting's jobLocationType string.
func workModeFromPosting(posting map[string]any) string {
	mode, ok := posting["jobLocationType"].(string)
	if !ok {
		return ""
	}

	lowered := strings.ToLower(mode)
	switch {
	case strings.Contains(lowered, "telecommute"), strings.Contains(lowered, "remote"):
		return "Remote"
	case strings.Contains(lowered, "hybrid"):
		return "Hybrid"
	case strings.Contains(lowered, "on site"), strings.Contains(lowered, "on-site"), strings.Contains(lowered, "onsite"):
		return "On-site"
	}
	return ""
}

// findWorkModeInText classifies free text, accepting "in person" as On-site
// in addition to the structured keywords.
func findWorkModeInText(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "remote"):
		return "Remote"
	case strings.Contains(lowered, "hybrid"):
		return "Hybrid"
	case strings.Contains(lowered, "on-site"), strings.Contains(lowered, "onsite"),
		strings.Contains(lowered, "on site"), strings.Contains(lowered, "in person"):
		return "On-site"
	}
	return ""
}
