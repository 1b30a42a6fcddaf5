package export

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatTSV   Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// PrintJob writes one scraped record in the field-per-line console form, with
// N/A standing in for absent fields.
func PrintJob(w io.Writer, row Row) {
	fields := []struct {
		name  string
		value string
	}{
		{"Company", row.Job.Company},
		{"Title", row.Job.Title},
		{"Location", row.Job.Location},
		{"Work Mode", row.Job.WorkMode},
		{"Pay", row.Job.Pay},
		{"Date Applied", row.DateApplied},
		{"URL", row.Job.URL},
	}

	fmt.Fprintln(w, "Scraped job data:")
	for _, field := range fields {
		fmt.Fprintf(w, "%s: %s\n", field.name, orNA(field.value))
	}
}

// WriteRows renders the tracker in the requested format.
func WriteRows(w io.Writer, rows []Row, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatTSV:
		return writeTSV(w, rows)
	default:
		return writeTable(w, rows, opts)
	}
}

func writeJSON(w io.Writer, rows []Row) error {
	type record struct {
		ID          int    `json:"id"`
		Company     string `json:"company,omitempty"`
		Title       string `json:"title,omitempty"`
		Location    string `json:"location,omitempty"`
		WorkMode    string `json:"work_mode,omitempty"`
		Pay         string `json:"pay,omitempty"`
		DateApplied string `json:"date_applied,omitempty"`
		URL         string `json:"url"`
	}

	records := make([]record, 0, len(rows))
	for _, row := range rows {
		records = append(records, record{
			ID:          row.ID,
			Company:     row.Job.Company,
			Title:       row.Job.Title,
			Location:    row.Job.Location,
			WorkMode:    row.Job.WorkMode,
			Pay:         row.Job.Pay,
			DateApplied: row.DateApplied,
			URL:         row.Job.URL,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeTSV(w io.Writer, rows []Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row.record(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, rows []Row, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"id", "company", "title", "location", "pay", "applied", "url"}, "\t"))
	output := termenv.NewOutput(w)
	for _, row := range rows {
		cells := []string{
			strconv.Itoa(row.ID),
			orNA(row.Job.Company),
			orNA(row.Job.Title),
			orNA(row.Job.Location),
			orNA(row.Job.Pay),
			orNA(row.DateApplied),
			displayURL(row.Job.URL, output, opts),
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func displayURL(raw string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "-"
	}

	label := raw
	if opts.Hyperlinks {
		label = shortURLLabel(raw)
	}
	if opts.ColorEnabled {
		label = output.String(label).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		label = hyperlink(raw, label)
	}
	return label
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}
