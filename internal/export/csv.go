package export

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/rcng81/job-tracker/internal/models"
)

// Header is the canonical tracker schema. Files with any other column set are
// rewritten into this one before appending.
var Header = []string{"ID", "Company", "Title", "Location", "Work Mode", "Pay", "Date Applied", "URL"}

// Row is one tracked application as stored in the CSV.
type Row struct {
	ID          int
	Job         models.Job
	DateApplied string
}

func (r Row) record() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Job.Company,
		r.Job.Title,
		r.Job.Location,
		r.Job.WorkMode,
		r.Job.Pay,
		r.DateApplied,
		r.Job.URL,
	}
}

// SheetRow renders a record in the same column order as the CSV, for the
// spreadsheet appender.
func SheetRow(id int, job models.Job, dateApplied string) []string {
	return Row{ID: id, Job: job, DateApplied: dateApplied}.record()
}

// Append adds one record to the tracker CSV at path, assigning the next
// sequential ID. A missing file is created with the canonical header. A file
// with a legacy column set is rewritten whole; otherwise the record is
// appended in place.
func Append(path string, job models.Job, dateApplied string) (int, error) {
	header, rows, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			row := Row{ID: 1, Job: job, DateApplied: dateApplied}
			return 1, writeFile(path, []Row{row})
		}
		return 0, err
	}

	maxID := 0
	for i := range rows {
		if rows[i].ID > maxID {
			maxID = rows[i].ID
		}
	}
	if !hasColumn(header, "ID") {
		// Legacy file without IDs: number existing rows in order.
		for i := range rows {
			rows[i].ID = i + 1
		}
		maxID = len(rows)
	}

	row := Row{ID: maxID + 1, Job: job, DateApplied: dateApplied}

	if !equalHeader(header, Header) {
		rows = append(rows, row)
		return row.ID, writeFile(path, rows)
	}

	return row.ID, appendRow(path, row)
}

// ReadRows loads all tracked applications from the CSV at path.
func ReadRows(path string) ([]Row, error) {
	_, rows, err := readFile(path)
	return rows, err
}

// HasURL reports whether the URL is already tracked. A missing file is an
// empty tracker, not an error.
func HasURL(path string, target string) (bool, error) {
	_, rows, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return false, nil
	}
	for _, row := range rows {
		if strings.TrimSpace(row.Job.URL) == target {
			return true, nil
		}
	}
	return false, nil
}

func readFile(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	header := records[0]
	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		id, _ := strconv.Atoi(strings.TrimSpace(field(record, "ID")))
		rows = append(rows, Row{
			ID: id,
			Job: models.Job{
				Company:  field(record, "Company"),
				Title:    field(record, "Title"),
				Location: field(record, "Location"),
				WorkMode: field(record, "Work Mode"),
				Pay:      field(record, "Pay"),
				URL:      field(record, "URL"),
			},
			DateApplied: field(record, "Date Applied"),
		})
	}
	return header, rows, nil
}

func writeFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func appendRow(path string, row Row) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(row.record()); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func hasColumn(header []string, name string) bool {
	for _, column := range header {
		if strings.TrimSpace(column) == name {
			return true
		}
	}
	return false
}

func equalHeader(header []string, want []string) bool {
	if len(header) != len(want) {
		return false
	}
	for i := range header {
		if strings.TrimSpace(header[i]) != want[i] {
			return false
		}
	}
	return true
}
