package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcng81/job-tracker/internal/models"
)

func sampleJob(url string) models.Job {
	return models.Job{
		URL:      url,
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Austin, TX",
		Pay:      "90-120k",
		WorkMode: "Remote",
	}
}

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")

	id, err := Append(path, sampleJob("https://example.com/1"), "2024-05-01")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.HasPrefix(string(data), strings.Join(Header, ",")) {
		t.Fatalf("expected canonical header, got %q", string(data))
	}
}

func TestAppendAssignsNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")

	if _, err := Append(path, sampleJob("https://example.com/1"), "2024-05-01"); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	id, err := Append(path, sampleJob("https://example.com/2"), "2024-05-02")
	if err != nil {
		t.Fatalf("second append failed: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected id 2, got %d", id)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("read rows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].ID != 2 || rows[1].Job.URL != "https://example.com/2" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestAppendMigratesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")
	legacy := "Company,Title,URL\nOldCo,Old Role,https://example.com/old\n"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	id, err := Append(path, sampleJob("https://example.com/new"), "2024-05-03")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected migrated id 2, got %d", id)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("read rows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after migration, got %d", len(rows))
	}
	if rows[0].ID != 1 || rows[0].Job.Company != "OldCo" || rows[0].Job.Title != "Old Role" {
		t.Fatalf("legacy row not preserved: %+v", rows[0])
	}
	if rows[0].Job.Location != "" {
		t.Fatalf("missing legacy columns should stay empty, got %q", rows[0].Job.Location)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.HasPrefix(string(data), strings.Join(Header, ",")) {
		t.Fatalf("expected canonical header after migration, got %q", string(data))
	}
}

func TestHasURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.csv")

	tracked, err := HasURL(path, "https://example.com/1")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if tracked {
		t.Fatalf("missing file should report untracked")
	}

	if _, err := Append(path, sampleJob("https://example.com/1"), "2024-05-01"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	tracked, err = HasURL(path, "https://example.com/1")
	if err != nil || !tracked {
		t.Fatalf("expected tracked url, got %v / %v", tracked, err)
	}
	tracked, err = HasURL(path, "https://example.com/other")
	if err != nil || tracked {
		t.Fatalf("expected untracked url, got %v / %v", tracked, err)
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "missing.csv"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
