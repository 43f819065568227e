package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"urltrust/internal/domain"
)

func sampleRecord() domain.CheckRecord {
	return domain.CheckRecord{
		ID:        "7f1c9a9e-0000-0000-0000-000000000001",
		URL:       "http://192.168.1.1/login",
		Verdict:   domain.VerdictSafe,
		Score:     35,
		Reasons:   []string{"Uses IP address instead of domain name"},
		CheckedAt: time.Date(2026, time.March, 4, 12, 30, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.CheckRecord{sampleRecord()}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "url,verdict,score,reasons,checkedAt" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if want := "http://192.168.1.1/login,safe,35,Uses IP address instead of domain name,2026-03-04T12:30:00Z"; lines[1] != want {
		t.Errorf("unexpected row:\n got %q\nwant %q", lines[1], want)
	}
}

func TestWriteCSV_JoinsReasons(t *testing.T) {
	rec := sampleRecord()
	rec.Reasons = []string{"Contains hyphen in domain", "Multiple hyphens in domain"}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.CheckRecord{rec}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "Contains hyphen in domain; Multiple hyphens in domain") {
		t.Errorf("reasons not joined with %q:\n%s", "; ", buf.String())
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleRecord()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output does not look like a PDF document")
	}
}
