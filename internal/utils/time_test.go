package utils

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	now := time.Date(2024, 2, 14, 9, 30, 0, 0, time.UTC)
	from, to := MonthRange(now)
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Fatalf("MonthRange = %s..%s", from, to)
	}

	now = time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	from, to = MonthRange(now)
	if from != "2023-12-01" || to != "2023-12-31" {
		t.Fatalf("MonthRange = %s..%s", from, to)
	}
}

func TestExportDateFormats(t *testing.T) {
	if got := ExportDate("2024-05-02"); got != "02-05-2024" {
		t.Fatalf("ExportDate = %s", got)
	}
	// unparseable input passes through untouched
	if got := ExportDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("ExportDate passthrough = %s", got)
	}
}
