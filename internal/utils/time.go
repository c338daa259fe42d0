package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutExport  = "02-01-2006"
	layoutDisplay = "02 Jan 2006"
)

// ParseDate parses yyyy-MM-dd in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to yyyy-MM-dd in the time's own location.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// ExportDate reformats a yyyy-MM-dd date to the dd-MM-yyyy form used in CSV exports.
// Unparseable input passes through untouched.
func ExportDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutExport)
}

// DisplayDate reformats a yyyy-MM-dd date to "02 Jan 2006" for on-screen rows.
func DisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutDisplay)
}

// MonthRange returns the first and last day of now's calendar month.
func MonthRange(now time.Time) (from, to string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return FormatDate(start), FormatDate(end)
}

// MonthStart returns the first day of now's calendar month.
func MonthStart(now time.Time) string {
	from, _ := MonthRange(now)
	return from
}
