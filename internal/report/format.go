package report

import (
	"encoding/csv"
	"strings"

	"fleetledger/internal/domain"
)

// Formatted is a display-ready report: one rounded row per record in
// input order plus a totals row built from the unrounded aggregate.
type Formatted struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	TotalsRow   []string   `json:"totalsRow"`
	DerivedRows [][]string `json:"derivedRows,omitempty"`
}

// Format renders records and their aggregate through a schema. Rows keep
// the input order; the totals row rounds the full-precision sums once,
// never re-adding already-rounded cells.
func Format[R domain.Dated](records []R, agg Aggregate, s Schema[R]) Formatted {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, s.DisplayCell(r))
	}
	f := Formatted{
		Columns:   s.Columns,
		Rows:      rows,
		TotalsRow: s.TotalCells(agg),
	}
	if s.DerivedRows != nil {
		f.DerivedRows = s.DerivedRows(agg)
	}
	return f
}

// ExportCSV serializes records, totals and derived rows into a flat
// CSV body: header line, one line per record (dates as dd-MM-yyyy,
// amounts fixed to 2 decimals), a TOTAL line, then derived lines.
// Fields containing delimiters, quotes or newlines are quoted. Output
// is byte-identical for identical input and carries no trailing
// newline. Zero records refuse with NoExportDataError instead of
// producing a degenerate file.
func ExportCSV[R domain.Dated](records []R, agg Aggregate, s Schema[R]) (string, error) {
	if len(records) == 0 {
		return "", domain.NoExportDataError{Kind: s.Kind}
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(s.Columns); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := w.Write(s.ExportCell(r)); err != nil {
			return "", err
		}
	}
	if err := w.Write(s.TotalCells(agg)); err != nil {
		return "", err
	}
	if s.DerivedRows != nil {
		for _, row := range s.DerivedRows(agg) {
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}
