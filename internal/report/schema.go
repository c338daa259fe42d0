package report

import (
	"fleetledger/internal/domain"
	"fleetledger/internal/utils"
)

// Schema describes how one record kind renders into a report: its
// column set, per-row cells for screen and export, the totals row,
// and any derived-field rows. The formatter is generic over this
// descriptor instead of branching on record kind.
type Schema[R domain.Dated] struct {
	Kind        domain.RecordKind
	Columns     []string
	DisplayCell func(R) []string
	ExportCell  func(R) []string
	TotalCells  func(Aggregate) []string
	DerivedRows func(Aggregate) [][]string
}

// TripSchema renders Date/Cash/Earning rows plus the derived
// driver-salary line on exports.
func TripSchema() Schema[domain.Trip] {
	return Schema[domain.Trip]{
		Kind:    domain.KindTrip,
		Columns: []string{"Date", "Cash", "Earning"},
		DisplayCell: func(t domain.Trip) []string {
			return []string{utils.DisplayDate(t.Date), utils.FormatAmount(t.Cash), utils.FormatAmount(t.Earning)}
		},
		ExportCell: func(t domain.Trip) []string {
			return []string{utils.ExportDate(t.Date), utils.FormatAmount(t.Cash), utils.FormatAmount(t.Earning)}
		},
		TotalCells: func(a Aggregate) []string {
			return []string{"TOTAL", utils.FormatAmount(a.TotalCash), utils.FormatAmount(a.TotalEarning)}
		},
		DerivedRows: func(a Aggregate) [][]string {
			return [][]string{{"Driver Salary (30%)", "", utils.FormatAmount(a.DriverSalary())}}
		},
	}
}

// CngSchema renders Date/Amount rows with no derived fields.
func CngSchema() Schema[domain.CngExpense] {
	return Schema[domain.CngExpense]{
		Kind:    domain.KindCng,
		Columns: []string{"Date", "Amount"},
		DisplayCell: func(e domain.CngExpense) []string {
			return []string{utils.DisplayDate(e.Date), utils.FormatAmount(e.Amount)}
		},
		ExportCell: func(e domain.CngExpense) []string {
			return []string{utils.ExportDate(e.Date), utils.FormatAmount(e.Amount)}
		},
		TotalCells: func(a Aggregate) []string {
			return []string{"TOTAL", utils.FormatAmount(a.TotalAmount)}
		},
	}
}
