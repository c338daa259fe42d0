package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"fleetledger/internal/domain"
	"fleetledger/internal/report"
	"fleetledger/internal/utils"
)

// PrintService renders the print presentation of a statement: the same
// display rows and totals as the on-screen report, laid out for paper.
type PrintService struct {
	Reports   *ReportService
	RequestID string
}

func (s PrintService) StatementPDF(ctx context.Context, vehicleID string, r domain.DateRange) ([]byte, string, error) {
	rep, err := s.Reports.Statement(ctx, vehicleID, r)
	if err != nil {
		return nil, "", err
	}
	if len(rep.Records) == 0 {
		return nil, "", domain.NoExportDataError{Kind: domain.KindTrip}
	}
	utils.LogEvent(s.RequestID, "print", "statement_pdf", fmt.Sprintf("vehicle_id=%s rows=%d", vehicleID, len(rep.Records)))
	return buildReportPDF("Trip Statement", rep.Vehicle, rep.Range, rep.Formatted, "statement")
}

func (s PrintService) CngStatementPDF(ctx context.Context, vehicleID string, r domain.DateRange) ([]byte, string, error) {
	rep, err := s.Reports.CngStatement(ctx, vehicleID, r)
	if err != nil {
		return nil, "", err
	}
	if len(rep.Records) == 0 {
		return nil, "", domain.NoExportDataError{Kind: domain.KindCng}
	}
	utils.LogEvent(s.RequestID, "print", "cng_statement_pdf", fmt.Sprintf("vehicle_id=%s rows=%d", vehicleID, len(rep.Records)))
	return buildReportPDF("CNG Statement", rep.Vehicle, rep.Range, rep.Formatted, "cng_statement")
}

func buildReportPDF(title string, vehicle domain.Vehicle, r domain.DateRange, f report.Formatted, kind string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, strings.ToUpper(title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Vehicle : %s", vehicle.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Owner   : %s", vehicle.OwnerName))
	pdf.Ln(6)
	if !r.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Period  : %s - %s", orLabel(r.From, "Start"), orLabel(r.To, "End")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	colWidth := 180.0 / float64(len(f.Columns))

	pdf.SetFont("Helvetica", "B", 11)
	for _, col := range f.Columns {
		pdf.CellFormat(colWidth, 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range f.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, cell := range f.TotalsRow {
		pdf.CellFormat(colWidth, 7, cell, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
	for _, row := range f.DerivedRows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, "Generated "+time.Now().Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s_%s.pdf", kind, safeFilenamePart(vehicle.Name), utils.FormatDate(time.Now()))
	return buf.Bytes(), filename, nil
}

func orLabel(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
