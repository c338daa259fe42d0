package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
	"fleetledger/internal/report"
	"fleetledger/internal/utils"
)

// superseded loads are retried; a report request must eventually render
// against the newest data, never against a stale snapshot.
const maxLoadRetries = 3

// ReportService orchestrates the report views and their dependency
// subscriptions: any trip or CNG mutation invalidates in-flight loads.
type ReportService struct {
	Views *report.Views
	Inv   *report.Invalidator
	Now   func() time.Time
}

func NewReportService(src report.RecordSource, inv *report.Invalidator) *ReportService {
	views := report.NewViews(src)
	inv.Subscribe("", domain.KindTrip, views.Invalidate)
	inv.Subscribe("", domain.KindCng, views.Invalidate)
	return &ReportService{Views: views, Inv: inv, Now: time.Now}
}

func (s *ReportService) CurrentMonth(ctx context.Context, vehicleID string) (report.TripReport, error) {
	return retryTrip(func() (report.TripReport, error) {
		return s.Views.CurrentMonth(ctx, vehicleID)
	})
}

func (s *ReportService) Archive(ctx context.Context, vehicleID string, r domain.DateRange, page int) (report.TripReport, error) {
	return retryTrip(func() (report.TripReport, error) {
		return s.Views.Archive(ctx, vehicleID, r, page)
	})
}

func (s *ReportService) Statement(ctx context.Context, vehicleID string, r domain.DateRange) (report.TripReport, error) {
	return retryTrip(func() (report.TripReport, error) {
		return s.Views.TripStatement(ctx, vehicleID, r)
	})
}

func (s *ReportService) CngStatement(ctx context.Context, vehicleID string, r domain.DateRange) (report.CngReport, error) {
	var rep report.CngReport
	var err error
	for i := 0; i < maxLoadRetries; i++ {
		rep, err = s.Views.CngStatement(ctx, vehicleID, r)
		if !errors.Is(err, report.ErrSuperseded) {
			return rep, err
		}
	}
	return report.CngReport{}, domain.InternalError{Msg: "report data kept changing during load", Err: err}
}

// VehicleStats mirrors the dashboard summary: totals plus the derived
// driver salary over an optional range.
type VehicleStats struct {
	TotalCash    decimal.Decimal `json:"totalCash"`
	TotalEarning decimal.Decimal `json:"totalEarning"`
	DriverSalary decimal.Decimal `json:"driverSalary"`
	TotalTrips   int             `json:"totalTrips"`
}

func (s *ReportService) Stats(ctx context.Context, vehicleID string, r domain.DateRange) (VehicleStats, error) {
	rep, err := s.Statement(ctx, vehicleID, r)
	if err != nil {
		return VehicleStats{}, err
	}
	agg := rep.Aggregate
	return VehicleStats{
		TotalCash:    agg.TotalCash,
		TotalEarning: agg.TotalEarning,
		DriverSalary: agg.DriverSalary().Round(2),
		TotalTrips:   agg.TotalCount,
	}, nil
}

// Export is a CSV body plus its download filename.
type Export struct {
	Filename string
	Body     string
}

func (s *ReportService) ExportStatement(ctx context.Context, vehicleID string, r domain.DateRange) (Export, error) {
	rep, err := s.Statement(ctx, vehicleID, r)
	if err != nil {
		return Export{}, err
	}
	body, err := report.ExportCSV(rep.Records, rep.Aggregate, report.TripSchema())
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: s.exportFilename("statement", rep.Vehicle.Name), Body: body}, nil
}

func (s *ReportService) ExportCngStatement(ctx context.Context, vehicleID string, r domain.DateRange) (Export, error) {
	rep, err := s.CngStatement(ctx, vehicleID, r)
	if err != nil {
		return Export{}, err
	}
	body, err := report.ExportCSV(rep.Records, rep.Aggregate, report.CngSchema())
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: s.exportFilename("cng_statement", rep.Vehicle.Name), Body: body}, nil
}

// ExportArchive exports the whole filtered archive, never just the
// visible page; the derived salary row stays statement-only.
func (s *ReportService) ExportArchive(ctx context.Context, vehicleID string, r domain.DateRange) (Export, error) {
	rep, err := s.Archive(ctx, vehicleID, r, 1)
	if err != nil {
		return Export{}, err
	}
	schema := report.TripSchema()
	schema.DerivedRows = nil
	body, err := report.ExportCSV(rep.Records, rep.Aggregate, schema)
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: s.exportFilename("archive", rep.Vehicle.Name), Body: body}, nil
}

// exportFilename follows <reportKind>_<vehicleName>_<generationDate>.csv.
func (s *ReportService) exportFilename(kind, vehicleName string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return fmt.Sprintf("%s_%s_%s.csv", kind, safeFilenamePart(vehicleName), utils.FormatDate(now()))
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func safeFilenamePart(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "vehicle"
	}
	return s
}

func retryTrip(load func() (report.TripReport, error)) (report.TripReport, error) {
	var rep report.TripReport
	var err error
	for i := 0; i < maxLoadRetries; i++ {
		rep, err = load()
		if !errors.Is(err, report.ErrSuperseded) {
			return rep, err
		}
	}
	return report.TripReport{}, domain.InternalError{Msg: "report data kept changing during load", Err: err}
}
