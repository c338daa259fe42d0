package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
	"fleetledger/internal/report"
)

type stubSource struct {
	vehicle domain.Vehicle
	trips   []domain.Trip
	cng     []domain.CngExpense
}

func (s stubSource) Vehicle(ctx context.Context, id string) (domain.Vehicle, error) {
	return s.vehicle, nil
}

func (s stubSource) Trips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	return s.trips, nil
}

func (s stubSource) AllTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	return s.trips, nil
}

func (s stubSource) ArchivedTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	return s.trips, nil
}

func (s stubSource) CngExpenses(ctx context.Context, vehicleID string) ([]domain.CngExpense, error) {
	return s.cng, nil
}

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestReportService(src report.RecordSource) *ReportService {
	svc := NewReportService(src, report.NewInvalidator())
	svc.Now = func() time.Time { return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportStatementFilenameAndBody(t *testing.T) {
	src := stubSource{
		vehicle: domain.Vehicle{ID: "veh-1", Name: "Swift Dzire 01", OwnerName: "R. Mehta"},
		trips: []domain.Trip{
			{ID: "t1", VehicleID: "veh-1", Date: "2024-05-02", Cash: amount("150"), Earning: amount("350")},
		},
	}
	svc := newTestReportService(src)

	out, err := svc.ExportStatement(context.Background(), "veh-1", domain.DateRange{})
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if out.Filename != "statement_Swift_Dzire_01_2024-05-20.csv" {
		t.Fatalf("filename = %q", out.Filename)
	}
	if !strings.Contains(out.Body, "Driver Salary (30%),,105.00") {
		t.Fatalf("missing derived salary row in:\n%s", out.Body)
	}
	if strings.HasSuffix(out.Body, "\n") {
		t.Fatalf("body must not end with a newline")
	}
}

func TestExportArchiveOmitsSalaryRow(t *testing.T) {
	src := stubSource{
		vehicle: domain.Vehicle{ID: "veh-1", Name: "Alto"},
		trips: []domain.Trip{
			{ID: "t1", VehicleID: "veh-1", Date: "2024-04-10", Cash: amount("100"), Earning: amount("200"), IsArchived: true},
		},
	}
	svc := newTestReportService(src)

	out, err := svc.ExportArchive(context.Background(), "veh-1", domain.DateRange{})
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if strings.Contains(out.Body, "Driver Salary") {
		t.Fatalf("archive export must not contain the salary row:\n%s", out.Body)
	}
	if !strings.HasPrefix(out.Filename, "archive_Alto_") {
		t.Fatalf("filename = %q", out.Filename)
	}
}

func TestExportStatementEmptyIsNoExportData(t *testing.T) {
	src := stubSource{vehicle: domain.Vehicle{ID: "veh-1", Name: "Alto"}}
	svc := newTestReportService(src)

	_, err := svc.ExportStatement(context.Background(), "veh-1", domain.DateRange{})
	if !domain.IsNoExportData(err) {
		t.Fatalf("expected no-export-data error, got %v", err)
	}
}

func TestStatsDerivesDriverSalary(t *testing.T) {
	src := stubSource{
		vehicle: domain.Vehicle{ID: "veh-1", Name: "Alto"},
		trips: []domain.Trip{
			{ID: "t1", Date: "2024-05-01", Cash: amount("100"), Earning: amount("200")},
			{ID: "t2", Date: "2024-05-02", Cash: amount("50"), Earning: amount("150")},
		},
	}
	svc := newTestReportService(src)

	stats, err := svc.Stats(context.Background(), "veh-1", domain.DateRange{})
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if got := stats.TotalEarning.StringFixed(2); got != "350.00" {
		t.Fatalf("total earning = %s", got)
	}
	if got := stats.DriverSalary.StringFixed(2); got != "105.00" {
		t.Fatalf("driver salary = %s", got)
	}
	if stats.TotalTrips != 2 {
		t.Fatalf("total trips = %d", stats.TotalTrips)
	}
}

type invalidatingSource struct {
	stubSource
	invalidate func()
}

func (s *invalidatingSource) AllTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	s.invalidate()
	return s.stubSource.AllTrips(ctx, vehicleID)
}

func TestStatementGivesUpAfterRepeatedInvalidation(t *testing.T) {
	src := &invalidatingSource{
		stubSource: stubSource{
			vehicle: domain.Vehicle{ID: "veh-1", Name: "Alto"},
			trips:   []domain.Trip{{ID: "t1", Date: "2024-05-01", Cash: amount("1"), Earning: amount("2")}},
		},
	}
	svc := NewReportService(src, report.NewInvalidator())
	// every fetch lands a concurrent mutation, so no load can settle
	src.invalidate = svc.Views.Invalidate

	_, err := svc.Statement(context.Background(), "veh-1", domain.DateRange{})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error after retries, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"Swift Dzire 01": "Swift_Dzire_01",
		"  auto / #7  ":  "auto_7",
		"":               "vehicle",
		"???":            "vehicle",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Fatalf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
}
