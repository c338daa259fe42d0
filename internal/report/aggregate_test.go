package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
)

func TestAggregateTripsAfterFilter(t *testing.T) {
	trips := []domain.Trip{
		tripOn("2024-06-02", "100", "200"),
		tripOn("2024-06-15", "50", "150"),
		tripOn("2024-06-20", "0", "100"),
	}

	filtered := FilterByDate(trips, domain.DateRange{From: "2024-06-01", To: "2024-06-16"})
	agg := AggregateTrips(filtered)

	if agg.TotalCount != 2 {
		t.Fatalf("expected 2 trips in range, got %d", agg.TotalCount)
	}
	if got := agg.TotalCash.String(); got != "150" {
		t.Errorf("totalCash = %s, want 150", got)
	}
	if got := agg.TotalEarning.String(); got != "350" {
		t.Errorf("totalEarning = %s, want 350", got)
	}
	if got := agg.DriverSalary().StringFixed(2); got != "105.00" {
		t.Errorf("driverSalary = %s, want 105.00", got)
	}
}

func TestAggregateTripsEmptyInput(t *testing.T) {
	agg := AggregateTrips(nil)

	if agg.TotalCount != 0 {
		t.Errorf("count = %d, want 0", agg.TotalCount)
	}
	if !agg.TotalCash.IsZero() || !agg.TotalEarning.IsZero() {
		t.Errorf("empty input must yield zero totals, got cash=%s earning=%s", agg.TotalCash, agg.TotalEarning)
	}
	if !agg.DriverSalary().IsZero() {
		t.Errorf("driverSalary = %s, want 0", agg.DriverSalary())
	}
}

func TestAggregateKeepsFullPrecision(t *testing.T) {
	// Each value rounds up on its own; the sum must come from the
	// unrounded values, not from per-row rounded cells.
	trips := []domain.Trip{
		tripOn("2024-06-01", "0.335", "0.335"),
		tripOn("2024-06-02", "0.335", "0.335"),
		tripOn("2024-06-03", "0.335", "0.335"),
	}

	agg := AggregateTrips(trips)
	if got := agg.TotalCash.String(); got != "1.005" {
		t.Errorf("unrounded sum = %s, want 1.005", got)
	}
	if got := agg.TotalCash.StringFixed(2); got != "1.01" {
		t.Errorf("rendered sum = %s, want 1.01 (half-up once at the end)", got)
	}
}

func TestAggregateIndependentOfPagination(t *testing.T) {
	var trips []domain.Trip
	for i := 0; i < 120; i++ {
		trips = append(trips, tripOn("2024-06-10", "1", "2"))
	}

	agg := AggregateTrips(trips)
	if got := agg.TotalCash.String(); got != "120" {
		t.Errorf("totalCash = %s, want 120", got)
	}

	// Paginating must not change what the aggregate sees.
	page := Paginate(trips, 50, 2)
	if len(page.Items) != 50 {
		t.Fatalf("page 2 length = %d, want 50", len(page.Items))
	}
	if got := AggregateTrips(trips).TotalEarning.String(); got != "240" {
		t.Errorf("totalEarning = %s, want 240", got)
	}
}

func TestAggregateCng(t *testing.T) {
	exps := []domain.CngExpense{
		{Date: "2024-06-01", Amount: decimal.RequireFromString("250.50")},
		{Date: "2024-06-02", Amount: decimal.RequireFromString("100.25")},
	}

	agg := AggregateCng(exps)
	if agg.TotalCount != 2 {
		t.Errorf("count = %d, want 2", agg.TotalCount)
	}
	if got := agg.TotalAmount.StringFixed(2); got != "350.75" {
		t.Errorf("totalAmount = %s, want 350.75", got)
	}
}
