package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tripOn(date string, cash, earning string) domain.Trip {
	return domain.Trip{
		ID:      "trip-" + date,
		Date:    date,
		Cash:    decimal.RequireFromString(cash),
		Earning: decimal.RequireFromString(earning),
	}
}

func TestFilterByDateInclusiveBounds(t *testing.T) {
	trips := []domain.Trip{
		tripOn("2024-06-02", "100", "200"),
		tripOn("2024-06-15", "50", "150"),
		tripOn("2024-06-20", "0", "100"),
	}

	got := FilterByDate(trips, domain.DateRange{From: "2024-06-02", To: "2024-06-15"})
	if len(got) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(got))
	}
	if got[0].Date != "2024-06-02" || got[1].Date != "2024-06-15" {
		t.Errorf("bound dates must be included: got %s, %s", got[0].Date, got[1].Date)
	}
}

func TestFilterByDateOpenBounds(t *testing.T) {
	trips := []domain.Trip{
		tripOn("2024-06-02", "1", "1"),
		tripOn("2024-06-15", "1", "1"),
		tripOn("2024-06-20", "1", "1"),
	}

	if got := FilterByDate(trips, domain.DateRange{}); len(got) != 3 {
		t.Errorf("empty range must keep everything, got %d", len(got))
	}
	if got := FilterByDate(trips, domain.DateRange{From: "2024-06-15"}); len(got) != 2 {
		t.Errorf("open to-bound: expected 2, got %d", len(got))
	}
	if got := FilterByDate(trips, domain.DateRange{To: "2024-06-15"}); len(got) != 2 {
		t.Errorf("open from-bound: expected 2, got %d", len(got))
	}
}

func TestFilterByDateKeepsInputOrder(t *testing.T) {
	trips := []domain.Trip{
		tripOn("2024-06-20", "1", "1"),
		tripOn("2024-06-02", "1", "1"),
		tripOn("2024-06-15", "1", "1"),
	}

	got := FilterByDate(trips, domain.DateRange{From: "2024-06-01", To: "2024-06-30"})
	if len(got) != 3 {
		t.Fatalf("expected 3 trips, got %d", len(got))
	}
	for i, want := range []string{"2024-06-20", "2024-06-02", "2024-06-15"} {
		if got[i].Date != want {
			t.Errorf("row %d: filter must not reorder, got %s want %s", i, got[i].Date, want)
		}
	}
}

func TestFilterByDateInvertedRangeYieldsEmpty(t *testing.T) {
	trips := []domain.Trip{tripOn("2024-06-10", "1", "1")}

	if got := FilterByDate(trips, domain.DateRange{From: "2024-07-01", To: "2024-06-01"}); len(got) != 0 {
		t.Errorf("inverted range: expected empty, got %d", len(got))
	}
}

func TestDateRangeValidate(t *testing.T) {
	cases := []struct {
		name    string
		r       domain.DateRange
		wantErr bool
	}{
		{"empty", domain.DateRange{}, false},
		{"valid", domain.DateRange{From: "2024-06-01", To: "2024-06-30"}, false},
		{"from only", domain.DateRange{From: "2024-06-01"}, false},
		{"inverted", domain.DateRange{From: "2024-06-30", To: "2024-06-01"}, true},
		{"garbage from", domain.DateRange{From: "June 1"}, true},
		{"bad month", domain.DateRange{From: "2024-13-01"}, true},
	}

	for _, tc := range cases {
		err := tc.r.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.wantErr && err != nil && !domain.IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %T", tc.name, err)
		}
	}
}
