package report

import (
	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
)

// driverSalaryRate is the fixed share of total earnings paid to the driver.
var driverSalaryRate = decimal.New(30, -2) // 0.30

// Aggregate holds full-precision totals over a filtered record set.
// Sums are never rounded here; 2-digit rounding happens once at render
// time so the on-screen summary and the export agree to the cent.
type Aggregate struct {
	TotalCash    decimal.Decimal `json:"totalCash"`
	TotalEarning decimal.Decimal `json:"totalEarning"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalCount   int             `json:"totalCount"`
}

// DriverSalary derives the driver's share from the already-summed earning
// total. Computed once per aggregate, not per record.
func (a Aggregate) DriverSalary() decimal.Decimal {
	return a.TotalEarning.Mul(driverSalaryRate)
}

// AggregateTrips reduces trips to cash/earning totals. Empty input yields
// all-zero totals. Pagination never feeds this; callers pass the full
// filtered set.
func AggregateTrips(trips []domain.Trip) Aggregate {
	var a Aggregate
	for _, t := range trips {
		a.TotalCash = a.TotalCash.Add(t.Cash)
		a.TotalEarning = a.TotalEarning.Add(t.Earning)
	}
	a.TotalCount = len(trips)
	return a
}

// AggregateCng reduces CNG expenses to an amount total.
func AggregateCng(expenses []domain.CngExpense) Aggregate {
	var a Aggregate
	for _, e := range expenses {
		a.TotalAmount = a.TotalAmount.Add(e.Amount)
	}
	a.TotalCount = len(expenses)
	return a
}
