package report

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"fleetledger/internal/domain"
	"fleetledger/internal/utils"
)

// RecordSource supplies already-fetched records for one vehicle. The
// engine never talks to storage itself; it filters, aggregates and
// formats whatever the source returns.
type RecordSource interface {
	Vehicle(ctx context.Context, id string) (domain.Vehicle, error)
	// Trips returns non-archived trips, newest date first.
	Trips(ctx context.Context, vehicleID string) ([]domain.Trip, error)
	// AllTrips returns every trip regardless of archive state, newest date first.
	AllTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error)
	// ArchivedTrips returns archived trips in ascending date order.
	ArchivedTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error)
	// CngExpenses returns fuel expenses, newest date first.
	CngExpenses(ctx context.Context, vehicleID string) ([]domain.CngExpense, error)
}

// ErrSuperseded marks a load whose result was invalidated by a newer
// mutation before it finished. Callers discard the result and reload;
// nothing stale may be rendered over fresher data.
var ErrSuperseded = errors.New("report load superseded")

// EmptyReason distinguishes "vehicle has no records at all" from
// "no records inside the selected range".
type EmptyReason string

const (
	EmptyNone       EmptyReason = ""
	EmptyNoRecords  EmptyReason = "no_records"
	EmptyOutOfRange EmptyReason = "out_of_range"
)

// TripReport is one fully computed trip report: the filtered records,
// their full-set aggregate, display rows and optional pagination.
type TripReport struct {
	Vehicle    domain.Vehicle     `json:"vehicle"`
	Range      domain.DateRange   `json:"range"`
	Records    []domain.Trip      `json:"records"`
	Aggregate  Aggregate          `json:"aggregate"`
	Formatted  Formatted          `json:"formatted"`
	Empty      EmptyReason        `json:"empty,omitempty"`
	Page       *Page[domain.Trip] `json:"page,omitempty"`
	PageWindow []int              `json:"pageWindow,omitempty"`
}

// CngReport mirrors TripReport for fuel expenses; no derived fields.
type CngReport struct {
	Vehicle   domain.Vehicle      `json:"vehicle"`
	Range     domain.DateRange    `json:"range"`
	Records   []domain.CngExpense `json:"records"`
	Aggregate Aggregate           `json:"aggregate"`
	Formatted Formatted           `json:"formatted"`
	Empty     EmptyReason         `json:"empty,omitempty"`
}

// Views builds the three report variants over a RecordSource. A single
// generation counter implements last-request-wins: Invalidate bumps it,
// and any load that started under an older generation returns
// ErrSuperseded instead of a stale report.
type Views struct {
	Source RecordSource
	Now    func() time.Time

	gen atomic.Uint64
}

func NewViews(src RecordSource) *Views {
	return &Views{Source: src, Now: time.Now}
}

// Invalidate discards in-flight loads. Wire it to the mutation
// notifications of the record kinds a view depends on.
func (v *Views) Invalidate() {
	v.gen.Add(1)
}

func (v *Views) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// CurrentMonth reports non-archived trips for the current calendar
// month, recomputed against "now" on every call. No pagination; the
// salary line belongs to the statement view only.
func (v *Views) CurrentMonth(ctx context.Context, vehicleID string) (TripReport, error) {
	from, to := utils.MonthRange(v.now())
	return v.tripReport(ctx, vehicleID, domain.DateRange{From: from, To: to}, v.Source.Trips, plainTripSchema(), 0)
}

// Archive reports archived trips over an optional user range, ascending
// by date, paginated at DefaultPageSize. The aggregate always covers the
// whole filtered set, not the requested page.
func (v *Views) Archive(ctx context.Context, vehicleID string, r domain.DateRange, pageNumber int) (TripReport, error) {
	if err := r.Validate(); err != nil {
		return TripReport{}, err
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	return v.tripReport(ctx, vehicleID, r, v.Source.ArchivedTrips, plainTripSchema(), pageNumber)
}

// TripStatement reports all trips over an optional user range with the
// derived driver-salary field. No pagination.
func (v *Views) TripStatement(ctx context.Context, vehicleID string, r domain.DateRange) (TripReport, error) {
	if err := r.Validate(); err != nil {
		return TripReport{}, err
	}
	return v.tripReport(ctx, vehicleID, r, v.Source.AllTrips, TripSchema(), 0)
}

// CngStatement reports fuel expenses over an optional user range.
func (v *Views) CngStatement(ctx context.Context, vehicleID string, r domain.DateRange) (CngReport, error) {
	if err := r.Validate(); err != nil {
		return CngReport{}, err
	}
	gen := v.gen.Load()

	vehicle, err := v.Source.Vehicle(ctx, vehicleID)
	if err != nil {
		return CngReport{}, err
	}
	all, err := v.Source.CngExpenses(ctx, vehicleID)
	if err != nil {
		return CngReport{}, err
	}
	if v.gen.Load() != gen {
		return CngReport{}, ErrSuperseded
	}

	filtered := FilterByDate(all, r)
	agg := AggregateCng(filtered)

	return CngReport{
		Vehicle:   vehicle,
		Range:     r,
		Records:   filtered,
		Aggregate: agg,
		Formatted: Format(filtered, agg, CngSchema()),
		Empty:     emptyReason(len(all), len(filtered)),
	}, nil
}

// plainTripSchema renders trip rows and totals without the derived
// salary line; current-month and archive tables show plain totals.
func plainTripSchema() Schema[domain.Trip] {
	s := TripSchema()
	s.DerivedRows = nil
	return s
}

func (v *Views) tripReport(
	ctx context.Context,
	vehicleID string,
	r domain.DateRange,
	fetch func(context.Context, string) ([]domain.Trip, error),
	schema Schema[domain.Trip],
	pageNumber int,
) (TripReport, error) {
	gen := v.gen.Load()

	vehicle, err := v.Source.Vehicle(ctx, vehicleID)
	if err != nil {
		return TripReport{}, err
	}
	all, err := fetch(ctx, vehicleID)
	if err != nil {
		return TripReport{}, err
	}
	if v.gen.Load() != gen {
		return TripReport{}, ErrSuperseded
	}

	filtered := FilterByDate(all, r)
	agg := AggregateTrips(filtered)

	rep := TripReport{
		Vehicle:   vehicle,
		Range:     r,
		Records:   filtered,
		Aggregate: agg,
		Formatted: Format(filtered, agg, schema),
		Empty:     emptyReason(len(all), len(filtered)),
	}

	if pageNumber > 0 {
		page := Paginate(filtered, DefaultPageSize, pageNumber)
		rep.Page = &page
		rep.PageWindow = page.Window()
	}
	return rep, nil
}

func emptyReason(all, filtered int) EmptyReason {
	switch {
	case all == 0:
		return EmptyNoRecords
	case filtered == 0:
		return EmptyOutOfRange
	default:
		return EmptyNone
	}
}
