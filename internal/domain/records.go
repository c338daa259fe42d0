package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RecordKind selects the financial record variant a report runs over.
type RecordKind string

const (
	KindTrip RecordKind = "trip"
	KindCng  RecordKind = "cng_expense"
)

// Vehicle is the report context; statements and archives are always scoped to one vehicle.
type Vehicle struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Trip is one cash/earning pair for a vehicle on a calendar date.
// Records are immutable once created; updates replace the stored row.
type Trip struct {
	ID         string          `json:"id"`
	VehicleID  string          `json:"vehicleId"`
	Date       string          `json:"date"` // yyyy-MM-dd
	Cash       decimal.Decimal `json:"cash"`
	Earning    decimal.Decimal `json:"earning"`
	IsArchived bool            `json:"isArchived"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
}

func (t Trip) RecordDate() string { return t.Date }

// CngExpense is one fuel expense for a vehicle on a calendar date.
type CngExpense struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicleId"`
	Date      string          `json:"date"` // yyyy-MM-dd
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

func (e CngExpense) RecordDate() string { return e.Date }

// Dated is any record carrying a calendar date in yyyy-MM-dd form.
// The form sorts lexicographically, so filters compare strings directly.
type Dated interface {
	RecordDate() string
}

// DateRange is an inclusive calendar-date window. An empty bound is open on that side.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (r DateRange) IsZero() bool {
	return strings.TrimSpace(r.From) == "" && strings.TrimSpace(r.To) == ""
}

// Contains reports whether date falls inside the window, bounds inclusive.
func (r DateRange) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// Validate rejects malformed bounds and inverted windows (from > to).
// The filter itself stays lenient; callers validate before filtering.
func (r DateRange) Validate() error {
	if r.From != "" && !IsCalendarDate(r.From) {
		return ValidationError{Field: "from", Msg: "must be yyyy-MM-dd"}
	}
	if r.To != "" && !IsCalendarDate(r.To) {
		return ValidationError{Field: "to", Msg: "must be yyyy-MM-dd"}
	}
	if r.From != "" && r.To != "" && r.From > r.To {
		return ValidationError{Field: "from", Msg: "must not be after to"}
	}
	return nil
}

// IsCalendarDate checks the strict yyyy-MM-dd form used across records.
func IsCalendarDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	m := (s[5]-'0')*10 + (s[6] - '0')
	d := (s[8]-'0')*10 + (s[9] - '0')
	return m >= 1 && m <= 12 && d >= 1 && d <= 31
}
