package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"fleetledger/internal/domain"
)

type TripsRepository struct {
	DB *sql.DB
}

func (r TripsRepository) db() *sql.DB { return fallbackDB(r.DB) }

// TripListFilter narrows a vehicle's trips at the storage layer. The
// reporting engine re-filters in memory; these bounds exist for the
// raw list endpoints that mirror the storage queries.
type TripListFilter struct {
	VehicleID string
	From      string
	To        string
	Archived  *bool
	DateAsc   bool
}

const tripColumns = `
	id,
	vehicle_id,
	DATE_FORMAT(date, '%Y-%m-%d'),
	CAST(cash AS CHAR),
	CAST(earning AS CHAR),
	is_archived,
	DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
	DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
`

func (r TripsRepository) List(ctx context.Context, f TripListFilter) ([]domain.Trip, error) {
	where := []string{"vehicle_id=?"}
	args := []any{f.VehicleID}

	if s := strings.TrimSpace(f.From); s != "" {
		where = append(where, "date>=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.To); s != "" {
		where = append(where, "date<=?")
		args = append(args, s)
	}
	if f.Archived != nil {
		where = append(where, "is_archived=?")
		args = append(args, *f.Archived)
	}

	order := " ORDER BY date DESC, id DESC"
	if f.DateAsc {
		order = " ORDER BY date ASC, id ASC"
	}

	query := `SELECT ` + tripColumns + ` FROM trips WHERE ` + strings.Join(where, " AND ") + order

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Trip{}
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(
			&t.ID, &t.VehicleID, &t.Date,
			decCol{&t.Cash}, decCol{&t.Earning},
			&t.IsArchived, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripsRepository) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db().ExecContext(ctx,
		`INSERT INTO trips (id, vehicle_id, date, cash, earning, is_archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		t.ID, t.VehicleID, t.Date, t.Cash.String(), t.Earning.String(), t.IsArchived,
	)
	if err != nil {
		return domain.Trip{}, err
	}
	return t, nil
}

func (r TripsRepository) Update(ctx context.Context, t domain.Trip) error {
	res, err := r.db().ExecContext(ctx,
		`UPDATE trips SET date=?, cash=?, earning=?, updated_at=NOW() WHERE id=?`,
		t.Date, t.Cash.String(), t.Earning.String(), t.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRowContext(ctx, `SELECT 1 FROM trips WHERE id=?`, t.ID).Scan(&exists); err != nil {
			return domain.NotFoundError{Resource: "trip"}
		}
	}
	return nil
}

func (r TripsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

// VehicleID resolves the owning vehicle of a trip, for invalidation
// after update/delete by trip id.
func (r TripsRepository) VehicleID(ctx context.Context, id string) (string, error) {
	var vehicleID string
	err := r.db().QueryRowContext(ctx, `SELECT vehicle_id FROM trips WHERE id=?`, id).Scan(&vehicleID)
	if err == sql.ErrNoRows {
		return "", domain.NotFoundError{Resource: "trip"}
	}
	return vehicleID, err
}

// ArchiveBefore marks every live trip dated strictly before cutoff as
// archived and returns how many rows changed.
func (r TripsRepository) ArchiveBefore(ctx context.Context, cutoff string) (int64, error) {
	res, err := r.db().ExecContext(ctx,
		`UPDATE trips SET is_archived=1, updated_at=NOW() WHERE is_archived=0 AND date < ?`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
