package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"fleetledger/internal/domain"
)

type CngRepository struct {
	DB *sql.DB
}

func (r CngRepository) db() *sql.DB { return fallbackDB(r.DB) }

const cngColumns = `
	id,
	vehicle_id,
	DATE_FORMAT(date, '%Y-%m-%d'),
	CAST(amount AS CHAR),
	DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
	DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
`

func (r CngRepository) List(ctx context.Context, vehicleID, from, to string) ([]domain.CngExpense, error) {
	where := []string{"vehicle_id=?"}
	args := []any{vehicleID}

	if s := strings.TrimSpace(from); s != "" {
		where = append(where, "date>=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(to); s != "" {
		where = append(where, "date<=?")
		args = append(args, s)
	}

	query := `SELECT ` + cngColumns + ` FROM cng_expenses WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY date DESC, id DESC`

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CngExpense{}
	for rows.Next() {
		var e domain.CngExpense
		if err := rows.Scan(
			&e.ID, &e.VehicleID, &e.Date,
			decCol{&e.Amount}, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r CngRepository) Create(ctx context.Context, e domain.CngExpense) (domain.CngExpense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := r.db().ExecContext(ctx,
		`INSERT INTO cng_expenses (id, vehicle_id, date, amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, NOW(), NOW())`,
		e.ID, e.VehicleID, e.Date, e.Amount.String(),
	)
	if err != nil {
		return domain.CngExpense{}, err
	}
	return e, nil
}

func (r CngRepository) Update(ctx context.Context, e domain.CngExpense) error {
	res, err := r.db().ExecContext(ctx,
		`UPDATE cng_expenses SET date=?, amount=?, updated_at=NOW() WHERE id=?`,
		e.Date, e.Amount.String(), e.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRowContext(ctx, `SELECT 1 FROM cng_expenses WHERE id=?`, e.ID).Scan(&exists); err != nil {
			return domain.NotFoundError{Resource: "cng expense"}
		}
	}
	return nil
}

func (r CngRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM cng_expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cng expense"}
	}
	return nil
}

// VehicleID resolves the owning vehicle of an expense.
func (r CngRepository) VehicleID(ctx context.Context, id string) (string, error) {
	var vehicleID string
	err := r.db().QueryRowContext(ctx, `SELECT vehicle_id FROM cng_expenses WHERE id=?`, id).Scan(&vehicleID)
	if err == sql.ErrNoRows {
		return "", domain.NotFoundError{Resource: "cng expense"}
	}
	return vehicleID, err
}
