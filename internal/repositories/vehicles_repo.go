package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"fleetledger/internal/domain"
)

type VehiclesRepository struct {
	DB *sql.DB
}

func (r VehiclesRepository) db() *sql.DB { return fallbackDB(r.DB) }

const vehicleColumns = `
	id,
	name,
	owner_name,
	DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
	DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
`

// List returns vehicles, optionally matched on name or owner, newest first.
func (r VehiclesRepository) List(ctx context.Context, q string) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE (name LIKE ? OR owner_name LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.OwnerName, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehiclesRepository) GetByID(ctx context.Context, id string) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db().QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id=?`, id,
	).Scan(&v.ID, &v.Name, &v.OwnerName, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehiclesRepository) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.db().ExecContext(ctx,
		`INSERT INTO vehicles (id, name, owner_name, created_at, updated_at) VALUES (?, ?, ?, NOW(), NOW())`,
		v.ID, v.Name, v.OwnerName,
	)
	if err != nil {
		return domain.Vehicle{}, err
	}
	return r.GetByID(ctx, v.ID)
}

func (r VehiclesRepository) Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	res, err := r.db().ExecContext(ctx,
		`UPDATE vehicles SET name=?, owner_name=?, updated_at=NOW() WHERE id=?`,
		v.Name, v.OwnerName, v.ID,
	)
	if err != nil {
		return domain.Vehicle{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL also reports 0 for no-op updates; confirm existence.
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return domain.Vehicle{}, err
		}
	}
	return r.GetByID(ctx, v.ID)
}

func (r VehiclesRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
