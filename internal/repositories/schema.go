package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// RequiredTables is every table the reporting backend reads or writes.
var RequiredTables = []string{"vehicles", "trips", "cng_expenses"}

// HasTable reports whether a table exists in the connected schema. Bad
// connections count as absent so callers can surface a single health
// failure instead of a scan error per table.
func HasTable(ctx context.Context, db *sql.DB, table string) bool {
	var name sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables lists the required tables absent from the schema.
func MissingTables(ctx context.Context, db *sql.DB) []string {
	var missing []string
	for _, table := range RequiredTables {
		if !HasTable(ctx, db, table) {
			missing = append(missing, table)
		}
	}
	return missing
}
