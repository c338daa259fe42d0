package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	intconfig "fleetledger/internal/config"
)

func fallbackDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// decCol scans DECIMAL columns through a string to keep exact precision.
type decCol struct {
	d *decimal.Decimal
}

func (c decCol) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c.d = decimal.Zero
		return nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		*c.d = d
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		*c.d = d
		return nil
	case float64:
		*c.d = decimal.NewFromFloat(v)
		return nil
	case int64:
		*c.d = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into decimal", src)
	}
}
