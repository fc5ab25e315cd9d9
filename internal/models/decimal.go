package models

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is a fixed-precision value that renders as a bare JSON number.
// Monetary and rating columns are NUMERIC in Postgres; they must round-trip
// exactly, and an absent value stays null instead of collapsing to 0.
type Decimal struct {
	decimal.Decimal
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// DecimalFromNullString converts a scanned NUMERIC column into a *Decimal,
// mapping SQL NULL to nil.
func DecimalFromNullString(ns sql.NullString) (*Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	value, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q: %w", ns.String, err)
	}
	return &Decimal{value}, nil
}
