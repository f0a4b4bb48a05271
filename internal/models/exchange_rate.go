package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RatesByCurrency maps a target currency code to its rate against the base
// currency. Stored as JSONB.
type RatesByCurrency map[string]float64

// Value implements driver.Valuer for JSONB storage.
func (r RatesByCurrency) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB storage.
func (r *RatesByCurrency) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type %T for RatesByCurrency", src)
	}
}

// ExchangeRateDB represents an immutable exchange rate snapshot row. Snapshots
// accumulate append-only; the newest row per base currency is the current rate.
type ExchangeRateDB struct {
	RateID    uuid.UUID       `json:"rate_id" db:"rate_id"`       // Unique snapshot identifier
	Currency  string          `json:"currency" db:"currency"`     // Base currency code
	Rates     RatesByCurrency `json:"rates" db:"rates"`           // Rates against the base currency
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp of ingestion
}
