package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Currency  string          `json:"currency" db:"currency"`     // Currency code (e.g., USD, EUR, RUB, GBP)
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Current balance, two fractional digits
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	IsActive  bool            `json:"is_active" db:"is_active"`   // Soft-deactivation flag
}
