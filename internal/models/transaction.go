package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDB is the immutable record of a completed transfer. The amount is
// the sum debited from the sender, in the sender's currency; the exchange rate
// is 1 when no conversion occurred.
type TransactionDB struct {
	TransactionID     uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	SenderWalletID    uuid.UUID       `json:"sender_wallet_id" db:"sender_wallet_id"`
	RecipientWalletID uuid.UUID       `json:"recipient_wallet_id" db:"recipient_wallet_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate" db:"exchange_rate"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// TransferEvent is the payload published to Kafka after a transfer commits.
type TransferEvent struct {
	TransactionID     string `json:"transaction_id"`      // Identifier of the committed transaction
	SenderWalletID    string `json:"sender_wallet_id"`    // Debited wallet
	RecipientWalletID string `json:"recipient_wallet_id"` // Credited wallet
	Amount            string `json:"amount"`              // Debited amount, sender's currency
	ExchangeRate      string `json:"exchange_rate"`       // Rate applied to the transfer
	Timestamp         int64  `json:"timestamp"`           // Unix timestamp of the commit
}
