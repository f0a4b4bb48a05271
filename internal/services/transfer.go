package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/logger"
	"github.com/ivmolchanov/walletsvc/internal/metrics"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/ivmolchanov/walletsvc/internal/money"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound is returned when a referenced wallet id does not resolve.
	ErrWalletNotFound = errors.New("target wallet or your wallet does not exist")
	// ErrUnauthorizedWallet is returned when the acting user does not own the wallet.
	ErrUnauthorizedWallet = errors.New("this is not your wallet")
)

// TransferWalletReader loads and checks wallets for the transfer engine.
type TransferWalletReader interface {
	GetPairForUpdate(ctx context.Context, firstID, secondID uuid.UUID) ([]models.WalletDB, error) // Loads and locks both wallet rows
	ExistsForUser(ctx context.Context, userID, walletID uuid.UUID) (bool, error)                  // Ownership check
}

// BalanceMutator is the ledger surface the transfer engine drives.
type BalanceMutator interface {
	IncreaseBalance(ctx context.Context, wallet *models.WalletDB, amount decimal.Decimal) error
	DecreaseBalance(ctx context.Context, wallet *models.WalletDB, amount decimal.Decimal) error
}

// RateProvider resolves the current exchange rate for a currency pair.
type RateProvider interface {
	CurrentRate(ctx context.Context, baseCurrency, targetCurrency string) (decimal.Decimal, error)
}

// TransactionWriter persists transfer records.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// TransactionReader lists transfer history.
type TransactionReader interface {
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error)
}

// TxRunner executes fn atomically: either all of fn's storage effects are
// committed or none are.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                  // Closes the Kafka writer
}

// TransferService orchestrates atomic transfers between wallets and answers
// transaction history queries.
type TransferService struct {
	wallets     TransferWalletReader
	ledger      BalanceMutator
	rates       RateProvider
	txnWriter   TransactionWriter
	txnReader   TransactionReader
	runInTx     TxRunner
	kafkaWriter KafkaWriter
}

// NewTransferService creates a new TransferService. The Kafka writer may be
// nil, in which case committed transfers are not published.
func NewTransferService(
	wallets TransferWalletReader,
	ledger BalanceMutator,
	rates RateProvider,
	txnWriter TransactionWriter,
	txnReader TransactionReader,
	runInTx TxRunner,
	kafkaWriter KafkaWriter,
) *TransferService {
	return &TransferService{
		wallets:     wallets,
		ledger:      ledger,
		rates:       rates,
		txnWriter:   txnWriter,
		txnReader:   txnReader,
		runInTx:     runInTx,
		kafkaWriter: kafkaWriter,
	}
}

// Transfer moves amount from the sender wallet to the recipient wallet,
// converting currency when they differ. The debit, the credit, and the
// transaction record are one atomic unit: any failure rolls back all three.
func (s *TransferService) Transfer(
	ctx context.Context,
	actingUserID uuid.UUID,
	senderWalletID, recipientWalletID uuid.UUID,
	amount decimal.Decimal,
) (*models.TransactionDB, error) {
	start := time.Now()

	var created *models.TransactionDB
	err := s.runInTx(ctx, func(ctx context.Context) error {
		wallets, err := s.wallets.GetPairForUpdate(ctx, senderWalletID, recipientWalletID)
		if err != nil {
			logger.Log.Errorw("failed to load wallet pair", "sender", senderWalletID, "recipient", recipientWalletID, "error", err)
			return err
		}

		byID := make(map[uuid.UUID]*models.WalletDB, len(wallets))
		for i := range wallets {
			byID[wallets[i].WalletID] = &wallets[i]
		}
		sender, okSender := byID[senderWalletID]
		recipient, okRecipient := byID[recipientWalletID]
		if !okSender || !okRecipient || len(byID) < 2 {
			return ErrWalletNotFound
		}

		if sender.UserID != actingUserID {
			return ErrUnauthorizedWallet
		}

		rate := decimal.New(1, 0)
		transferAmount := amount
		if sender.Currency != recipient.Currency {
			rate, err = s.rates.CurrentRate(ctx, sender.Currency, recipient.Currency)
			if err != nil {
				return err
			}
			transferAmount = money.Convert(amount, rate)
		}

		if err := s.ledger.DecreaseBalance(ctx, sender, amount); err != nil {
			return err
		}
		if err := s.ledger.IncreaseBalance(ctx, recipient, transferAmount); err != nil {
			return err
		}

		txn := &models.TransactionDB{
			TransactionID:     uuid.New(),
			SenderWalletID:    sender.WalletID,
			RecipientWalletID: recipient.WalletID,
			Amount:            money.RoundAmount(amount),
			ExchangeRate:      rate,
		}
		if err := s.txnWriter.Save(ctx, txn); err != nil {
			return err
		}

		created = txn
		return nil
	})
	if err != nil {
		metrics.TransfersFailedTotal.Inc()
		return nil, err
	}

	metrics.TransfersTotal.Inc()
	metrics.TransferDuration.Observe(time.Since(start).Seconds())
	s.publishTransfer(ctx, created)

	return created, nil
}

// ListTransactions returns every transaction touching the wallet, oldest
// first. The wallet must belong to the acting user.
func (s *TransferService) ListTransactions(ctx context.Context, actingUserID, walletID uuid.UUID) ([]models.TransactionDB, error) {
	owned, err := s.wallets.ExistsForUser(ctx, actingUserID, walletID)
	if err != nil {
		logger.Log.Errorw("failed to check wallet ownership", "userID", actingUserID, "walletID", walletID, "error", err)
		return nil, err
	}
	if !owned {
		return nil, ErrUnauthorizedWallet
	}

	txns, err := s.txnReader.ListByWalletID(ctx, walletID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "walletID", walletID, "error", err)
		return nil, err
	}
	if txns == nil {
		txns = []models.TransactionDB{}
	}
	return txns, nil
}

// publishTransfer publishes a committed transfer to Kafka.
func (s *TransferService) publishTransfer(ctx context.Context, txn *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransferEvent{
		TransactionID:     txn.TransactionID.String(),
		SenderWalletID:    txn.SenderWalletID.String(),
		RecipientWalletID: txn.RecipientWalletID.String(),
		Amount:            txn.Amount.String(),
		ExchangeRate:      txn.ExchangeRate.String(),
		Timestamp:         time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transfer event for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transfer to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transfer published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
