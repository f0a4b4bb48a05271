package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ivmolchanov/walletsvc/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// passthroughTx runs fn directly, standing in for a database transaction.
func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestTransferService_Transfer_SameCurrency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	pair := []models.WalletDB{
		{WalletID: senderID, UserID: userID, Currency: models.USD, Balance: decimal.RequireFromString("100.00")},
		{WalletID: recipientID, UserID: uuid.New(), Currency: models.USD, Balance: decimal.RequireFromString("5.00")},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), senderID, recipientID).Return(pair, nil)

	ledger.EXPECT().DecreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
			assert.Equal(t, senderID, wallet.WalletID)
			assert.True(t, amount.Equal(decimal.RequireFromString("10.00")))
			return nil
		})
	ledger.EXPECT().IncreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
			assert.Equal(t, recipientID, wallet.WalletID)
			assert.True(t, amount.Equal(decimal.RequireFromString("10.00")))
			return nil
		})

	txnWriter.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.TransactionDB) error {
			assert.Equal(t, senderID, txn.SenderWalletID)
			assert.Equal(t, recipientID, txn.RecipientWalletID)
			assert.True(t, txn.Amount.Equal(decimal.RequireFromString("10.00")))
			assert.True(t, txn.ExchangeRate.Equal(decimal.New(1, 0)))
			return nil
		})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, kafkaWriter)
	txn, err := svc.Transfer(ctx, userID, senderID, recipientID, decimal.RequireFromString("10.00"))

	assert.NoError(t, err)
	assert.NotNil(t, txn)
}

func TestTransferService_Transfer_CrossCurrency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	pair := []models.WalletDB{
		{WalletID: senderID, UserID: userID, Currency: models.USD, Balance: decimal.RequireFromString("100.00")},
		{WalletID: recipientID, UserID: uuid.New(), Currency: models.RUB, Balance: decimal.RequireFromString("0.00")},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), senderID, recipientID).Return(pair, nil)
	rates.EXPECT().CurrentRate(gomock.Any(), models.USD, models.RUB).
		Return(decimal.RequireFromString("63.54563"), nil)

	// Sender is debited in USD, recipient credited with the converted amount
	ledger.EXPECT().DecreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
			assert.Equal(t, senderID, wallet.WalletID)
			assert.True(t, amount.Equal(decimal.RequireFromString("50.00")))
			return nil
		})
	ledger.EXPECT().IncreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wallet *models.WalletDB, amount decimal.Decimal) error {
			// 50.00 * 63.54563 = 3177.2815, rounds half-down to 3177.28
			assert.True(t, amount.Equal(decimal.RequireFromString("3177.28")), "got %s", amount)
			return nil
		})

	txnWriter.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.TransactionDB) error {
			assert.True(t, txn.ExchangeRate.Equal(decimal.RequireFromString("63.54563")))
			return nil
		})

	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, nil)
	txn, err := svc.Transfer(ctx, userID, senderID, recipientID, decimal.RequireFromString("50.00"))

	assert.NoError(t, err)
	assert.NotNil(t, txn)
}

func TestTransferService_Transfer_WalletNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	// Only the sender wallet exists
	pair := []models.WalletDB{
		{WalletID: senderID, UserID: userID, Currency: models.USD},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), senderID, recipientID).Return(pair, nil)

	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, nil)
	_, err := svc.Transfer(ctx, userID, senderID, recipientID, decimal.RequireFromString("10.00"))

	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestTransferService_Transfer_SelfTransfer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	pair := []models.WalletDB{
		{WalletID: walletID, UserID: userID, Currency: models.USD},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), walletID, walletID).Return(pair, nil)

	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, nil)
	_, err := svc.Transfer(ctx, userID, walletID, walletID, decimal.RequireFromString("10.00"))

	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestTransferService_Transfer_NotOwner(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	pair := []models.WalletDB{
		{WalletID: senderID, UserID: uuid.New(), Currency: models.USD},
		{WalletID: recipientID, UserID: uuid.New(), Currency: models.USD},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), senderID, recipientID).Return(pair, nil)

	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, nil)
	_, err := svc.Transfer(ctx, uuid.New(), senderID, recipientID, decimal.RequireFromString("10.00"))

	assert.ErrorIs(t, err, ErrUnauthorizedWallet)
}

func TestTransferService_Transfer_CreditFailureAbortsTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	ledger := NewMockBalanceMutator(ctrl)
	rates := NewMockRateProvider(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	pair := []models.WalletDB{
		{WalletID: senderID, UserID: userID, Currency: models.USD, Balance: decimal.RequireFromString("100.00")},
		{WalletID: recipientID, UserID: uuid.New(), Currency: models.USD, Balance: decimal.RequireFromString("999999999.00")},
	}
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), senderID, recipientID).Return(pair, nil)
	ledger.EXPECT().DecreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ledger.EXPECT().IncreaseBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrBalanceCeiling)

	// No transaction record is written when the credit fails
	svc := NewTransferService(wallets, ledger, rates, txnWriter, txnReader, passthroughTx, nil)
	txn, err := svc.Transfer(ctx, userID, senderID, recipientID, decimal.RequireFromString("10.00"))

	assert.ErrorIs(t, err, ErrBalanceCeiling)
	assert.Nil(t, txn)
}

func TestTransferService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	expected := []models.TransactionDB{
		{TransactionID: uuid.New(), SenderWalletID: walletID},
		{TransactionID: uuid.New(), RecipientWalletID: walletID},
	}
	wallets.EXPECT().ExistsForUser(ctx, userID, walletID).Return(true, nil)
	txnReader.EXPECT().ListByWalletID(ctx, walletID).Return(expected, nil)

	svc := NewTransferService(wallets, nil, nil, nil, txnReader, passthroughTx, nil)
	txns, err := svc.ListTransactions(ctx, userID, walletID)

	assert.NoError(t, err)
	assert.Equal(t, expected, txns)
}

func TestTransferService_ListTransactions_NotOwner(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	wallets.EXPECT().ExistsForUser(ctx, userID, walletID).Return(false, nil)

	svc := NewTransferService(wallets, nil, nil, nil, nil, passthroughTx, nil)
	_, err := svc.ListTransactions(ctx, userID, walletID)

	assert.ErrorIs(t, err, ErrUnauthorizedWallet)
}

func TestTransferService_ListTransactions_Empty(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	txnReader := NewMockTransactionReader(ctrl)

	wallets.EXPECT().ExistsForUser(ctx, userID, walletID).Return(true, nil)
	txnReader.EXPECT().ListByWalletID(ctx, walletID).Return(nil, nil)

	svc := NewTransferService(wallets, nil, nil, nil, txnReader, passthroughTx, nil)
	txns, err := svc.ListTransactions(ctx, userID, walletID)

	assert.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}

func TestTransferService_Transfer_LoadPairError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockTransferWalletReader(ctrl)
	dbErr := errors.New("db down")
	wallets.EXPECT().GetPairForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	svc := NewTransferService(wallets, nil, nil, nil, nil, passthroughTx, nil)
	_, err := svc.Transfer(ctx, uuid.New(), uuid.New(), uuid.New(), decimal.RequireFromString("1.00"))

	assert.ErrorIs(t, err, dbErr)
}
