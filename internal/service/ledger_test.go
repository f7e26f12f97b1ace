package service

import (
	"context"
	"numbers-game/internal/model"
	"numbers-game/mocks/repository"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func passThroughTx(mockDBManager *mocks.DBManager) {
	mockDBManager.On("WithTransaction", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	}).Maybe()
	mockDBManager.On("WithSavepoint", mock.Anything, mock.Anything, mock.Anything).Return(func(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error {
		return fn(tx)
	}).Maybe()
}

func TestDebitTx_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      1,
		Balance: decimal.NewFromInt(100),
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(1), decimalEq("89.50"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.WalletID == 1 &&
			trans.Type == model.TxBet &&
			trans.Reference == "20250101-MRN-AAAAAAAA" &&
			trans.BalanceBefore.Equal(decimal.NewFromInt(100)) &&
			trans.BalanceAfter.Equal(decimal.RequireFromString("89.50")) &&
			trans.Status == model.TxCompleted
	}), mock.Anything).Return(nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.DebitTx(ctx, nil, model.LedgerRequest{
		WalletID:  1,
		Amount:    decimal.RequireFromString("10.50"),
		Type:      model.TxBet,
		Reference: "20250101-MRN-AAAAAAAA",
	})

	require.NoError(t, err)
	assert.Equal(t, "89.50", result.Balance.StringFixed(2))
	assert.Equal(t, "10.50", result.Transaction.Amount.StringFixed(2))
}

func TestDebitTx_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      1,
		Balance: decimal.NewFromInt(5),
		Status:  model.WalletActive,
	}, nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	_, err := service.DebitTx(ctx, nil, model.LedgerRequest{
		WalletID:  1,
		Amount:    decimal.NewFromInt(10),
		Type:      model.TxBet,
		Reference: "ref",
	})

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	mockWalletRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDebitTx_ExactBalanceIsAllowed(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      1,
		Balance: decimal.NewFromInt(10),
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(1), decimalEq("0"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.Anything, mock.Anything).Return(nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.DebitTx(ctx, nil, model.LedgerRequest{
		WalletID:  1,
		Amount:    decimal.NewFromInt(10),
		Type:      model.TxBet,
		Reference: "ref",
	})

	require.NoError(t, err)
	assert.True(t, result.Balance.IsZero())
}

func TestDebitTx_WalletInactive(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      1,
		Balance: decimal.NewFromInt(100),
		Status:  model.WalletSuspended,
	}, nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	_, err := service.DebitTx(ctx, nil, model.LedgerRequest{
		WalletID:  1,
		Amount:    decimal.NewFromInt(10),
		Type:      model.TxBet,
		Reference: "ref",
	})

	require.ErrorIs(t, err, model.ErrWalletInactive)
}

func TestCreditTx_SuspendedWalletIsCredited(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(2), mock.Anything).Return(&model.Wallet{
		ID:      2,
		Balance: decimal.NewFromInt(90),
		Status:  model.WalletSuspended,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, int64(2), decimalEq("5090"), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TxPayout && trans.Amount.Equal(decimal.NewFromInt(5000))
	}), mock.Anything).Return(nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.CreditTx(ctx, nil, model.LedgerRequest{
		WalletID:  2,
		Amount:    decimal.NewFromInt(5000),
		Type:      model.TxPayout,
		Reference: "PAY-ref",
	})

	require.NoError(t, err)
	assert.Equal(t, "5090.00", result.Balance.StringFixed(2))
}

func TestLedger_RejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     model.LedgerRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			req:     model.LedgerRequest{WalletID: 1, Amount: decimal.Zero, Type: model.TxDeposit, Reference: "ref"},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     model.LedgerRequest{WalletID: 1, Amount: decimal.NewFromInt(-5), Type: model.TxDeposit, Reference: "ref"},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "sub-cent amount",
			req:     model.LedgerRequest{WalletID: 1, Amount: decimal.RequireFromString("0.001"), Type: model.TxDeposit, Reference: "ref"},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "missing reference",
			req:     model.LedgerRequest{WalletID: 1, Amount: decimal.NewFromInt(5), Type: model.TxDeposit},
			wantErr: model.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalletRepo := mocks.NewWalletRepository(t)
			mockLedgerRepo := mocks.NewLedgerRepository(t)
			mockDBManager := mocks.NewDBManager(t)
			passThroughTx(mockDBManager)

			service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, zerolog.Nop())

			_, err := service.Credit(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetTransactions_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockLedgerRepo.On("GetTransactionsByWallet", ctx, int64(1), 10, 0).Return([]*model.Transaction{}, nil)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, zerolog.Nop())

	_, err := service.GetTransactions(ctx, 1, 500, -3)
	require.NoError(t, err)
}

func TestDebitTx_RejectsSubCentStake(t *testing.T) {
	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewLedgerService(mockWalletRepo, mockLedgerRepo, mockDBManager, zerolog.Nop())

	result, err := service.DebitTx(context.Background(), nil, model.LedgerRequest{
		WalletID:  1,
		Amount:    decimal.RequireFromString("10.005"),
		Type:      model.TxBet,
		Reference: "20250101-MRN-AAAAAAAA",
	})

	require.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Nil(t, result)
	mockWalletRepo.AssertNotCalled(t, "GetWalletForUpdate", mock.Anything, mock.Anything, mock.Anything)
}
