package postgres

import (
	"context"
	"numbers-game/internal/model"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_InsertTransaction_DuplicateReference(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLedgerRepository(mock)

	trans := &model.Transaction{
		WalletID:      70,
		Type:          model.TxDeposit,
		Amount:        decimal.NewFromInt(100),
		BalanceBefore: decimal.Zero,
		BalanceAfter:  decimal.NewFromInt(100),
		Reference:     "TOPUP-1",
		Status:        model.TxCompleted,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WithArgs(trans.WalletID, trans.Type, trans.Amount, trans.BalanceBefore, trans.BalanceAfter, trans.Reference, trans.Status).
		WillReturnError(pgError(pgerrcode.UniqueViolation, "transactions_reference_key"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.InsertTransaction(context.Background(), trans, tx)

	require.ErrorIs(t, err, model.ErrDuplicateReference)
	assert.Contains(t, err.Error(), "TOPUP-1")
}
