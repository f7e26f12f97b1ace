package postgres

import (
	"context"
	"errors"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockDB.ExpectationsWereMet())
		mockDB.Close()
	})
	return mockDB
}

func testTxOptions() TxOptions {
	return TxOptions{IsoLevel: pgx.ReadCommitted, MaxRetries: 2, BaseDelay: time.Millisecond}
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestWithTransaction_Commits(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectCommit()

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithTransaction_RetriesConflictThenSucceeds(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectRollback()
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectCommit()

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		if calls == 1 {
			return pgError(pgerrcode.SerializationFailure, "")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithTransaction_ExhaustedRetriesAreTransient(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	// first attempt plus two retries
	for i := 0; i < 3; i++ {
		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectRollback()
	}

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		return pgError(pgerrcode.DeadlockDetected, "")
	})

	require.ErrorIs(t, err, model.ErrTransient)
	assert.Equal(t, 3, calls)
}

func TestWithTransaction_DomainErrorIsNotRetried(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectRollback()

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		return model.ErrInsufficientFunds
	})

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.NotErrorIs(t, err, model.ErrTransient)
	assert.Equal(t, 1, calls)
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(errors.New("connection refused"))

	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

func TestWithTransaction_RetriesServerShutdownOnBegin(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	for i := 0; i < 3; i++ {
		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
			WillReturnError(pgError(pgerrcode.AdminShutdown, ""))
	}

	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	require.ErrorIs(t, err, model.ErrTransient)
}

func TestWithTransaction_RetriesConnectionFailureInUnit(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectRollback()
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectCommit()

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		if calls == 1 {
			return pgError(pgerrcode.ConnectionFailure, "")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithTransaction_ConnectionLostOnCommitIsNotRetried(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.ConnectionFailure, ""))
	mock.ExpectRollback()

	calls := 0
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrTransient)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, repository.IsTransient(pgError(pgerrcode.SerializationFailure, "")))
	assert.True(t, repository.IsTransient(pgError(pgerrcode.ConnectionFailure, "")))
	assert.True(t, repository.IsTransient(pgError(pgerrcode.AdminShutdown, "")))
	assert.False(t, repository.IsTransient(pgError(pgerrcode.UniqueViolation, "")))
	assert.False(t, repository.IsTransient(errors.New("boom")))
	assert.False(t, repository.IsTransient(nil))
}

func TestWithSavepoint_RollsBackOnlyTheSavepoint(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTransactionManager(mock, testTxOptions())

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectCommit()

	var spErr error
	err := tm.WithTransaction(context.Background(), func(tx pgx.Tx) error {
		spErr = tm.WithSavepoint(context.Background(), tx, func(sp pgx.Tx) error {
			return model.ErrWalletInactive
		})
		return nil
	})

	require.NoError(t, err)
	assert.ErrorIs(t, spErr, model.ErrWalletInactive)
}

func TestConstraintHelpers(t *testing.T) {
	unique := pgError(pgerrcode.UniqueViolation, "bets_reference_key")
	check := pgError(pgerrcode.CheckViolation, "balance_non_negative")

	assert.True(t, isUniqueViolation(unique, "bets_reference_key"))
	assert.True(t, isUniqueViolation(unique, ""))
	assert.False(t, isUniqueViolation(unique, "transactions_reference_key"))
	assert.False(t, isUniqueViolation(check, ""))

	assert.True(t, isCheckViolation(check, "balance_non_negative"))
	assert.False(t, isCheckViolation(errors.New("boom"), ""))
}
