package postgres

import (
	"context"
	"numbers-game/internal/model"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestAutoBetRepository_RecordExecution(t *testing.T) {
	t.Run("Counts the execution", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAutoBetRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO auto_bet_executions`)).
			WithArgs(int64(1), int64(2), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta(`SET executed_bets = executed_bets + 1`)).
			WithArgs(int64(1), model.AutoBetActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		tx, err := mock.Begin(context.Background())
		require.NoError(t, err)

		require.NoError(t, repo.RecordExecution(context.Background(), 1, 2, 100, tx))
	})

	t.Run("Second bet for the same draw", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAutoBetRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO auto_bet_executions`)).
			WithArgs(int64(1), int64(2), int64(100)).
			WillReturnError(pgError(pgerrcode.UniqueViolation, "auto_bet_executions_config_draw_key"))

		tx, err := mock.Begin(context.Background())
		require.NoError(t, err)

		err = repo.RecordExecution(context.Background(), 1, 2, 100, tx)
		require.ErrorIs(t, err, model.ErrAutoBetAlreadyExecuted)
	})

	t.Run("Config paused meanwhile", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAutoBetRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO auto_bet_executions`)).
			WithArgs(int64(1), int64(2), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta(`SET executed_bets = executed_bets + 1`)).
			WithArgs(int64(1), model.AutoBetActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		tx, err := mock.Begin(context.Background())
		require.NoError(t, err)

		err = repo.RecordExecution(context.Background(), 1, 2, 100, tx)
		require.ErrorIs(t, err, model.ErrInvalidStateTransition)
	})
}
