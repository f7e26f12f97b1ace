package postgres

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// Ensure implementation satisfies interface at compile time
var _ repository.DBManager = (*TransactionManager)(nil)

// Pool is the subset of *pgxpool.Pool used by repositories; pgxmock pools satisfy it too
type Pool interface {
	Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Querier interface for operations that work with both pool and transaction
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type TxOptions struct {
	IsoLevel   pgx.TxIsoLevel
	MaxRetries uint64
	BaseDelay  time.Duration
}

func DefaultTxOptions() TxOptions {
	return TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		MaxRetries: 3,
		BaseDelay:  20 * time.Millisecond,
	}
}

// TransactionManager provides common database functionality
type TransactionManager struct {
	pool Pool
	opts TxOptions
}

func NewTransactionManager(pool Pool, opts ...TxOptions) *TransactionManager {
	o := DefaultTxOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return &TransactionManager{pool: pool, opts: o}
}

// WithTransaction executes a function within a database transaction. Conflicts and connection
// failures roll the unit back and re-run it with exponential backoff; when the budget is spent
// the error wraps model.ErrTransient. A connection lost during COMMIT is not retried since the
// outcome is unknown.
func (r *TransactionManager) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	backoff := retry.WithMaxRetries(r.opts.MaxRetries, retry.WithJitterPercent(20, retry.NewExponential(r.opts.BaseDelay)))

	var retryable bool
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		committing, err := r.runOnce(ctx, fn)
		retryable = repository.IsConflict(err) || (!committing && repository.IsTransient(err))
		if retryable {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && retryable {
		return fmt.Errorf("%w: %v", model.ErrTransient, err)
	}
	return err
}

func (r *TransactionManager) runOnce(ctx context.Context, fn func(pgx.Tx) error) (committing bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: r.opts.IsoLevel})
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(tx); err != nil {
		return false, err
	}

	if err = tx.Commit(ctx); err != nil {
		return true, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// WithSavepoint runs fn in a pgx nested transaction (SAVEPOINT) of tx
func (r *TransactionManager) WithSavepoint(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := fn(sp); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback savepoint: %v: %w", rbErr, err)
		}
		return err
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	return nil
}

// getExecutor returns either the provided tx or the pool
func (r *TransactionManager) getExecutor(tx ...pgx.Tx) Querier {
	if len(tx) > 0 && tx[0] != nil {
		return tx[0]
	}
	return r.pool
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation &&
		(constraint == "" || pgErr.ConstraintName == constraint)
}

func isCheckViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation &&
		(constraint == "" || pgErr.ConstraintName == constraint)
}
