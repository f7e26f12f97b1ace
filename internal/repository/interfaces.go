package repository

import (
	"context"
	"numbers-game/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes fn in a database transaction, retrying the whole unit on
	// serialization and lock conflicts
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error

	// WithSavepoint runs fn inside a nested transaction of tx; a failure rolls back only fn's work
	WithSavepoint(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error
}

// WalletRepository defines operations for wallet balances
type WalletRepository interface {
	// GetWalletForUpdate retrieves a wallet with row-level lock (must be in transaction)
	GetWalletForUpdate(ctx context.Context, walletID int64, tx pgx.Tx) (*model.Wallet, error)

	// GetWallet retrieves a wallet by id (read-only)
	GetWallet(ctx context.Context, walletID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// GetWalletByUser retrieves the wallet owned by a user (read-only)
	GetWalletByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// UpdateBalance writes a new balance and bumps the version
	UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal, tx pgx.Tx) error

	// UpdateStatus sets ACTIVE or SUSPENDED
	UpdateStatus(ctx context.Context, walletID int64, status model.WalletStatus) (*model.Wallet, error)
}

// LedgerRepository stores immutable wallet transactions
type LedgerRepository interface {
	// InsertTransaction creates a new ledger entry, ErrDuplicateReference on reference reuse
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetTransactionsByWallet retrieves paginated transactions for a wallet
	GetTransactionsByWallet(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error)
}

// DrawRepository defines operations on draws
type DrawRepository interface {
	CreateDraw(ctx context.Context, draw *model.Draw) error
	GetDraw(ctx context.Context, drawID int64, tx ...pgx.Tx) (*model.Draw, error)

	// GetDrawForUpdate locks the draw row; bet placement and transitions serialize on it
	GetDrawForUpdate(ctx context.Context, drawID int64, tx pgx.Tx) (*model.Draw, error)

	// TransitionStatus moves the draw to `to` only if its current status is one of `from`.
	// Returns ErrInvalidStateTransition when the draw exists in another status.
	TransitionStatus(ctx context.Context, drawID int64, from []model.DrawStatus, to model.DrawStatus, tx pgx.Tx) (*model.Draw, error)

	// IncrementTotals adds one bet and its stake to the draw counters
	IncrementTotals(ctx context.Context, drawID int64, amount decimal.Decimal, tx pgx.Tx) error

	// SaveResult stores the drawn numbers and payout totals and moves CLOSED -> DRAWN
	SaveResult(ctx context.Context, draw *model.Draw, tx pgx.Tx) error

	// MarkSettled moves DRAWN -> SETTLED
	MarkSettled(ctx context.Context, drawID int64, exceptions bool, tx pgx.Tx) (*model.Draw, error)

	// CloseDueDraws closes every OPEN draw whose cutoff is at or before now
	CloseDueDraws(ctx context.Context, now time.Time) ([]int64, error)

	// ListOpenDraws returns OPEN draws whose cutoff is after now, earliest first
	ListOpenDraws(ctx context.Context, now time.Time) ([]*model.Draw, error)
}

// BetRepository defines operations on bets
type BetRepository interface {
	// InsertBet creates a bet, ErrDuplicateReference on reference reuse
	InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error

	GetBetByReference(ctx context.Context, reference string) (*model.Bet, error)

	// ListBetsByDraw returns bets of a draw, optionally filtered by status
	ListBetsByDraw(ctx context.Context, drawID int64, statuses []model.BetStatus, tx ...pgx.Tx) ([]*model.Bet, error)

	// ListPendingWinners locks PENDING bets of a draw matching the combination key
	ListPendingWinners(ctx context.Context, drawID int64, combinationKey string, tx pgx.Tx) ([]*model.Bet, error)

	// MarkLosers resolves every remaining PENDING bet of a draw not matching the key as LOST
	MarkLosers(ctx context.Context, drawID int64, combinationKey string, tx pgx.Tx) (int64, error)

	// UpdateBetResult writes status, is_winner and payout_amount of a PENDING bet
	UpdateBetResult(ctx context.Context, bet *model.Bet, tx pgx.Tx) error
}

// CommissionRepository stores agent commissions
type CommissionRepository interface {
	// InsertCommission creates the record unless one exists for (bet, type); reports whether it inserted
	InsertCommission(ctx context.Context, commission *model.Commission, tx pgx.Tx) (bool, error)

	GetCommissionsByDraw(ctx context.Context, drawID int64, tx ...pgx.Tx) ([]*model.Commission, error)
}

// GameConfigRepository reads the active game rules
type GameConfigRepository interface {
	// GetActiveConfig returns ErrConfigUnavailable when no record is active
	GetActiveConfig(ctx context.Context) (*model.GameConfig, error)
}

// AutoBetRepository defines operations on standing auto-bet instructions
type AutoBetRepository interface {
	CreateAutoBet(ctx context.Context, cfg *model.AutoBetConfig) error
	GetAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error)

	// TransitionStatus changes the status only if the current one is in `from`
	TransitionStatus(ctx context.Context, id int64, from []model.AutoBetStatus, to model.AutoBetStatus) (*model.AutoBetConfig, error)

	// ListRunnable returns ACTIVE configs with start_date <= now
	ListRunnable(ctx context.Context, now time.Time) ([]*model.AutoBetConfig, error)

	// RecordExecution links a bet to (config, draw) and bumps executed_bets,
	// ErrAutoBetAlreadyExecuted if the pair exists
	RecordExecution(ctx context.Context, configID, drawID, betID int64, tx pgx.Tx) error
}
