package service

import (
	"context"
	"numbers-game/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
)

// LedgerService owns every wallet balance mutation
type LedgerService interface {
	// DebitTx and CreditTx mutate a wallet and append its Transaction inside the caller's tx
	DebitTx(ctx context.Context, tx pgx.Tx, req model.LedgerRequest) (*model.LedgerResult, error)
	CreditTx(ctx context.Context, tx pgx.Tx, req model.LedgerRequest) (*model.LedgerResult, error)

	// Debit and Credit run the same operation in their own transaction
	Debit(ctx context.Context, req model.LedgerRequest) (*model.LedgerResult, error)
	Credit(ctx context.Context, req model.LedgerRequest) (*model.LedgerResult, error)

	GetWallet(ctx context.Context, walletID int64) (*model.Wallet, error)
	GetTransactions(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error)
	SetWalletStatus(ctx context.Context, walletID int64, status model.WalletStatus) (*model.Wallet, error)
}

// DrawService drives the draw state machine up to CLOSED and cancellation
type DrawService interface {
	ScheduleDraw(ctx context.Context, input model.ScheduleDrawInput) (*model.Draw, error)
	GetDraw(ctx context.Context, drawID int64) (*model.Draw, error)
	ListDrawBets(ctx context.Context, drawID int64) ([]*model.Bet, error)
	OpenDraw(ctx context.Context, drawID int64) (*model.Draw, error)
	CloseDraw(ctx context.Context, drawID int64) (*model.Draw, error)
	// CloseDueDraws closes every OPEN draw whose cutoff has passed at now
	CloseDueDraws(ctx context.Context, now time.Time) ([]int64, error)
	// CancelDraw cancels a pre-DRAWN draw and refunds its pending bets
	CancelDraw(ctx context.Context, drawID int64) (*model.Draw, error)
}

// BetService places bets
type BetService interface {
	PlaceBet(ctx context.Context, input model.PlaceBetInput) (*model.Bet, error)
	GetBet(ctx context.Context, reference string) (*model.Bet, error)
}

// CommissionService computes and disburses agent commissions for a bet
type CommissionService interface {
	DistributeTx(ctx context.Context, tx pgx.Tx, bet *model.Bet, cfg *model.GameConfig) ([]*model.Commission, error)
}

// SettlementService resolves draws
type SettlementService interface {
	// RecordDrawResult resolves every bet of a CLOSED draw against the drawn numbers and settles it
	RecordDrawResult(ctx context.Context, drawID int64, number1, number2 int) (*model.Draw, error)
	// SettleDraw distributes commissions for a DRAWN draw and marks it SETTLED; re-running is a no-op
	SettleDraw(ctx context.Context, drawID int64) (*model.SettlementResult, error)
}

// AutoBetService manages standing auto-bet instructions
type AutoBetService interface {
	CreateAutoBet(ctx context.Context, input model.CreateAutoBetInput) (*model.AutoBetConfig, error)
	GetAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error)
	PauseAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error)
	ResumeAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error)
	CancelAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error)
	// RunCycle places at most one bet per ACTIVE config and OPEN draw
	RunCycle(ctx context.Context, now time.Time) (*model.AutoBetCycleReport, error)
}
