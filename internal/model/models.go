package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    WalletStatus    `json:"status"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Transaction is an immutable ledger entry written together with the balance change it documents.
type Transaction struct {
	ID            int64             `json:"id"`
	WalletID      int64             `json:"wallet_id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	BalanceBefore decimal.Decimal   `json:"balance_before"`
	BalanceAfter  decimal.Decimal   `json:"balance_after"`
	Reference     string            `json:"reference"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

type Draw struct {
	ID                   int64           `json:"id"`
	ScheduleID           int64           `json:"schedule_id"`
	DrawType             DrawType        `json:"draw_type"`
	DrawDate             time.Time       `json:"draw_date"`
	ScheduledAt          time.Time       `json:"scheduled_at"`
	CutoffMinutes        int             `json:"cutoff_minutes"`
	Status               DrawStatus      `json:"status"`
	Number1              *int            `json:"number1,omitempty"`
	Number2              *int            `json:"number2,omitempty"`
	CombinationKey       *string         `json:"combination_key,omitempty"`
	TotalBets            int64           `json:"total_bets"`
	TotalStake           decimal.Decimal `json:"total_stake"`
	TotalPayout          decimal.Decimal `json:"total_payout"`
	GrossProfit          decimal.Decimal `json:"gross_profit"`
	SettlementExceptions bool            `json:"settlement_exceptions"`
	DrawnAt              *time.Time      `json:"drawn_at,omitempty"`
	SettledAt            *time.Time      `json:"settled_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// CutoffAt is the moment the draw stops accepting bets.
func (d *Draw) CutoffAt() time.Time {
	return d.ScheduledAt.Add(-time.Duration(d.CutoffMinutes) * time.Minute)
}

type Bet struct {
	ID              int64           `json:"id"`
	DrawID          int64           `json:"draw_id"`
	BettorID        int64           `json:"bettor_id"`
	CobradorID      *int64          `json:"cobrador_id,omitempty"`
	CaboID          *int64          `json:"cabo_id,omitempty"`
	AutoBetConfigID *int64          `json:"auto_bet_config_id,omitempty"`
	Number1         int             `json:"number1"`
	Number2         int             `json:"number2"`
	CombinationKey  string          `json:"combination_key"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          BetStatus       `json:"status"`
	IsWinner        bool            `json:"is_winner"`
	PayoutAmount    decimal.Decimal `json:"payout_amount"`
	Reference       string          `json:"reference"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Commission struct {
	ID        int64            `json:"id"`
	BetID     int64            `json:"bet_id"`
	DrawID    int64            `json:"draw_id"`
	AgentID   *int64           `json:"agent_id,omitempty"`
	Type      CommissionType   `json:"type"`
	Rate      decimal.Decimal  `json:"rate"`
	Amount    decimal.Decimal  `json:"amount"`
	Status    CommissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

type AutoBetConfig struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	CobradorID   *int64          `json:"cobrador_id,omitempty"`
	CaboID       *int64          `json:"cabo_id,omitempty"`
	Number1      int             `json:"number1"`
	Number2      int             `json:"number2"`
	AmountPerBet decimal.Decimal `json:"amount_per_bet"`
	Currency     string          `json:"currency"`
	DurationDays int             `json:"duration_days"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalBets    int             `json:"total_bets"`
	ExecutedBets int             `json:"executed_bets"`
	Status       AutoBetStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Exhausted reports whether the config ran out of bets or time at now.
func (c *AutoBetConfig) Exhausted(now time.Time) bool {
	return c.ExecutedBets >= c.TotalBets || now.After(c.EndDate)
}

type GameConfig struct {
	ID               int64           `json:"id"`
	MaxNumber        int             `json:"max_number"`
	AllowRepeat      bool            `json:"allow_repeat"`
	PayoutMultiplier decimal.Decimal `json:"payout_multiplier"`
	MinBet           decimal.Decimal `json:"min_bet"`
	MaxBet           decimal.Decimal `json:"max_bet"`
	CobradorRate     decimal.Decimal `json:"cobrador_rate"`
	CaboRate         decimal.Decimal `json:"cabo_rate"`
	CapitalistaRate  decimal.Decimal `json:"capitalista_rate"`
	GovernmentRate   decimal.Decimal `json:"government_rate"`
	Currency         string          `json:"currency"`
	IsActive         bool            `json:"is_active"`
}

// PlaceBetInput is the engine-level request for a single bet.
type PlaceBetInput struct {
	DrawID          int64
	BettorID        int64
	CobradorID      *int64
	CaboID          *int64
	AutoBetConfigID *int64
	Number1         int
	Number2         int
	Amount          decimal.Decimal
	Currency        string
}

type LedgerRequest struct {
	WalletID  int64
	Amount    decimal.Decimal
	Type      TransactionType
	Reference string
}

type LedgerResult struct {
	Balance     decimal.Decimal
	Transaction *Transaction
}

type SettlementResult struct {
	Draw        *Draw         `json:"draw"`
	Winners     []*Bet        `json:"winners"`
	Commissions []*Commission `json:"commissions"`
}

type ScheduleDrawInput struct {
	ScheduleID    int64
	DrawType      DrawType
	DrawDate      time.Time
	ScheduledAt   time.Time
	CutoffMinutes int
}

type CreateAutoBetInput struct {
	UserID       int64
	CobradorID   *int64
	CaboID       *int64
	Number1      int
	Number2      int
	AmountPerBet decimal.Decimal
	Currency     string
	DurationDays int
	StartDate    time.Time
}

// AutoBetCycleReport summarises one scheduler pass.
type AutoBetCycleReport struct {
	Scanned   int
	Placed    int
	Skipped   int
	Completed int
}
