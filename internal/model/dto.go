package model

type PlaceBetRequest struct {
	DrawID     int64  `json:"draw_id" binding:"required" example:"42"`
	BettorID   int64  `json:"bettor_id" binding:"required" example:"7"`
	CobradorID *int64 `json:"cobrador_id,omitempty" example:"11"`
	CaboID     *int64 `json:"cabo_id,omitempty" example:"3"`
	Number1    int    `json:"number1" binding:"required" example:"5"`
	Number2    int    `json:"number2" binding:"required" example:"12"`
	Amount     string `json:"amount" binding:"required" example:"10.00"`
	Currency   string `json:"currency" example:"PHP"`
}

type DrawResultRequest struct {
	Number1 int `json:"number1" binding:"required" example:"12"`
	Number2 int `json:"number2" binding:"required" example:"5"`
}

type ScheduleDrawRequest struct {
	ScheduleID    int64  `json:"schedule_id" binding:"required" example:"1"`
	DrawType      string `json:"draw_type" binding:"required,oneof=MORNING AFTERNOON EVENING" example:"MORNING"`
	DrawDate      string `json:"draw_date" binding:"required" example:"2026-10-19"`
	ScheduledAt   string `json:"scheduled_at" binding:"required" example:"2026-10-19T11:00:00Z"`
	CutoffMinutes int    `json:"cutoff_minutes" example:"15"`
}

type DepositRequest struct {
	Amount    string `json:"amount" binding:"required" example:"100.00"`
	Reference string `json:"reference" binding:"required" example:"TOPUP-20261019-0001"`
}

type WalletStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED" example:"SUSPENDED"`
}

type CreateAutoBetRequest struct {
	UserID       int64  `json:"user_id" binding:"required" example:"7"`
	CobradorID   *int64 `json:"cobrador_id,omitempty"`
	CaboID       *int64 `json:"cabo_id,omitempty"`
	Number1      int    `json:"number1" binding:"required" example:"5"`
	Number2      int    `json:"number2" binding:"required" example:"12"`
	AmountPerBet string `json:"amount_per_bet" binding:"required" example:"10.00"`
	Currency     string `json:"currency" example:"PHP"`
	DurationDays int    `json:"duration_days" binding:"required,min=1" example:"7"`
	StartDate    string `json:"start_date,omitempty" example:"2026-10-19"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type BalanceResponse struct {
	WalletID int64  `json:"wallet_id" example:"1"`
	UserID   int64  `json:"user_id" example:"7"`
	Balance  string `json:"balance" example:"90.00"`
	Currency string `json:"currency" example:"PHP"`
	Status   string `json:"status" example:"ACTIVE"`
}

type LedgerResponse struct {
	Balance     string       `json:"balance" example:"190.00"`
	Transaction *Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}
