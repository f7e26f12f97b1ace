package model

type WalletStatus string

const (
	WalletActive    WalletStatus = "ACTIVE"
	WalletSuspended WalletStatus = "SUSPENDED"
)

func ParseWalletStatus(s string) (WalletStatus, error) {
	switch s {
	case string(WalletActive):
		return WalletActive, nil
	case string(WalletSuspended):
		return WalletSuspended, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s WalletStatus) String() string {
	return string(s)
}

type TransactionType string

const (
	TxBet        TransactionType = "BET"
	TxPayout     TransactionType = "PAYOUT"
	TxCommission TransactionType = "COMMISSION"
	TxRefund     TransactionType = "REFUND"
	TxDeposit    TransactionType = "DEPOSIT"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
)

type DrawType string

const (
	DrawMorning   DrawType = "MORNING"
	DrawAfternoon DrawType = "AFTERNOON"
	DrawEvening   DrawType = "EVENING"
)

func ParseDrawType(s string) (DrawType, error) {
	switch s {
	case string(DrawMorning):
		return DrawMorning, nil
	case string(DrawAfternoon):
		return DrawAfternoon, nil
	case string(DrawEvening):
		return DrawEvening, nil
	default:
		return "", ErrInvalidRequest
	}
}

// Tag is the three letter code used in bet references.
func (t DrawType) Tag() string {
	switch t {
	case DrawMorning:
		return "MRN"
	case DrawAfternoon:
		return "AFT"
	case DrawEvening:
		return "EVN"
	default:
		return "UNK"
	}
}

type DrawStatus string

const (
	DrawScheduled DrawStatus = "SCHEDULED"
	DrawOpen      DrawStatus = "OPEN"
	DrawClosed    DrawStatus = "CLOSED"
	DrawDrawn     DrawStatus = "DRAWN"
	DrawSettled   DrawStatus = "SETTLED"
	DrawCancelled DrawStatus = "CANCELLED"
)

func (s DrawStatus) String() string {
	return string(s)
}

type BetStatus string

const (
	BetPending  BetStatus = "PENDING"
	BetWon      BetStatus = "WON"
	BetLost     BetStatus = "LOST"
	BetVoid     BetStatus = "VOID"
	BetRefunded BetStatus = "REFUNDED"
	// BetError marks a winning bet whose payout credit failed during resolution.
	BetError BetStatus = "ERROR"
)

type CommissionType string

const (
	CommissionCobrador    CommissionType = "COBRADOR"
	CommissionCabo        CommissionType = "CABO"
	CommissionCapitalista CommissionType = "CAPITALISTA"
	CommissionGovernment  CommissionType = "GOVERNMENT"
)

type CommissionStatus string

const (
	CommissionPending CommissionStatus = "PENDING"
	CommissionPaid    CommissionStatus = "PAID"
)

type AutoBetStatus string

const (
	AutoBetActive    AutoBetStatus = "ACTIVE"
	AutoBetPaused    AutoBetStatus = "PAUSED"
	AutoBetCompleted AutoBetStatus = "COMPLETED"
	AutoBetCancelled AutoBetStatus = "CANCELLED"
)
