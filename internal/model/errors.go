package model

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidNumbers = errors.New("invalid numbers")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidStatus  = errors.New("invalid status")

	ErrConfigUnavailable      = errors.New("no active game configuration")
	ErrDrawNotFound           = errors.New("draw not found")
	ErrDrawNotAcceptingBets   = errors.New("draw not accepting bets")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrBetNotFound            = errors.New("bet not found")

	ErrWalletNotFound     = errors.New("wallet not found")
	ErrWalletInactive     = errors.New("wallet inactive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDuplicateReference = errors.New("duplicate reference")

	ErrAutoBetNotFound        = errors.New("auto-bet config not found")
	ErrConfigExpired          = errors.New("auto-bet config expired")
	ErrAutoBetAlreadyExecuted = errors.New("auto-bet already executed for draw")

	// ErrTransient is returned once the retry budget for a storage conflict is spent.
	ErrTransient = errors.New("transient storage failure")
)
