package service

import (
	"context"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewLedgerService(
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		logger:     logger,
	}
}

// DebitTx locks the wallet, checks status and funds, then writes the new balance and its
// ledger entry. Any error leaves the caller's transaction to be rolled back.
func (s *LedgerServiceImpl) DebitTx(ctx context.Context, tx pgx.Tx, req model.LedgerRequest) (*model.LedgerResult, error) {
	if err := validateLedgerRequest(req); err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, req.WalletID, tx)
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}

	if wallet.Status != model.WalletActive {
		return nil, fmt.Errorf("%w: wallet %d is %s", model.ErrWalletInactive, wallet.ID, wallet.Status)
	}

	// Negative balance is not allowed
	if wallet.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s",
			model.ErrInsufficientFunds, wallet.Balance.StringFixed(2), req.Amount.StringFixed(2))
	}

	return s.apply(ctx, tx, wallet, req, wallet.Balance.Sub(req.Amount))
}

// CreditTx locks the wallet and adds the amount; wallet status does not block credits
func (s *LedgerServiceImpl) CreditTx(ctx context.Context, tx pgx.Tx, req model.LedgerRequest) (*model.LedgerResult, error) {
	if err := validateLedgerRequest(req); err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, req.WalletID, tx)
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}

	return s.apply(ctx, tx, wallet, req, wallet.Balance.Add(req.Amount))
}

func (s *LedgerServiceImpl) apply(ctx context.Context, tx pgx.Tx, wallet *model.Wallet, req model.LedgerRequest, newBalance decimal.Decimal) (*model.LedgerResult, error) {
	if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	trans := &model.Transaction{
		WalletID:      wallet.ID,
		Type:          req.Type,
		Amount:        req.Amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  newBalance,
		Reference:     req.Reference,
		Status:        model.TxCompleted,
	}
	if err := s.ledgerRepo.InsertTransaction(ctx, trans, tx); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Debug().
		Int64("wallet_id", wallet.ID).
		Str("type", req.Type.String()).
		Str("reference", req.Reference).
		Str("amount", req.Amount.StringFixed(2)).
		Str("old_balance", wallet.Balance.StringFixed(2)).
		Str("new_balance", newBalance.StringFixed(2)).
		Msg("wallet updated")

	return &model.LedgerResult{Balance: newBalance, Transaction: trans}, nil
}

func (s *LedgerServiceImpl) Debit(ctx context.Context, req model.LedgerRequest) (*model.LedgerResult, error) {
	var result *model.LedgerResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		result, err = s.DebitTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LedgerServiceImpl) Credit(ctx context.Context, req model.LedgerRequest) (*model.LedgerResult, error) {
	var result *model.LedgerResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		result, err = s.CreditTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("wallet_id", req.WalletID).
		Str("type", req.Type.String()).
		Str("reference", req.Reference).
		Str("new_balance", result.Balance.StringFixed(2)).
		Msg("wallet credited")
	return result, nil
}

func (s *LedgerServiceImpl) GetWallet(ctx context.Context, walletID int64) (*model.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

func (s *LedgerServiceImpl) GetTransactions(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.ledgerRepo.GetTransactionsByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get wallet transactions: %w", err)
	}
	return transactions, nil
}

func (s *LedgerServiceImpl) SetWalletStatus(ctx context.Context, walletID int64, status model.WalletStatus) (*model.Wallet, error) {
	wallet, err := s.walletRepo.UpdateStatus(ctx, walletID, status)
	if err != nil {
		return nil, fmt.Errorf("update wallet status: %w", err)
	}

	s.logger.Info().Int64("wallet_id", walletID).Str("status", status.String()).Msg("wallet status changed")
	return wallet, nil
}

func validateLedgerRequest(req model.LedgerRequest) error {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if !model.IsCents(req.Amount) {
		return fmt.Errorf("%w: amount %s has more than two decimal places", model.ErrInvalidAmount, req.Amount)
	}
	if req.Reference == "" {
		return fmt.Errorf("%w: reference is required", model.ErrInvalidRequest)
	}
	return nil
}
