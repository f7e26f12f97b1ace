package postgres

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

const walletColumns = `id, user_id, balance, currency, status, version, created_at, updated_at`

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanWallet(row pgx.Row) (*model.Wallet, error) {
	w := &model.Wallet{}
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.Currency, &w.Status, &w.Version, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, err
	}
	return w, nil
}

// GetWalletForUpdate retrieves a wallet with row-level lock
func (r *WalletRepositoryImpl) GetWalletForUpdate(ctx context.Context, walletID int64, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, walletID))
	if err != nil && !errors.Is(err, model.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to get wallet for update: %w", err)
	}
	return w, err
}

// GetWallet retrieves a wallet by id
func (r *WalletRepositoryImpl) GetWallet(ctx context.Context, walletID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.getExecutor(tx...).QueryRow(ctx, query, walletID))
	if err != nil && !errors.Is(err, model.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, err
}

// GetWalletByUser retrieves the wallet owned by userID
func (r *WalletRepositoryImpl) GetWalletByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	w, err := scanWallet(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil && !errors.Is(err, model.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to get wallet by user: %w", err)
	}
	return w, err
}

// UpdateBalance update wallet balance
func (r *WalletRepositoryImpl) UpdateBalance(ctx context.Context, walletID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if isCheckViolation(err, "balance_non_negative") {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}

// UpdateStatus activates or suspends a wallet
func (r *WalletRepositoryImpl) UpdateStatus(ctx context.Context, walletID int64, status model.WalletStatus) (*model.Wallet, error) {
	query := `
        UPDATE wallets
        SET status = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + walletColumns

	w, err := scanWallet(r.pool.QueryRow(ctx, query, status, walletID))
	if err != nil && !errors.Is(err, model.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to update wallet status: %w", err)
	}
	return w, err
}
