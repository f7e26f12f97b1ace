package postgres

import (
	"context"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertTransaction creates a new ledger entry
func (r *LedgerRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (wallet_id, type, amount, balance_before, balance_after, reference, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, trans.WalletID, trans.Type, trans.Amount, trans.BalanceBefore, trans.BalanceAfter, trans.Reference, trans.Status).
		Scan(&trans.ID, &trans.CreatedAt)

	if err != nil {
		if isUniqueViolation(err, "transactions_reference_key") {
			return fmt.Errorf("%w: transaction %s", model.ErrDuplicateReference, trans.Reference)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionsByWallet retrieves paginated transactions for a wallet
func (r *LedgerRepositoryImpl) GetTransactionsByWallet(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_before, balance_after, reference, status, created_at
        FROM transactions WHERE wallet_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.WalletID, &trans.Type, &trans.Amount, &trans.BalanceBefore, &trans.BalanceAfter, &trans.Reference, &trans.Status, &trans.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, rows.Err()
}
