package postgres

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

const betColumns = `id, draw_id, bettor_id, cobrador_id, cabo_id, auto_bet_config_id, number1, number2,
        combination_key, amount, currency, status, is_winner, payout_amount, reference, created_at, updated_at`

// BetRepositoryImpl is the PostgreSQL implementation of BetRepository
type BetRepositoryImpl struct {
	*TransactionManager
}

func NewBetRepository(pool Pool) repository.BetRepository {
	return &BetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanBet(row pgx.Row) (*model.Bet, error) {
	b := &model.Bet{}
	err := row.Scan(&b.ID, &b.DrawID, &b.BettorID, &b.CobradorID, &b.CaboID, &b.AutoBetConfigID, &b.Number1, &b.Number2,
		&b.CombinationKey, &b.Amount, &b.Currency, &b.Status, &b.IsWinner, &b.PayoutAmount, &b.Reference, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBetNotFound
		}
		return nil, err
	}
	return b, nil
}

func scanBets(rows pgx.Rows) ([]*model.Bet, error) {
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, b)
	}
	return bets, rows.Err()
}

// InsertBet creates a PENDING bet
func (r *BetRepositoryImpl) InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        INSERT INTO bets (draw_id, bettor_id, cobrador_id, cabo_id, auto_bet_config_id, number1, number2,
                          combination_key, amount, currency, status, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, bet.DrawID, bet.BettorID, bet.CobradorID, bet.CaboID, bet.AutoBetConfigID,
		bet.Number1, bet.Number2, bet.CombinationKey, bet.Amount, bet.Currency, bet.Status, bet.Reference).
		Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "bets_reference_key") {
			return fmt.Errorf("%w: bet %s", model.ErrDuplicateReference, bet.Reference)
		}
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// GetBetByReference retrieves a bet by its public reference
func (r *BetRepositoryImpl) GetBetByReference(ctx context.Context, reference string) (*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE reference = $1`

	b, err := scanBet(r.pool.QueryRow(ctx, query, reference))
	if err != nil && !errors.Is(err, model.ErrBetNotFound) {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	return b, err
}

// ListBetsByDraw returns the bets of a draw in placement order
func (r *BetRepositoryImpl) ListBetsByDraw(ctx context.Context, drawID int64, statuses []model.BetStatus, tx ...pgx.Tx) ([]*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE draw_id = $1`
	args := []any{drawID}

	if len(statuses) > 0 {
		s := make([]string, len(statuses))
		for i, st := range statuses {
			s[i] = string(st)
		}
		query += ` AND status = ANY($2)`
		args = append(args, s)
	}
	query += ` ORDER BY id`

	rows, err := r.getExecutor(tx...).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	return scanBets(rows)
}

// ListPendingWinners locks the PENDING bets of a draw that match the drawn combination
func (r *BetRepositoryImpl) ListPendingWinners(ctx context.Context, drawID int64, combinationKey string, tx pgx.Tx) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE draw_id = $1 AND status = $2 AND combination_key = $3
        ORDER BY id
        FOR UPDATE`

	rows, err := tx.Query(ctx, query, drawID, model.BetPending, combinationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query winning bets: %w", err)
	}
	return scanBets(rows)
}

// MarkLosers settles every PENDING non-matching bet of a draw as LOST in one statement
func (r *BetRepositoryImpl) MarkLosers(ctx context.Context, drawID int64, combinationKey string, tx pgx.Tx) (int64, error) {
	query := `
        UPDATE bets
        SET status = $1, is_winner = FALSE, payout_amount = 0, updated_at = NOW()
        WHERE draw_id = $2 AND status = $3 AND combination_key <> $4`

	tag, err := tx.Exec(ctx, query, model.BetLost, drawID, model.BetPending, combinationKey)
	if err != nil {
		return 0, fmt.Errorf("failed to mark losing bets: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateBetResult resolves a PENDING bet; a bet is mutated at most once
func (r *BetRepositoryImpl) UpdateBetResult(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        UPDATE bets
        SET status = $1, is_winner = $2, payout_amount = $3, updated_at = NOW()
        WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query, bet.Status, bet.IsWinner, bet.PayoutAmount, bet.ID, model.BetPending)
	if err != nil {
		return fmt.Errorf("failed to update bet result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bet %s already resolved", model.ErrInvalidStateTransition, bet.Reference)
	}
	return nil
}
