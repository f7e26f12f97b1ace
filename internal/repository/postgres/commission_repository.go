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
var _ repository.CommissionRepository = (*CommissionRepositoryImpl)(nil)

// CommissionRepositoryImpl is the PostgreSQL implementation of CommissionRepository
type CommissionRepositoryImpl struct {
	*TransactionManager
}

func NewCommissionRepository(pool Pool) repository.CommissionRepository {
	return &CommissionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertCommission is keyed by (bet_id, type); an existing record is left untouched
func (r *CommissionRepositoryImpl) InsertCommission(ctx context.Context, c *model.Commission, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO commissions (bet_id, draw_id, agent_id, type, rate, amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (bet_id, type) DO NOTHING
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, c.BetID, c.DrawID, c.AgentID, c.Type, c.Rate, c.Amount, c.Status).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert commission: %w", err)
	}
	return true, nil
}

// GetCommissionsByDraw lists every commission generated by a draw's bets
func (r *CommissionRepositoryImpl) GetCommissionsByDraw(ctx context.Context, drawID int64, tx ...pgx.Tx) ([]*model.Commission, error) {
	query := `
        SELECT id, bet_id, draw_id, agent_id, type, rate, amount, status, created_at
        FROM commissions
        WHERE draw_id = $1
        ORDER BY bet_id, id`

	rows, err := r.getExecutor(tx...).Query(ctx, query, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commissions: %w", err)
	}
	defer rows.Close()

	var commissions []*model.Commission
	for rows.Next() {
		c := &model.Commission{}
		if err := rows.Scan(&c.ID, &c.BetID, &c.DrawID, &c.AgentID, &c.Type, &c.Rate, &c.Amount, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}
