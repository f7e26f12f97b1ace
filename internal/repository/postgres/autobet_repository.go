package postgres

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AutoBetRepository = (*AutoBetRepositoryImpl)(nil)

const autoBetColumns = `id, user_id, cobrador_id, cabo_id, number1, number2, amount_per_bet, currency, duration_days,
        start_date, end_date, total_bets, executed_bets, status, created_at, updated_at`

// AutoBetRepositoryImpl is the PostgreSQL implementation of AutoBetRepository
type AutoBetRepositoryImpl struct {
	*TransactionManager
}

func NewAutoBetRepository(pool Pool) repository.AutoBetRepository {
	return &AutoBetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanAutoBet(row pgx.Row) (*model.AutoBetConfig, error) {
	c := &model.AutoBetConfig{}
	err := row.Scan(&c.ID, &c.UserID, &c.CobradorID, &c.CaboID, &c.Number1, &c.Number2, &c.AmountPerBet, &c.Currency, &c.DurationDays,
		&c.StartDate, &c.EndDate, &c.TotalBets, &c.ExecutedBets, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAutoBetNotFound
		}
		return nil, err
	}
	return c, nil
}

// CreateAutoBet inserts an ACTIVE config
func (r *AutoBetRepositoryImpl) CreateAutoBet(ctx context.Context, cfg *model.AutoBetConfig) error {
	query := `
        INSERT INTO auto_bet_configs (user_id, cobrador_id, cabo_id, number1, number2, amount_per_bet, currency,
                                      duration_days, start_date, end_date, total_bets, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + autoBetColumns

	created, err := scanAutoBet(r.pool.QueryRow(ctx, query, cfg.UserID, cfg.CobradorID, cfg.CaboID, cfg.Number1, cfg.Number2,
		cfg.AmountPerBet, cfg.Currency, cfg.DurationDays, cfg.StartDate, cfg.EndDate, cfg.TotalBets, cfg.Status))
	if err != nil {
		return fmt.Errorf("failed to insert auto-bet config: %w", err)
	}
	*cfg = *created
	return nil
}

// GetAutoBet retrieves a config by id
func (r *AutoBetRepositoryImpl) GetAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error) {
	query := `SELECT ` + autoBetColumns + ` FROM auto_bet_configs WHERE id = $1`

	c, err := scanAutoBet(r.pool.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, model.ErrAutoBetNotFound) {
		return nil, fmt.Errorf("failed to get auto-bet config: %w", err)
	}
	return c, err
}

// TransitionStatus is a compare-and-swap on status
func (r *AutoBetRepositoryImpl) TransitionStatus(ctx context.Context, id int64, from []model.AutoBetStatus, to model.AutoBetStatus) (*model.AutoBetConfig, error) {
	query := `
        UPDATE auto_bet_configs
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = ANY($3)
        RETURNING ` + autoBetColumns

	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}

	c, err := scanAutoBet(r.pool.QueryRow(ctx, query, to, id, fromStr))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, model.ErrAutoBetNotFound) {
		return nil, fmt.Errorf("failed to transition auto-bet config: %w", err)
	}

	current, getErr := r.GetAutoBet(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("%w: auto-bet %d is %s, cannot move to %s",
		model.ErrInvalidStateTransition, id, current.Status, to)
}

// ListRunnable returns ACTIVE configs that have started
func (r *AutoBetRepositoryImpl) ListRunnable(ctx context.Context, now time.Time) ([]*model.AutoBetConfig, error) {
	query := `
        SELECT ` + autoBetColumns + `
        FROM auto_bet_configs
        WHERE status = $1 AND start_date <= $2
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, model.AutoBetActive, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query runnable auto-bets: %w", err)
	}
	defer rows.Close()

	var configs []*model.AutoBetConfig
	for rows.Next() {
		c, err := scanAutoBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auto-bet config: %w", err)
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// RecordExecution links the bet to its (config, draw) slot and counts it
func (r *AutoBetRepositoryImpl) RecordExecution(ctx context.Context, configID, drawID, betID int64, tx pgx.Tx) error {
	insert := `
        INSERT INTO auto_bet_executions (config_id, draw_id, bet_id)
        VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, insert, configID, drawID, betID); err != nil {
		if isUniqueViolation(err, "auto_bet_executions_config_draw_key") {
			return fmt.Errorf("%w: config %d draw %d", model.ErrAutoBetAlreadyExecuted, configID, drawID)
		}
		return fmt.Errorf("failed to record auto-bet execution: %w", err)
	}

	update := `
        UPDATE auto_bet_configs
        SET executed_bets = executed_bets + 1, updated_at = NOW()
        WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, update, configID, model.AutoBetActive)
	if err != nil {
		return fmt.Errorf("failed to count auto-bet execution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: auto-bet %d is no longer active", model.ErrInvalidStateTransition, configID)
	}
	return nil
}
