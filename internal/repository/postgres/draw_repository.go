package postgres

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.DrawRepository = (*DrawRepositoryImpl)(nil)

const drawColumns = `id, schedule_id, draw_type, draw_date, scheduled_at, cutoff_minutes, status,
        number1, number2, combination_key, total_bets, total_stake, total_payout, gross_profit,
        settlement_exceptions, drawn_at, settled_at, created_at, updated_at`

// DrawRepositoryImpl is the PostgreSQL implementation of DrawRepository
type DrawRepositoryImpl struct {
	*TransactionManager
}

func NewDrawRepository(pool Pool) repository.DrawRepository {
	return &DrawRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanDraw(row pgx.Row) (*model.Draw, error) {
	d := &model.Draw{}
	err := row.Scan(&d.ID, &d.ScheduleID, &d.DrawType, &d.DrawDate, &d.ScheduledAt, &d.CutoffMinutes, &d.Status,
		&d.Number1, &d.Number2, &d.CombinationKey, &d.TotalBets, &d.TotalStake, &d.TotalPayout, &d.GrossProfit,
		&d.SettlementExceptions, &d.DrawnAt, &d.SettledAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDrawNotFound
		}
		return nil, err
	}
	return d, nil
}

func scanDraws(rows pgx.Rows) ([]*model.Draw, error) {
	defer rows.Close()

	var draws []*model.Draw
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, d)
	}
	return draws, rows.Err()
}

// CreateDraw inserts a SCHEDULED draw
func (r *DrawRepositoryImpl) CreateDraw(ctx context.Context, draw *model.Draw) error {
	query := `
        INSERT INTO draws (schedule_id, draw_type, draw_date, scheduled_at, cutoff_minutes, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + drawColumns

	created, err := scanDraw(r.pool.QueryRow(ctx, query, draw.ScheduleID, draw.DrawType, draw.DrawDate, draw.ScheduledAt, draw.CutoffMinutes, model.DrawScheduled))
	if err != nil {
		if isUniqueViolation(err, "draws_schedule_date_key") {
			return fmt.Errorf("%w: draw for schedule %d on %s already exists",
				model.ErrInvalidRequest, draw.ScheduleID, draw.DrawDate.Format(time.DateOnly))
		}
		return fmt.Errorf("failed to insert draw: %w", err)
	}
	*draw = *created
	return nil
}

// GetDraw retrieves a draw by id
func (r *DrawRepositoryImpl) GetDraw(ctx context.Context, drawID int64, tx ...pgx.Tx) (*model.Draw, error) {
	query := `SELECT ` + drawColumns + ` FROM draws WHERE id = $1`

	d, err := scanDraw(r.getExecutor(tx...).QueryRow(ctx, query, drawID))
	if err != nil && !errors.Is(err, model.ErrDrawNotFound) {
		return nil, fmt.Errorf("failed to get draw: %w", err)
	}
	return d, err
}

// GetDrawForUpdate retrieves a draw with row-level lock
func (r *DrawRepositoryImpl) GetDrawForUpdate(ctx context.Context, drawID int64, tx pgx.Tx) (*model.Draw, error) {
	query := `SELECT ` + drawColumns + ` FROM draws WHERE id = $1 FOR UPDATE`

	d, err := scanDraw(tx.QueryRow(ctx, query, drawID))
	if err != nil && !errors.Is(err, model.ErrDrawNotFound) {
		return nil, fmt.Errorf("failed to get draw for update: %w", err)
	}
	return d, err
}

// TransitionStatus is a compare-and-swap on status. The UPDATE waits for the row lock held by
// any in-flight bet placement, so a draw cannot close underneath an admitted bet.
// Cancelling zeroes gross_profit since every pending stake is refunded.
func (r *DrawRepositoryImpl) TransitionStatus(ctx context.Context, drawID int64, from []model.DrawStatus, to model.DrawStatus, tx pgx.Tx) (*model.Draw, error) {
	query := `
        UPDATE draws
        SET status = $1,
            gross_profit = CASE WHEN $1 = 'CANCELLED' THEN 0 ELSE gross_profit END,
            updated_at = NOW()
        WHERE id = $2 AND status = ANY($3)
        RETURNING ` + drawColumns

	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}

	d, err := scanDraw(tx.QueryRow(ctx, query, to, drawID, fromStr))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, model.ErrDrawNotFound) {
		return nil, fmt.Errorf("failed to transition draw: %w", err)
	}

	current, getErr := r.GetDraw(ctx, drawID, tx)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("%w: draw %d is %s, cannot move to %s",
		model.ErrInvalidStateTransition, drawID, current.Status, to)
}

// IncrementTotals adds a bet to the draw counters; the stake is provisional profit until payout
func (r *DrawRepositoryImpl) IncrementTotals(ctx context.Context, drawID int64, amount decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE draws
        SET total_bets = total_bets + 1,
            total_stake = total_stake + $1,
            gross_profit = gross_profit + $1,
            updated_at = NOW()
        WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount, drawID)
	if err != nil {
		return fmt.Errorf("failed to increment draw totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDrawNotFound
	}
	return nil
}

// SaveResult records the drawn combination and payout totals, CLOSED -> DRAWN
func (r *DrawRepositoryImpl) SaveResult(ctx context.Context, draw *model.Draw, tx pgx.Tx) error {
	query := `
        UPDATE draws
        SET status = $1,
            number1 = $2,
            number2 = $3,
            combination_key = $4,
            total_payout = $5,
            gross_profit = total_stake - $5,
            settlement_exceptions = $6,
            drawn_at = NOW(),
            updated_at = NOW()
        WHERE id = $7 AND status = $8
        RETURNING ` + drawColumns

	updated, err := scanDraw(tx.QueryRow(ctx, query, model.DrawDrawn, draw.Number1, draw.Number2, draw.CombinationKey,
		draw.TotalPayout, draw.SettlementExceptions, draw.ID, model.DrawClosed))
	if err != nil {
		if errors.Is(err, model.ErrDrawNotFound) {
			return fmt.Errorf("%w: draw %d is not CLOSED", model.ErrInvalidStateTransition, draw.ID)
		}
		return fmt.Errorf("failed to save draw result: %w", err)
	}
	*draw = *updated
	return nil
}

// MarkSettled moves DRAWN -> SETTLED; exceptions are OR-ed into the existing flag
func (r *DrawRepositoryImpl) MarkSettled(ctx context.Context, drawID int64, exceptions bool, tx pgx.Tx) (*model.Draw, error) {
	query := `
        UPDATE draws
        SET status = $1,
            settlement_exceptions = settlement_exceptions OR $2,
            settled_at = NOW(),
            updated_at = NOW()
        WHERE id = $3 AND status = $4
        RETURNING ` + drawColumns

	d, err := scanDraw(tx.QueryRow(ctx, query, model.DrawSettled, exceptions, drawID, model.DrawDrawn))
	if err != nil {
		if errors.Is(err, model.ErrDrawNotFound) {
			return nil, fmt.Errorf("%w: draw %d is not DRAWN", model.ErrInvalidStateTransition, drawID)
		}
		return nil, fmt.Errorf("failed to mark draw settled: %w", err)
	}
	return d, nil
}

// CloseDueDraws closes OPEN draws whose cutoff has passed
func (r *DrawRepositoryImpl) CloseDueDraws(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
        UPDATE draws
        SET status = $1, updated_at = NOW()
        WHERE status = $2
          AND scheduled_at - make_interval(mins => cutoff_minutes) <= $3
        RETURNING id`

	rows, err := r.pool.Query(ctx, query, model.DrawClosed, model.DrawOpen, now)
	if err != nil {
		return nil, fmt.Errorf("failed to close due draws: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan draw id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListOpenDraws returns draws still accepting bets at now, earliest first
func (r *DrawRepositoryImpl) ListOpenDraws(ctx context.Context, now time.Time) ([]*model.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM draws
        WHERE status = $1
          AND scheduled_at - make_interval(mins => cutoff_minutes) > $2
        ORDER BY scheduled_at, id`

	rows, err := r.pool.Query(ctx, query, model.DrawOpen, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query open draws: %w", err)
	}
	return scanDraws(rows)
}
