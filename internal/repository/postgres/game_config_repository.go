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
var _ repository.GameConfigRepository = (*GameConfigRepositoryImpl)(nil)

// GameConfigRepositoryImpl is the PostgreSQL implementation of GameConfigRepository
type GameConfigRepositoryImpl struct {
	*TransactionManager
}

func NewGameConfigRepository(pool Pool) repository.GameConfigRepository {
	return &GameConfigRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetActiveConfig reads the single is_active record
func (r *GameConfigRepositoryImpl) GetActiveConfig(ctx context.Context) (*model.GameConfig, error) {
	query := `
        SELECT id, max_number, allow_repeat, payout_multiplier, min_bet, max_bet,
               cobrador_rate, cabo_rate, capitalista_rate, government_rate, currency, is_active
        FROM game_configs
        WHERE is_active`

	c := &model.GameConfig{}
	err := r.pool.QueryRow(ctx, query).Scan(&c.ID, &c.MaxNumber, &c.AllowRepeat, &c.PayoutMultiplier, &c.MinBet, &c.MaxBet,
		&c.CobradorRate, &c.CaboRate, &c.CapitalistaRate, &c.GovernmentRate, &c.Currency, &c.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrConfigUnavailable
		}
		return nil, fmt.Errorf("failed to get active game config: %w", err)
	}
	return c, nil
}
