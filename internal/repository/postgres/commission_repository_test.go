package postgres

import (
	"context"
	"errors"
	"numbers-game/internal/model"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionRepository_InsertCommission(t *testing.T) {
	agent := int64(3)
	created := time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mockSetup    func(mock pgxmock.PgxPoolIface, c *model.Commission)
		wantInserted bool
		expectErr    bool
	}{
		{
			name: "New commission",
			mockSetup: func(mock pgxmock.PgxPoolIface, c *model.Commission) {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (bet_id, type) DO NOTHING`)).
					WithArgs(c.BetID, c.DrawID, c.AgentID, c.Type, c.Rate, c.Amount, c.Status).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), created))
			},
			wantInserted: true,
		},
		{
			name: "Already recorded for this bet and role",
			mockSetup: func(mock pgxmock.PgxPoolIface, c *model.Commission) {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (bet_id, type) DO NOTHING`)).
					WithArgs(c.BetID, c.DrawID, c.AgentID, c.Type, c.Rate, c.Amount, c.Status).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface, c *model.Commission) {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (bet_id, type) DO NOTHING`)).
					WithArgs(c.BetID, c.DrawID, c.AgentID, c.Type, c.Rate, c.Amount, c.Status).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewCommissionRepository(mock)

			c := &model.Commission{
				BetID:   11,
				DrawID:  1,
				AgentID: &agent,
				Type:    model.CommissionCobrador,
				Rate:    decimal.RequireFromString("0.15"),
				Amount:  decimal.RequireFromString("1.50"),
				Status:  model.CommissionPending,
			}

			mock.ExpectBegin()
			tt.mockSetup(mock, c)

			tx, err := mock.Begin(context.Background())
			require.NoError(t, err)

			inserted, err := repo.InsertCommission(context.Background(), c, tx)

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			if tt.wantInserted {
				assert.Equal(t, int64(5), c.ID)
				assert.Equal(t, created, c.CreatedAt)
			}
		})
	}
}
