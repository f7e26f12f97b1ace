package service

import (
	"context"
	"errors"
	"numbers-game/internal/model"
	"numbers-game/mocks/repository"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var resolvedStatuses = []model.BetStatus{model.BetWon, model.BetLost, model.BetError}

type settlementFixture struct {
	configRepo     *mocks.GameConfigRepository
	drawRepo       *mocks.DrawRepository
	betRepo        *mocks.BetRepository
	walletRepo     *mocks.WalletRepository
	ledgerRepo     *mocks.LedgerRepository
	commissionRepo *mocks.CommissionRepository
	dbManager      *mocks.DBManager
	service        SettlementService
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	f := &settlementFixture{
		configRepo:     mocks.NewGameConfigRepository(t),
		drawRepo:       mocks.NewDrawRepository(t),
		betRepo:        mocks.NewBetRepository(t),
		walletRepo:     mocks.NewWalletRepository(t),
		ledgerRepo:     mocks.NewLedgerRepository(t),
		commissionRepo: mocks.NewCommissionRepository(t),
		dbManager:      mocks.NewDBManager(t),
	}
	passThroughTx(f.dbManager)

	logger := zerolog.Nop()
	ledger := NewLedgerService(f.walletRepo, f.ledgerRepo, f.dbManager, logger)
	commissions := NewCommissionService(f.commissionRepo, f.walletRepo, ledger, logger)
	f.service = NewSettlementService(f.configRepo, f.drawRepo, f.betRepo, f.walletRepo, f.commissionRepo,
		ledger, commissions, f.dbManager, logger)
	return f
}

func drawIn(status model.DrawStatus) *model.Draw {
	d := openDraw()
	d.Status = status
	return d
}

func scenarioBet() *model.Bet {
	cobrador := int64(3)
	return &model.Bet{
		ID:             11,
		DrawID:         1,
		BettorID:       7,
		CobradorID:     &cobrador,
		Number1:        5,
		Number2:        12,
		CombinationKey: "5-12",
		Amount:         decimal.NewFromInt(10),
		Currency:       "DOP",
		Status:         model.BetPending,
		PayoutAmount:   decimal.Zero,
		Reference:      "20250614-EVN-0A1B2C3D",
	}
}

func TestRecordDrawResult_Scenario(t *testing.T) {
	f := newSettlementFixture(t)
	bet := scenarioBet()

	// payout and commissions are resolved from a single config read
	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil).Once()
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawClosed), nil).Once()
	f.betRepo.On("ListPendingWinners", mock.Anything, int64(1), "5-12", mock.Anything).Return([]*model.Bet{bet}, nil)

	// payout 10 x 500 to the bettor wallet holding 90 after the stake
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7), mock.Anything).Return(&model.Wallet{ID: 70, UserID: 7}, nil)
	f.walletRepo.On("GetWalletForUpdate", mock.Anything, int64(70), mock.Anything).Return(&model.Wallet{
		ID: 70, UserID: 7, Balance: decimal.NewFromInt(90), Status: model.WalletActive,
	}, nil)
	f.walletRepo.On("UpdateBalance", mock.Anything, int64(70), decimalEq("5090"), mock.Anything).Return(nil)
	f.ledgerRepo.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TxPayout && trans.Reference == "PAY-20250614-EVN-0A1B2C3D"
	}), mock.Anything).Return(nil)
	f.betRepo.On("UpdateBetResult", mock.Anything, mock.MatchedBy(func(b *model.Bet) bool {
		return b.ID == 11 && b.Status == model.BetWon && b.IsWinner && b.PayoutAmount.Equal(decimal.NewFromInt(5000))
	}), mock.Anything).Return(nil)
	f.betRepo.On("MarkLosers", mock.Anything, int64(1), "5-12", mock.Anything).Return(int64(0), nil)
	f.drawRepo.On("SaveResult", mock.Anything, mock.MatchedBy(func(d *model.Draw) bool {
		return *d.CombinationKey == "5-12" && *d.Number1 == 12 && *d.Number2 == 5 &&
			d.TotalPayout.Equal(decimal.NewFromInt(5000)) && !d.SettlementExceptions
	}), mock.Anything).Return(nil)

	// settlement: a 1.50 COBRADOR commission credited to agent 3
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawDrawn), nil).Once()
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), resolvedStatuses, mock.Anything).Return([]*model.Bet{bet}, nil)
	f.commissionRepo.On("InsertCommission", mock.Anything, mock.MatchedBy(func(c *model.Commission) bool {
		return c.Type == model.CommissionCobrador && c.Amount.Equal(decimal.RequireFromString("1.50")) &&
			*c.AgentID == 3 && c.Status == model.CommissionPending
	}), mock.Anything).Return(true, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(3), mock.Anything).Return(&model.Wallet{ID: 30, UserID: 3}, nil)
	f.walletRepo.On("GetWalletForUpdate", mock.Anything, int64(30), mock.Anything).Return(&model.Wallet{
		ID: 30, UserID: 3, Balance: decimal.Zero, Status: model.WalletActive,
	}, nil)
	f.walletRepo.On("UpdateBalance", mock.Anything, int64(30), decimalEq("1.50"), mock.Anything).Return(nil)
	f.ledgerRepo.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TxCommission && trans.Reference == "COM-20250614-EVN-0A1B2C3D-COBRADOR"
	}), mock.Anything).Return(nil)
	f.drawRepo.On("MarkSettled", mock.Anything, int64(1), false, mock.Anything).Return(drawIn(model.DrawSettled), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetWon}, mock.Anything).Return([]*model.Bet{bet}, nil)
	f.commissionRepo.On("GetCommissionsByDraw", mock.Anything, int64(1), mock.Anything).Return([]*model.Commission{{
		BetID: 11, Type: model.CommissionCobrador, Amount: decimal.RequireFromString("1.50"),
	}}, nil)

	draw, err := f.service.RecordDrawResult(context.Background(), 1, 12, 5)

	require.NoError(t, err)
	assert.Equal(t, model.DrawSettled, draw.Status)
	assert.Equal(t, model.BetWon, bet.Status)
	assert.Equal(t, "5000.00", bet.PayoutAmount.StringFixed(2))
}

func TestRecordDrawResult_PayoutFailureIsIsolated(t *testing.T) {
	f := newSettlementFixture(t)
	bet := scenarioBet()

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawClosed), nil).Once()
	f.betRepo.On("ListPendingWinners", mock.Anything, int64(1), "5-12", mock.Anything).Return([]*model.Bet{bet}, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7), mock.Anything).Return(nil, model.ErrWalletNotFound)
	f.betRepo.On("UpdateBetResult", mock.Anything, mock.MatchedBy(func(b *model.Bet) bool {
		return b.Status == model.BetError && b.PayoutAmount.IsZero()
	}), mock.Anything).Return(nil)
	f.betRepo.On("MarkLosers", mock.Anything, int64(1), "5-12", mock.Anything).Return(int64(4), nil)
	f.drawRepo.On("SaveResult", mock.Anything, mock.MatchedBy(func(d *model.Draw) bool {
		return d.TotalPayout.IsZero() && d.SettlementExceptions
	}), mock.Anything).Return(nil)

	settled := drawIn(model.DrawSettled)
	settled.SettlementExceptions = true
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawDrawn), nil).Once()
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), resolvedStatuses, mock.Anything).Return([]*model.Bet{}, nil)
	f.drawRepo.On("MarkSettled", mock.Anything, int64(1), false, mock.Anything).Return(settled, nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetWon}, mock.Anything).Return([]*model.Bet{}, nil)
	f.commissionRepo.On("GetCommissionsByDraw", mock.Anything, int64(1), mock.Anything).Return([]*model.Commission{}, nil)

	draw, err := f.service.RecordDrawResult(context.Background(), 1, 5, 12)

	require.NoError(t, err)
	assert.Equal(t, model.DrawSettled, draw.Status)
	assert.True(t, draw.SettlementExceptions)
	assert.Equal(t, model.BetError, bet.Status)
}

func TestRecordDrawResult_ConflictAbortsWholeUnit(t *testing.T) {
	f := newSettlementFixture(t)
	conflict := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawClosed), nil)
	f.betRepo.On("ListPendingWinners", mock.Anything, int64(1), "5-12", mock.Anything).Return([]*model.Bet{scenarioBet()}, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7), mock.Anything).Return(nil, conflict)

	_, err := f.service.RecordDrawResult(context.Background(), 1, 5, 12)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	f.betRepo.AssertNotCalled(t, "UpdateBetResult", mock.Anything, mock.Anything, mock.Anything)
	f.drawRepo.AssertNotCalled(t, "SaveResult", mock.Anything, mock.Anything, mock.Anything)
}

func TestIsolatable(t *testing.T) {
	ctx := context.Background()
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	assert.True(t, isolatable(ctx, model.ErrWalletNotFound))
	assert.False(t, isolatable(ctx, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.False(t, isolatable(ctx, &pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.False(t, isolatable(ctx, &pgconn.PgError{Code: pgerrcode.AdminShutdown}))
	assert.False(t, isolatable(cancelled, model.ErrWalletNotFound))
}

func TestRecordDrawResult_RequiresClosedDraw(t *testing.T) {
	for _, status := range []model.DrawStatus{model.DrawOpen, model.DrawDrawn, model.DrawSettled, model.DrawCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newSettlementFixture(t)

			f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
			f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(status), nil)

			_, err := f.service.RecordDrawResult(context.Background(), 1, 5, 12)
			require.ErrorIs(t, err, model.ErrInvalidStateTransition)
		})
	}
}

func TestRecordDrawResult_InvalidNumbers(t *testing.T) {
	f := newSettlementFixture(t)

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)

	_, err := f.service.RecordDrawResult(context.Background(), 1, 0, 40)
	require.ErrorIs(t, err, model.ErrInvalidNumbers)
}

func TestSettleDraw_AlreadySettledIsNoOp(t *testing.T) {
	f := newSettlementFixture(t)
	commissions := []*model.Commission{{ID: 1, BetID: 11, Type: model.CommissionCobrador, Amount: decimal.RequireFromString("1.50")}}

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawSettled), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetWon}, mock.Anything).Return([]*model.Bet{scenarioBet()}, nil)
	f.commissionRepo.On("GetCommissionsByDraw", mock.Anything, int64(1), mock.Anything).Return(commissions, nil)

	result, err := f.service.SettleDraw(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, commissions, result.Commissions)
	assert.Len(t, result.Winners, 1)
	f.commissionRepo.AssertNotCalled(t, "InsertCommission", mock.Anything, mock.Anything, mock.Anything)
	f.drawRepo.AssertNotCalled(t, "MarkSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleDraw_CommissionFailureFlagsDraw(t *testing.T) {
	f := newSettlementFixture(t)
	bet := scenarioBet()
	bet.Status = model.BetLost

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawDrawn), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), resolvedStatuses, mock.Anything).Return([]*model.Bet{bet}, nil)
	f.commissionRepo.On("InsertCommission", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(3), mock.Anything).Return(nil, model.ErrWalletNotFound)
	f.drawRepo.On("MarkSettled", mock.Anything, int64(1), true, mock.Anything).Return(drawIn(model.DrawSettled), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetWon}, mock.Anything).Return([]*model.Bet{}, nil)
	f.commissionRepo.On("GetCommissionsByDraw", mock.Anything, int64(1), mock.Anything).Return([]*model.Commission{}, nil)

	result, err := f.service.SettleDraw(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.DrawSettled, result.Draw.Status)
}

func TestSettleDraw_RequiresDrawnDraw(t *testing.T) {
	f := newSettlementFixture(t)

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.drawRepo.On("GetDrawForUpdate", mock.Anything, int64(1), mock.Anything).Return(drawIn(model.DrawClosed), nil)

	_, err := f.service.SettleDraw(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrInvalidStateTransition)
}
