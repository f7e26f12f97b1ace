package service

import (
	"context"
	"numbers-game/internal/model"
	"numbers-game/mocks/repository"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type drawFixture struct {
	drawRepo   *mocks.DrawRepository
	betRepo    *mocks.BetRepository
	walletRepo *mocks.WalletRepository
	ledgerRepo *mocks.LedgerRepository
	dbManager  *mocks.DBManager
	service    DrawService
}

func newDrawFixture(t *testing.T) *drawFixture {
	f := &drawFixture{
		drawRepo:   mocks.NewDrawRepository(t),
		betRepo:    mocks.NewBetRepository(t),
		walletRepo: mocks.NewWalletRepository(t),
		ledgerRepo: mocks.NewLedgerRepository(t),
		dbManager:  mocks.NewDBManager(t),
	}
	passThroughTx(f.dbManager)

	logger := zerolog.Nop()
	ledger := NewLedgerService(f.walletRepo, f.ledgerRepo, f.dbManager, logger)
	f.service = NewDrawService(f.drawRepo, f.betRepo, f.walletRepo, ledger, f.dbManager, logger)
	return f
}

func TestScheduleDraw_HappyPath(t *testing.T) {
	f := newDrawFixture(t)

	input := model.ScheduleDrawInput{
		ScheduleID:    3,
		DrawType:      model.DrawEvening,
		DrawDate:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		ScheduledAt:   time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC),
		CutoffMinutes: 15,
	}
	f.drawRepo.On("CreateDraw", mock.Anything, mock.MatchedBy(func(d *model.Draw) bool {
		return d.ScheduleID == 3 && d.DrawType == model.DrawEvening && d.CutoffMinutes == 15
	})).Run(func(args mock.Arguments) {
		d := args.Get(1).(*model.Draw)
		d.ID = 1
		d.Status = model.DrawScheduled
	}).Return(nil)

	draw, err := f.service.ScheduleDraw(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), draw.ID)
	assert.Equal(t, model.DrawScheduled, draw.Status)
}

func TestScheduleDraw_Validation(t *testing.T) {
	valid := model.ScheduleDrawInput{
		ScheduleID:  3,
		DrawType:    model.DrawMorning,
		DrawDate:    time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		ScheduledAt: time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
	}

	unknownType := valid
	unknownType.DrawType = "NIGHT"
	negativeCutoff := valid
	negativeCutoff.CutoffMinutes = -1
	missingTime := valid
	missingTime.ScheduledAt = time.Time{}

	for name, input := range map[string]model.ScheduleDrawInput{
		"unknown type":    unknownType,
		"negative cutoff": negativeCutoff,
		"missing time":    missingTime,
	} {
		t.Run(name, func(t *testing.T) {
			f := newDrawFixture(t)

			_, err := f.service.ScheduleDraw(context.Background(), input)
			require.ErrorIs(t, err, model.ErrInvalidRequest)
		})
	}
}

func TestOpenDraw_InvalidTransition(t *testing.T) {
	f := newDrawFixture(t)

	f.drawRepo.On("TransitionStatus", mock.Anything, int64(1), []model.DrawStatus{model.DrawScheduled}, model.DrawOpen, mock.Anything).
		Return(nil, model.ErrInvalidStateTransition)

	_, err := f.service.OpenDraw(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestCloseDraw_HappyPath(t *testing.T) {
	f := newDrawFixture(t)

	f.drawRepo.On("TransitionStatus", mock.Anything, int64(1), []model.DrawStatus{model.DrawOpen}, model.DrawClosed, mock.Anything).
		Return(drawIn(model.DrawClosed), nil)

	draw, err := f.service.CloseDraw(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.DrawClosed, draw.Status)
}

func TestCancelDraw_RefundsPendingBets(t *testing.T) {
	f := newDrawFixture(t)
	bet := scenarioBet()

	f.drawRepo.On("TransitionStatus", mock.Anything, int64(1),
		[]model.DrawStatus{model.DrawScheduled, model.DrawOpen, model.DrawClosed}, model.DrawCancelled, mock.Anything).
		Return(drawIn(model.DrawCancelled), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetPending}, mock.Anything).
		Return([]*model.Bet{bet}, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7), mock.Anything).Return(&model.Wallet{ID: 70, UserID: 7}, nil)
	f.walletRepo.On("GetWalletForUpdate", mock.Anything, int64(70), mock.Anything).Return(&model.Wallet{
		ID: 70, UserID: 7, Balance: decimal.NewFromInt(90), Status: model.WalletActive,
	}, nil)
	f.walletRepo.On("UpdateBalance", mock.Anything, int64(70), decimalEq("100"), mock.Anything).Return(nil)
	f.ledgerRepo.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TxRefund && trans.Reference == "RFD-20250614-EVN-0A1B2C3D"
	}), mock.Anything).Return(nil)
	f.betRepo.On("UpdateBetResult", mock.Anything, mock.MatchedBy(func(b *model.Bet) bool {
		return b.Status == model.BetRefunded
	}), mock.Anything).Return(nil)

	draw, err := f.service.CancelDraw(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.DrawCancelled, draw.Status)
}

func TestCancelDraw_RefundFailureAbortsCancellation(t *testing.T) {
	f := newDrawFixture(t)

	f.drawRepo.On("TransitionStatus", mock.Anything, int64(1), mock.Anything, model.DrawCancelled, mock.Anything).
		Return(drawIn(model.DrawCancelled), nil)
	f.betRepo.On("ListBetsByDraw", mock.Anything, int64(1), []model.BetStatus{model.BetPending}, mock.Anything).
		Return([]*model.Bet{scenarioBet()}, nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7), mock.Anything).Return(nil, model.ErrWalletNotFound)

	_, err := f.service.CancelDraw(context.Background(), 1)

	require.ErrorIs(t, err, model.ErrWalletNotFound)
	f.betRepo.AssertNotCalled(t, "UpdateBetResult", mock.Anything, mock.Anything, mock.Anything)
}

func TestCloseDueDraws(t *testing.T) {
	f := newDrawFixture(t)
	now := time.Now()

	f.drawRepo.On("CloseDueDraws", mock.Anything, now).Return([]int64{4, 5}, nil)

	ids, err := f.service.CloseDueDraws(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, ids)
}
