package service

import (
	"context"
	"numbers-game/internal/model"
	"numbers-game/mocks/repository"
	svcmocks "numbers-game/mocks/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type autoBetFixture struct {
	autoBetRepo *mocks.AutoBetRepository
	drawRepo    *mocks.DrawRepository
	configRepo  *mocks.GameConfigRepository
	walletRepo  *mocks.WalletRepository
	bets        *svcmocks.BetService
	service     *AutoBetServiceImpl
}

func newAutoBetFixture(t *testing.T) *autoBetFixture {
	f := &autoBetFixture{
		autoBetRepo: mocks.NewAutoBetRepository(t),
		drawRepo:    mocks.NewDrawRepository(t),
		configRepo:  mocks.NewGameConfigRepository(t),
		walletRepo:  mocks.NewWalletRepository(t),
		bets:        svcmocks.NewBetService(t),
	}
	f.service = NewAutoBetService(f.autoBetRepo, f.drawRepo, f.configRepo, f.walletRepo, f.bets,
		3, 2, zerolog.Nop()).(*AutoBetServiceImpl)
	f.service.now = func() time.Time { return testNow }
	return f
}

func activeAutoBet(id int64, executed int) *model.AutoBetConfig {
	return &model.AutoBetConfig{
		ID:           id,
		UserID:       7,
		Number1:      5,
		Number2:      12,
		AmountPerBet: decimal.NewFromInt(10),
		Currency:     "DOP",
		DurationDays: 2,
		StartDate:    testNow.Add(-24 * time.Hour),
		EndDate:      testNow.Add(24 * time.Hour),
		TotalBets:    6,
		ExecutedBets: executed,
		Status:       model.AutoBetActive,
	}
}

func TestCreateAutoBet_ComputesBudget(t *testing.T) {
	f := newAutoBetFixture(t)

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	f.walletRepo.On("GetWalletByUser", mock.Anything, int64(7)).Return(&model.Wallet{ID: 70, UserID: 7}, nil)
	f.autoBetRepo.On("CreateAutoBet", mock.Anything, mock.MatchedBy(func(c *model.AutoBetConfig) bool {
		return c.TotalBets == 21 &&
			c.Status == model.AutoBetActive &&
			c.StartDate.Equal(testNow) &&
			c.EndDate.Equal(testNow.AddDate(0, 0, 7)) &&
			c.Currency == "DOP"
	})).Return(nil)

	autoBet, err := f.service.CreateAutoBet(context.Background(), model.CreateAutoBetInput{
		UserID:       7,
		Number1:      5,
		Number2:      12,
		AmountPerBet: decimal.NewFromInt(10),
		DurationDays: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, 21, autoBet.TotalBets)
}

func TestCreateAutoBet_RejectsBadInput(t *testing.T) {
	f := newAutoBetFixture(t)

	_, err := f.service.CreateAutoBet(context.Background(), model.CreateAutoBetInput{
		UserID: 7, Number1: 5, Number2: 12, AmountPerBet: decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, model.ErrInvalidRequest)

	f.configRepo.On("GetActiveConfig", mock.Anything).Return(scenarioConfig(), nil)
	_, err = f.service.CreateAutoBet(context.Background(), model.CreateAutoBetInput{
		UserID: 7, Number1: 5, Number2: 99, AmountPerBet: decimal.NewFromInt(10), DurationDays: 1,
	})
	require.ErrorIs(t, err, model.ErrInvalidNumbers)
}

func TestResumeAutoBet_ExpiredConfig(t *testing.T) {
	f := newAutoBetFixture(t)

	expired := activeAutoBet(1, 2)
	expired.Status = model.AutoBetPaused
	expired.EndDate = testNow.Add(-time.Minute)
	f.autoBetRepo.On("GetAutoBet", mock.Anything, int64(1)).Return(expired, nil)

	_, err := f.service.ResumeAutoBet(context.Background(), 1)

	require.ErrorIs(t, err, model.ErrConfigExpired)
	f.autoBetRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResumeAutoBet_HappyPath(t *testing.T) {
	f := newAutoBetFixture(t)

	paused := activeAutoBet(1, 2)
	paused.Status = model.AutoBetPaused
	f.autoBetRepo.On("GetAutoBet", mock.Anything, int64(1)).Return(paused, nil)
	f.autoBetRepo.On("TransitionStatus", mock.Anything, int64(1), []model.AutoBetStatus{model.AutoBetPaused}, model.AutoBetActive).
		Return(activeAutoBet(1, 2), nil)

	autoBet, err := f.service.ResumeAutoBet(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.AutoBetActive, autoBet.Status)
}

func TestCancelAutoBet_FromTerminalStatus(t *testing.T) {
	f := newAutoBetFixture(t)

	f.autoBetRepo.On("TransitionStatus", mock.Anything, int64(1),
		[]model.AutoBetStatus{model.AutoBetActive, model.AutoBetPaused}, model.AutoBetCancelled).
		Return(nil, model.ErrInvalidStateTransition)

	_, err := f.service.CancelAutoBet(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestRunCycle_SkipsInsufficientFundsAndKeepsConfigActive(t *testing.T) {
	f := newAutoBetFixture(t)

	draws := []*model.Draw{openDraw()}
	f.autoBetRepo.On("ListRunnable", mock.Anything, testNow).Return([]*model.AutoBetConfig{activeAutoBet(1, 0)}, nil)
	f.drawRepo.On("ListOpenDraws", mock.Anything, testNow).Return(draws, nil)
	f.bets.On("PlaceBet", mock.Anything, mock.Anything).Return(nil, model.ErrInsufficientFunds)

	report, err := f.service.RunCycle(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Placed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Completed)
	f.autoBetRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunCycle_PlacesOneBetPerDrawAndCompletesExhaustedConfig(t *testing.T) {
	f := newAutoBetFixture(t)

	second := openDraw()
	second.ID = 2
	draws := []*model.Draw{openDraw(), second}

	f.autoBetRepo.On("ListRunnable", mock.Anything, testNow).Return([]*model.AutoBetConfig{
		activeAutoBet(1, 5),
		activeAutoBet(2, 0),
	}, nil)
	f.drawRepo.On("ListOpenDraws", mock.Anything, testNow).Return(draws, nil)

	// config 1 has one bet left
	f.bets.On("PlaceBet", mock.Anything, mock.MatchedBy(func(in model.PlaceBetInput) bool {
		return *in.AutoBetConfigID == 1 && in.DrawID == 1
	})).Return(&model.Bet{ID: 100}, nil).Once()
	f.autoBetRepo.On("TransitionStatus", mock.Anything, int64(1), []model.AutoBetStatus{model.AutoBetActive}, model.AutoBetCompleted).
		Return(&model.AutoBetConfig{ID: 1, Status: model.AutoBetCompleted}, nil)

	// config 2 already covered draw 1 in an earlier cycle
	f.bets.On("PlaceBet", mock.Anything, mock.MatchedBy(func(in model.PlaceBetInput) bool {
		return *in.AutoBetConfigID == 2 && in.DrawID == 1
	})).Return(nil, model.ErrAutoBetAlreadyExecuted).Once()
	f.bets.On("PlaceBet", mock.Anything, mock.MatchedBy(func(in model.PlaceBetInput) bool {
		return *in.AutoBetConfigID == 2 && in.DrawID == 2 && in.BettorID == 7 && in.Amount.Equal(decimal.NewFromInt(10))
	})).Return(&model.Bet{ID: 101}, nil).Once()

	report, err := f.service.RunCycle(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 2, report.Placed)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 1, report.Completed)
}

func TestRunCycle_ExpiredConfigCompletesWithoutBetting(t *testing.T) {
	f := newAutoBetFixture(t)

	expired := activeAutoBet(1, 0)
	expired.EndDate = testNow.Add(-time.Hour)
	f.autoBetRepo.On("ListRunnable", mock.Anything, testNow).Return([]*model.AutoBetConfig{expired}, nil)
	f.drawRepo.On("ListOpenDraws", mock.Anything, testNow).Return([]*model.Draw{openDraw()}, nil)
	f.autoBetRepo.On("TransitionStatus", mock.Anything, int64(1), []model.AutoBetStatus{model.AutoBetActive}, model.AutoBetCompleted).
		Return(&model.AutoBetConfig{ID: 1, Status: model.AutoBetCompleted}, nil)

	report, err := f.service.RunCycle(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)
	f.bets.AssertNotCalled(t, "PlaceBet", mock.Anything, mock.Anything)
}
