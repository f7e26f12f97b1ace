package service

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type AutoBetServiceImpl struct {
	autoBetRepo repository.AutoBetRepository
	drawRepo    repository.DrawRepository
	configRepo  repository.GameConfigRepository
	walletRepo  repository.WalletRepository
	bets        BetService
	drawsPerDay int
	concurrency int
	now         func() time.Time
	logger      zerolog.Logger
}

func NewAutoBetService(
	autoBetRepo repository.AutoBetRepository,
	drawRepo repository.DrawRepository,
	configRepo repository.GameConfigRepository,
	walletRepo repository.WalletRepository,
	bets BetService,
	drawsPerDay int,
	concurrency int,
	logger zerolog.Logger,
) AutoBetService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AutoBetServiceImpl{
		autoBetRepo: autoBetRepo,
		drawRepo:    drawRepo,
		configRepo:  configRepo,
		walletRepo:  walletRepo,
		bets:        bets,
		drawsPerDay: drawsPerDay,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *AutoBetServiceImpl) CreateAutoBet(ctx context.Context, input model.CreateAutoBetInput) (*model.AutoBetConfig, error) {
	if input.DurationDays <= 0 {
		return nil, fmt.Errorf("%w: duration must be at least one day", model.ErrInvalidRequest)
	}

	cfg, err := s.configRepo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active config: %w", err)
	}
	if err := cfg.ValidateNumbers(input.Number1, input.Number2); err != nil {
		return nil, err
	}
	if err := cfg.ValidateAmount(input.AmountPerBet); err != nil {
		return nil, err
	}
	if input.Currency == "" {
		input.Currency = cfg.Currency
	}
	if input.Currency != cfg.Currency {
		return nil, fmt.Errorf("%w: currency %s is not accepted", model.ErrInvalidRequest, input.Currency)
	}

	if _, err := s.walletRepo.GetWalletByUser(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user wallet: %w", err)
	}

	start := input.StartDate
	if start.IsZero() {
		start = s.now()
	}

	autoBet := &model.AutoBetConfig{
		UserID:       input.UserID,
		CobradorID:   input.CobradorID,
		CaboID:       input.CaboID,
		Number1:      input.Number1,
		Number2:      input.Number2,
		AmountPerBet: input.AmountPerBet,
		Currency:     input.Currency,
		DurationDays: input.DurationDays,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, input.DurationDays),
		TotalBets:    input.DurationDays * s.drawsPerDay,
		Status:       model.AutoBetActive,
	}
	if err := s.autoBetRepo.CreateAutoBet(ctx, autoBet); err != nil {
		return nil, fmt.Errorf("create auto-bet: %w", err)
	}

	s.logger.Info().
		Int64("auto_bet_id", autoBet.ID).
		Int64("user_id", autoBet.UserID).
		Int("total_bets", autoBet.TotalBets).
		Time("end_date", autoBet.EndDate).
		Msg("auto-bet created")
	return autoBet, nil
}

func (s *AutoBetServiceImpl) GetAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error) {
	autoBet, err := s.autoBetRepo.GetAutoBet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get auto-bet: %w", err)
	}
	return autoBet, nil
}

func (s *AutoBetServiceImpl) PauseAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error) {
	return s.transition(ctx, id, []model.AutoBetStatus{model.AutoBetActive}, model.AutoBetPaused)
}

// ResumeAutoBet reactivates a PAUSED config; once its end date has passed it can only expire
func (s *AutoBetServiceImpl) ResumeAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error) {
	autoBet, err := s.autoBetRepo.GetAutoBet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get auto-bet: %w", err)
	}
	if s.now().After(autoBet.EndDate) {
		return nil, fmt.Errorf("%w: ended %s", model.ErrConfigExpired, autoBet.EndDate.Format(time.RFC3339))
	}
	return s.transition(ctx, id, []model.AutoBetStatus{model.AutoBetPaused}, model.AutoBetActive)
}

func (s *AutoBetServiceImpl) CancelAutoBet(ctx context.Context, id int64) (*model.AutoBetConfig, error) {
	return s.transition(ctx, id, []model.AutoBetStatus{model.AutoBetActive, model.AutoBetPaused}, model.AutoBetCancelled)
}

func (s *AutoBetServiceImpl) transition(ctx context.Context, id int64, from []model.AutoBetStatus, to model.AutoBetStatus) (*model.AutoBetConfig, error) {
	autoBet, err := s.autoBetRepo.TransitionStatus(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("transition auto-bet to %s: %w", to, err)
	}

	s.logger.Info().Int64("auto_bet_id", id).Str("status", string(to)).Msg("auto-bet status changed")
	return autoBet, nil
}

// RunCycle places the bets owed by every runnable config against the draws open at now.
// A bet that cannot be placed this cycle is skipped and attempted again on the next one
// while its draw stays open.
func (s *AutoBetServiceImpl) RunCycle(ctx context.Context, now time.Time) (*model.AutoBetCycleReport, error) {
	configs, err := s.autoBetRepo.ListRunnable(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list runnable auto-bets: %w", err)
	}

	report := &model.AutoBetCycleReport{Scanned: len(configs)}
	if len(configs) == 0 {
		return report, nil
	}

	draws, err := s.drawRepo.ListOpenDraws(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list open draws: %w", err)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, autoBet := range configs {
		g.Go(func() error {
			placed, skipped, completed := s.runConfig(gctx, autoBet, draws, now)

			mu.Lock()
			report.Placed += placed
			report.Skipped += skipped
			if completed {
				report.Completed++
			}
			mu.Unlock()
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("auto-bet cycle interrupted: %w", err)
	}

	s.logger.Info().
		Int("scanned", report.Scanned).
		Int("placed", report.Placed).
		Int("skipped", report.Skipped).
		Int("completed", report.Completed).
		Msg("auto-bet cycle finished")
	return report, nil
}

func (s *AutoBetServiceImpl) runConfig(ctx context.Context, autoBet *model.AutoBetConfig, draws []*model.Draw, now time.Time) (placed, skipped int, completed bool) {
	log := s.logger.With().Int64("auto_bet_id", autoBet.ID).Logger()

	for _, draw := range draws {
		if autoBet.Exhausted(now) || ctx.Err() != nil {
			break
		}

		_, err := s.bets.PlaceBet(ctx, model.PlaceBetInput{
			DrawID:          draw.ID,
			BettorID:        autoBet.UserID,
			CobradorID:      autoBet.CobradorID,
			CaboID:          autoBet.CaboID,
			AutoBetConfigID: &autoBet.ID,
			Number1:         autoBet.Number1,
			Number2:         autoBet.Number2,
			Amount:          autoBet.AmountPerBet,
			Currency:        autoBet.Currency,
		})
		switch {
		case err == nil:
			autoBet.ExecutedBets++
			placed++
		case errors.Is(err, model.ErrAutoBetAlreadyExecuted):
			// already covered this draw in an earlier cycle
		case errors.Is(err, model.ErrInvalidStateTransition):
			// paused or cancelled while the cycle was running
			log.Debug().Msg("auto-bet no longer active")
			return placed, skipped, false
		case errors.Is(err, model.ErrInsufficientFunds),
			errors.Is(err, model.ErrWalletInactive),
			errors.Is(err, model.ErrDrawNotAcceptingBets):
			log.Warn().Err(err).Int64("draw_id", draw.ID).Msg("auto-bet skipped")
			skipped++
		default:
			log.Error().Err(err).Int64("draw_id", draw.ID).Msg("auto-bet placement failed")
			skipped++
		}
	}

	if !autoBet.Exhausted(now) {
		return placed, skipped, false
	}

	_, err := s.autoBetRepo.TransitionStatus(ctx, autoBet.ID, []model.AutoBetStatus{model.AutoBetActive}, model.AutoBetCompleted)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidStateTransition) {
			log.Error().Err(err).Msg("failed to complete auto-bet")
		}
		return placed, skipped, false
	}
	log.Info().Int("executed_bets", autoBet.ExecutedBets).Msg("auto-bet completed")
	return placed, skipped, true
}
