package service

import (
	"context"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type DrawServiceImpl struct {
	drawRepo   repository.DrawRepository
	betRepo    repository.BetRepository
	walletRepo repository.WalletRepository
	ledger     LedgerService
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewDrawService(
	drawRepo repository.DrawRepository,
	betRepo repository.BetRepository,
	walletRepo repository.WalletRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) DrawService {
	return &DrawServiceImpl{
		drawRepo:   drawRepo,
		betRepo:    betRepo,
		walletRepo: walletRepo,
		ledger:     ledger,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func (s *DrawServiceImpl) ScheduleDraw(ctx context.Context, input model.ScheduleDrawInput) (*model.Draw, error) {
	if _, err := model.ParseDrawType(string(input.DrawType)); err != nil {
		return nil, fmt.Errorf("%w: unknown draw type %q", model.ErrInvalidRequest, input.DrawType)
	}
	if input.CutoffMinutes < 0 {
		return nil, fmt.Errorf("%w: cutoff minutes must not be negative", model.ErrInvalidRequest)
	}
	if input.ScheduledAt.IsZero() || input.DrawDate.IsZero() {
		return nil, fmt.Errorf("%w: draw date and schedule time are required", model.ErrInvalidRequest)
	}

	draw := &model.Draw{
		ScheduleID:    input.ScheduleID,
		DrawType:      input.DrawType,
		DrawDate:      input.DrawDate,
		ScheduledAt:   input.ScheduledAt,
		CutoffMinutes: input.CutoffMinutes,
	}
	if err := s.drawRepo.CreateDraw(ctx, draw); err != nil {
		return nil, fmt.Errorf("create draw: %w", err)
	}

	s.logger.Info().
		Int64("draw_id", draw.ID).
		Str("draw_type", string(draw.DrawType)).
		Time("scheduled_at", draw.ScheduledAt).
		Msg("draw scheduled")
	return draw, nil
}

func (s *DrawServiceImpl) GetDraw(ctx context.Context, drawID int64) (*model.Draw, error) {
	draw, err := s.drawRepo.GetDraw(ctx, drawID)
	if err != nil {
		return nil, fmt.Errorf("get draw: %w", err)
	}
	return draw, nil
}

func (s *DrawServiceImpl) ListDrawBets(ctx context.Context, drawID int64) ([]*model.Bet, error) {
	if _, err := s.drawRepo.GetDraw(ctx, drawID); err != nil {
		return nil, fmt.Errorf("get draw: %w", err)
	}

	bets, err := s.betRepo.ListBetsByDraw(ctx, drawID, nil)
	if err != nil {
		return nil, fmt.Errorf("list draw bets: %w", err)
	}
	return bets, nil
}

func (s *DrawServiceImpl) OpenDraw(ctx context.Context, drawID int64) (*model.Draw, error) {
	return s.transition(ctx, drawID, []model.DrawStatus{model.DrawScheduled}, model.DrawOpen)
}

func (s *DrawServiceImpl) CloseDraw(ctx context.Context, drawID int64) (*model.Draw, error) {
	return s.transition(ctx, drawID, []model.DrawStatus{model.DrawOpen}, model.DrawClosed)
}

func (s *DrawServiceImpl) transition(ctx context.Context, drawID int64, from []model.DrawStatus, to model.DrawStatus) (*model.Draw, error) {
	var draw *model.Draw
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		draw, err = s.drawRepo.TransitionStatus(ctx, drawID, from, to, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("transition draw to %s: %w", to, err)
	}

	s.logger.Info().Int64("draw_id", drawID).Str("status", to.String()).Msg("draw status changed")
	return draw, nil
}

func (s *DrawServiceImpl) CloseDueDraws(ctx context.Context, now time.Time) ([]int64, error) {
	ids, err := s.drawRepo.CloseDueDraws(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("close due draws: %w", err)
	}

	if len(ids) > 0 {
		s.logger.Info().Ints64("draw_ids", ids).Msg("draws closed at cutoff")
	}
	return ids, nil
}

// CancelDraw cancels the draw and refunds every pending stake in one transaction;
// either all refunds land or the draw stays in its previous state.
func (s *DrawServiceImpl) CancelDraw(ctx context.Context, drawID int64) (*model.Draw, error) {
	var (
		draw     *model.Draw
		refunded int
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		refunded = 0

		var err error
		draw, err = s.drawRepo.TransitionStatus(ctx, drawID,
			[]model.DrawStatus{model.DrawScheduled, model.DrawOpen, model.DrawClosed}, model.DrawCancelled, tx)
		if err != nil {
			return err
		}

		bets, err := s.betRepo.ListBetsByDraw(ctx, drawID, []model.BetStatus{model.BetPending}, tx)
		if err != nil {
			return fmt.Errorf("list pending bets: %w", err)
		}

		for _, bet := range bets {
			wallet, err := s.walletRepo.GetWalletByUser(ctx, bet.BettorID, tx)
			if err != nil {
				return fmt.Errorf("refund bet %s: %w", bet.Reference, err)
			}

			_, err = s.ledger.CreditTx(ctx, tx, model.LedgerRequest{
				WalletID:  wallet.ID,
				Amount:    bet.Amount,
				Type:      model.TxRefund,
				Reference: model.RefundReference(bet.Reference),
			})
			if err != nil {
				return fmt.Errorf("refund bet %s: %w", bet.Reference, err)
			}

			bet.Status = model.BetRefunded
			if err := s.betRepo.UpdateBetResult(ctx, bet, tx); err != nil {
				return fmt.Errorf("mark bet %s refunded: %w", bet.Reference, err)
			}
			refunded++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel draw: %w", err)
	}

	s.logger.Info().Int64("draw_id", drawID).Int("refunded_bets", refunded).Msg("draw cancelled")
	return draw, nil
}
