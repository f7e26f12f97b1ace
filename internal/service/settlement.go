package service

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SettlementServiceImpl struct {
	configRepo     repository.GameConfigRepository
	drawRepo       repository.DrawRepository
	betRepo        repository.BetRepository
	walletRepo     repository.WalletRepository
	commissionRepo repository.CommissionRepository
	ledger         LedgerService
	commissions    CommissionService
	dbManager      repository.DBManager
	logger         zerolog.Logger
}

func NewSettlementService(
	configRepo repository.GameConfigRepository,
	drawRepo repository.DrawRepository,
	betRepo repository.BetRepository,
	walletRepo repository.WalletRepository,
	commissionRepo repository.CommissionRepository,
	ledger LedgerService,
	commissions CommissionService,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		configRepo:     configRepo,
		drawRepo:       drawRepo,
		betRepo:        betRepo,
		walletRepo:     walletRepo,
		commissionRepo: commissionRepo,
		ledger:         ledger,
		commissions:    commissions,
		dbManager:      dbManager,
		logger:         logger,
	}
}

// isolatable reports whether a per-bet failure can be contained in its savepoint.
// Lock conflicts, lost connections and cancellation abort the whole unit so it is retried or
// dropped as one.
func isolatable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || repository.IsTransient(err) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// RecordDrawResult moves a CLOSED draw to DRAWN: winners are paid, the rest marked LOST, and
// the draw aggregates written in one transaction. A winner whose credit fails is marked ERROR
// and flagged on the draw instead of blocking the others. Settlement runs right after.
func (s *SettlementServiceImpl) RecordDrawResult(ctx context.Context, drawID int64, number1, number2 int) (*model.Draw, error) {
	cfg, err := s.configRepo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active config: %w", err)
	}
	if err := cfg.ValidateNumbers(number1, number2); err != nil {
		return nil, err
	}

	key := model.CombinationKey(number1, number2)

	var (
		draw    *model.Draw
		winners int
		failed  int
		losers  int64
	)

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		winners, failed, losers = 0, 0, 0

		var err error
		draw, err = s.drawRepo.GetDrawForUpdate(ctx, drawID, tx)
		if err != nil {
			return fmt.Errorf("get draw: %w", err)
		}
		if draw.Status != model.DrawClosed {
			return fmt.Errorf("%w: draw %d is %s, result needs CLOSED",
				model.ErrInvalidStateTransition, draw.ID, draw.Status)
		}

		pending, err := s.betRepo.ListPendingWinners(ctx, drawID, key, tx)
		if err != nil {
			return fmt.Errorf("list winning bets: %w", err)
		}

		totalPayout := decimal.Zero
		exceptions := false
		for _, bet := range pending {
			payout := bet.Amount.Mul(cfg.PayoutMultiplier).Round(2)

			err := s.dbManager.WithSavepoint(ctx, tx, func(sp pgx.Tx) error {
				return s.payWinner(ctx, sp, bet, payout)
			})
			if err == nil {
				totalPayout = totalPayout.Add(payout)
				winners++
				continue
			}
			if !isolatable(ctx, err) {
				return err
			}

			s.logger.Error().Err(err).
				Int64("draw_id", drawID).
				Str("bet_reference", bet.Reference).
				Str("payout", payout.StringFixed(2)).
				Msg("payout failed, bet marked for follow-up")

			bet.Status = model.BetError
			bet.IsWinner = true
			bet.PayoutAmount = decimal.Zero
			if err := s.betRepo.UpdateBetResult(ctx, bet, tx); err != nil {
				return fmt.Errorf("mark bet %s errored: %w", bet.Reference, err)
			}
			exceptions = true
			failed++
		}

		losers, err = s.betRepo.MarkLosers(ctx, drawID, key, tx)
		if err != nil {
			return fmt.Errorf("mark losing bets: %w", err)
		}

		draw.Number1 = &number1
		draw.Number2 = &number2
		draw.CombinationKey = &key
		draw.TotalPayout = totalPayout
		draw.SettlementExceptions = exceptions
		if err := s.drawRepo.SaveResult(ctx, draw, tx); err != nil {
			return fmt.Errorf("save draw result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record draw result: %w", err)
	}

	s.logger.Info().
		Int64("draw_id", drawID).
		Str("combination", key).
		Int("winners", winners).
		Int("failed_payouts", failed).
		Int64("losers", losers).
		Str("total_payout", draw.TotalPayout.StringFixed(2)).
		Msg("draw result recorded")

	result, err := s.settle(ctx, drawID, cfg)
	if err != nil {
		return draw, fmt.Errorf("settle draw: %w", err)
	}
	return result.Draw, nil
}

func (s *SettlementServiceImpl) payWinner(ctx context.Context, tx pgx.Tx, bet *model.Bet, payout decimal.Decimal) error {
	wallet, err := s.walletRepo.GetWalletByUser(ctx, bet.BettorID, tx)
	if err != nil {
		return fmt.Errorf("get bettor wallet: %w", err)
	}

	if _, err := s.ledger.CreditTx(ctx, tx, model.LedgerRequest{
		WalletID:  wallet.ID,
		Amount:    payout,
		Type:      model.TxPayout,
		Reference: model.PayoutReference(bet.Reference),
	}); err != nil {
		return fmt.Errorf("credit payout: %w", err)
	}

	bet.Status = model.BetWon
	bet.IsWinner = true
	bet.PayoutAmount = payout
	if err := s.betRepo.UpdateBetResult(ctx, bet, tx); err != nil {
		return fmt.Errorf("mark bet won: %w", err)
	}
	return nil
}

// SettleDraw distributes commissions for every resolved bet of a DRAWN draw and marks it
// SETTLED. Calling it on a SETTLED draw returns the recorded outcome without writing anything.
func (s *SettlementServiceImpl) SettleDraw(ctx context.Context, drawID int64) (*model.SettlementResult, error) {
	cfg, err := s.configRepo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active config: %w", err)
	}
	return s.settle(ctx, drawID, cfg)
}

// settle uses cfg for commission rates; RecordDrawResult passes the config it paid winners with.
func (s *SettlementServiceImpl) settle(ctx context.Context, drawID int64, cfg *model.GameConfig) (*model.SettlementResult, error) {
	var (
		result         *model.SettlementResult
		alreadySettled bool
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		alreadySettled = false

		draw, err := s.drawRepo.GetDrawForUpdate(ctx, drawID, tx)
		if err != nil {
			return fmt.Errorf("get draw: %w", err)
		}

		switch draw.Status {
		case model.DrawSettled:
			alreadySettled = true
		case model.DrawDrawn:
			if draw, err = s.distribute(ctx, tx, draw, cfg); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: draw %d is %s, settlement needs DRAWN",
				model.ErrInvalidStateTransition, draw.ID, draw.Status)
		}

		winners, err := s.betRepo.ListBetsByDraw(ctx, drawID, []model.BetStatus{model.BetWon}, tx)
		if err != nil {
			return fmt.Errorf("list winners: %w", err)
		}
		commissions, err := s.commissionRepo.GetCommissionsByDraw(ctx, drawID, tx)
		if err != nil {
			return fmt.Errorf("list commissions: %w", err)
		}

		result = &model.SettlementResult{Draw: draw, Winners: winners, Commissions: commissions}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadySettled {
		s.logger.Debug().Int64("draw_id", drawID).Msg("draw already settled")
	} else {
		s.logger.Info().
			Int64("draw_id", drawID).
			Int("winners", len(result.Winners)).
			Int("commissions", len(result.Commissions)).
			Bool("exceptions", result.Draw.SettlementExceptions).
			Msg("draw settled")
	}
	return result, nil
}

func (s *SettlementServiceImpl) distribute(ctx context.Context, tx pgx.Tx, draw *model.Draw, cfg *model.GameConfig) (*model.Draw, error) {
	bets, err := s.betRepo.ListBetsByDraw(ctx, draw.ID,
		[]model.BetStatus{model.BetWon, model.BetLost, model.BetError}, tx)
	if err != nil {
		return nil, fmt.Errorf("list resolved bets: %w", err)
	}

	exceptions := false
	for _, bet := range bets {
		err := s.dbManager.WithSavepoint(ctx, tx, func(sp pgx.Tx) error {
			_, err := s.commissions.DistributeTx(ctx, sp, bet, cfg)
			return err
		})
		if err == nil {
			continue
		}
		if !isolatable(ctx, err) {
			return nil, err
		}

		s.logger.Error().Err(err).
			Int64("draw_id", draw.ID).
			Str("bet_reference", bet.Reference).
			Msg("commission distribution failed")
		exceptions = true
	}

	settled, err := s.drawRepo.MarkSettled(ctx, draw.ID, exceptions, tx)
	if err != nil {
		return nil, fmt.Errorf("mark draw settled: %w", err)
	}
	return settled, nil
}
