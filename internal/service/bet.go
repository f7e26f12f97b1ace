package service

import (
	"context"
	"errors"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxReferenceAttempts bounds regeneration of a colliding bet reference
const maxReferenceAttempts = 3

type BetServiceImpl struct {
	configRepo  repository.GameConfigRepository
	drawRepo    repository.DrawRepository
	walletRepo  repository.WalletRepository
	betRepo     repository.BetRepository
	autoBetRepo repository.AutoBetRepository
	ledger      LedgerService
	dbManager   repository.DBManager
	timeout     time.Duration
	now         func() time.Time
	logger      zerolog.Logger
}

func NewBetService(
	configRepo repository.GameConfigRepository,
	drawRepo repository.DrawRepository,
	walletRepo repository.WalletRepository,
	betRepo repository.BetRepository,
	autoBetRepo repository.AutoBetRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	timeout time.Duration,
	logger zerolog.Logger,
) BetService {
	return &BetServiceImpl{
		configRepo:  configRepo,
		drawRepo:    drawRepo,
		walletRepo:  walletRepo,
		betRepo:     betRepo,
		autoBetRepo: autoBetRepo,
		ledger:      ledger,
		dbManager:   dbManager,
		timeout:     timeout,
		now:         time.Now,
		logger:      logger,
	}
}

// PlaceBet validates and commits one bet. The wallet debit, the bet row, the draw counters and
// (for auto-bets) the execution record are written in one transaction, so a reader sees either
// none or all of them. The game config is read once and used for the whole operation.
func (s *BetServiceImpl) PlaceBet(ctx context.Context, input model.PlaceBetInput) (*model.Bet, error) {
	cfg, err := s.configRepo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active config: %w", err)
	}

	if input.Currency == "" {
		input.Currency = cfg.Currency
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var bet *model.Bet
	for attempt := 1; ; attempt++ {
		bet, err = s.placeOnce(ctx, input, cfg)
		if errors.Is(err, model.ErrDuplicateReference) && attempt < maxReferenceAttempts {
			s.logger.Warn().Int("attempt", attempt).Int64("draw_id", input.DrawID).Msg("bet reference collision, regenerating")
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("reference", bet.Reference).
		Int64("draw_id", bet.DrawID).
		Int64("bettor_id", bet.BettorID).
		Str("combination", bet.CombinationKey).
		Str("amount", bet.Amount.StringFixed(2)).
		Msg("bet placed")
	return bet, nil
}

func (s *BetServiceImpl) placeOnce(ctx context.Context, input model.PlaceBetInput, cfg *model.GameConfig) (*model.Bet, error) {
	var bet *model.Bet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Lock the draw first, then the wallet; settlement and cancellation take locks in the same order
		draw, err := s.drawRepo.GetDrawForUpdate(ctx, input.DrawID, tx)
		if err != nil {
			return fmt.Errorf("get draw: %w", err)
		}
		if draw.Status != model.DrawOpen {
			return fmt.Errorf("%w: draw %d is %s", model.ErrDrawNotAcceptingBets, draw.ID, draw.Status)
		}
		if !s.now().Before(draw.CutoffAt()) {
			return fmt.Errorf("%w: draw %d passed its cutoff", model.ErrDrawNotAcceptingBets, draw.ID)
		}

		if err := cfg.ValidateNumbers(input.Number1, input.Number2); err != nil {
			return err
		}
		if err := cfg.ValidateAmount(input.Amount); err != nil {
			return err
		}
		if input.Currency != cfg.Currency {
			return fmt.Errorf("%w: currency %s is not accepted", model.ErrInvalidRequest, input.Currency)
		}

		wallet, err := s.walletRepo.GetWalletByUser(ctx, input.BettorID, tx)
		if err != nil {
			return fmt.Errorf("get bettor wallet: %w", err)
		}

		reference := model.NewBetReference(draw.DrawDate, draw.DrawType)
		if _, err := s.ledger.DebitTx(ctx, tx, model.LedgerRequest{
			WalletID:  wallet.ID,
			Amount:    input.Amount,
			Type:      model.TxBet,
			Reference: reference,
		}); err != nil {
			return fmt.Errorf("debit stake: %w", err)
		}

		bet = &model.Bet{
			DrawID:          draw.ID,
			BettorID:        input.BettorID,
			CobradorID:      input.CobradorID,
			CaboID:          input.CaboID,
			AutoBetConfigID: input.AutoBetConfigID,
			Number1:         input.Number1,
			Number2:         input.Number2,
			CombinationKey:  model.CombinationKey(input.Number1, input.Number2),
			Amount:          input.Amount,
			Currency:        input.Currency,
			Status:          model.BetPending,
			PayoutAmount:    decimal.Zero,
			Reference:       reference,
		}
		if err := s.betRepo.InsertBet(ctx, bet, tx); err != nil {
			return fmt.Errorf("insert bet: %w", err)
		}

		if err := s.drawRepo.IncrementTotals(ctx, draw.ID, input.Amount, tx); err != nil {
			return fmt.Errorf("increment draw totals: %w", err)
		}

		if input.AutoBetConfigID != nil {
			if err := s.autoBetRepo.RecordExecution(ctx, *input.AutoBetConfigID, draw.ID, bet.ID, tx); err != nil {
				return fmt.Errorf("record auto-bet execution: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bet, nil
}

func (s *BetServiceImpl) GetBet(ctx context.Context, reference string) (*model.Bet, error) {
	bet, err := s.betRepo.GetBetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get bet: %w", err)
	}
	return bet, nil
}
