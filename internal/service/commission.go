package service

import (
	"context"
	"fmt"
	"numbers-game/internal/model"
	"numbers-game/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// commissionRole describes one tier of the agent chain. Roles without an agent lookup are
// recorded only; roles with one are skipped when the bet carries no agent for them.
type commissionRole struct {
	typ   model.CommissionType
	rate  func(cfg *model.GameConfig) decimal.Decimal
	agent func(bet *model.Bet) *int64
}

var commissionRoles = []commissionRole{
	{
		typ:   model.CommissionCobrador,
		rate:  func(cfg *model.GameConfig) decimal.Decimal { return cfg.CobradorRate },
		agent: func(bet *model.Bet) *int64 { return bet.CobradorID },
	},
	{
		typ:   model.CommissionCabo,
		rate:  func(cfg *model.GameConfig) decimal.Decimal { return cfg.CaboRate },
		agent: func(bet *model.Bet) *int64 { return bet.CaboID },
	},
	{
		typ:  model.CommissionCapitalista,
		rate: func(cfg *model.GameConfig) decimal.Decimal { return cfg.CapitalistaRate },
	},
	{
		typ:  model.CommissionGovernment,
		rate: func(cfg *model.GameConfig) decimal.Decimal { return cfg.GovernmentRate },
	},
}

type CommissionServiceImpl struct {
	commissionRepo repository.CommissionRepository
	walletRepo     repository.WalletRepository
	ledger         LedgerService
	logger         zerolog.Logger
}

func NewCommissionService(
	commissionRepo repository.CommissionRepository,
	walletRepo repository.WalletRepository,
	ledger LedgerService,
	logger zerolog.Logger,
) CommissionService {
	return &CommissionServiceImpl{
		commissionRepo: commissionRepo,
		walletRepo:     walletRepo,
		ledger:         ledger,
		logger:         logger,
	}
}

// DistributeTx creates the commission records of a bet and credits agent wallets.
// A (bet, role) pair that already has a record is left untouched, so re-running is a no-op.
func (s *CommissionServiceImpl) DistributeTx(ctx context.Context, tx pgx.Tx, bet *model.Bet, cfg *model.GameConfig) ([]*model.Commission, error) {
	var created []*model.Commission

	for _, role := range commissionRoles {
		var agentID *int64
		if role.agent != nil {
			if agentID = role.agent(bet); agentID == nil {
				continue
			}
		}

		rate := role.rate(cfg)
		amount := bet.Amount.Mul(rate).Round(2)
		if !amount.IsPositive() {
			continue
		}

		commission := &model.Commission{
			BetID:   bet.ID,
			DrawID:  bet.DrawID,
			AgentID: agentID,
			Type:    role.typ,
			Rate:    rate,
			Amount:  amount,
			Status:  model.CommissionPending,
		}
		inserted, err := s.commissionRepo.InsertCommission(ctx, commission, tx)
		if err != nil {
			return nil, fmt.Errorf("insert %s commission: %w", role.typ, err)
		}
		if !inserted {
			continue
		}

		if agentID != nil {
			wallet, err := s.walletRepo.GetWalletByUser(ctx, *agentID, tx)
			if err != nil {
				return nil, fmt.Errorf("get %s wallet: %w", role.typ, err)
			}
			if _, err := s.ledger.CreditTx(ctx, tx, model.LedgerRequest{
				WalletID:  wallet.ID,
				Amount:    amount,
				Type:      model.TxCommission,
				Reference: model.CommissionReference(bet.Reference, role.typ),
			}); err != nil {
				return nil, fmt.Errorf("credit %s commission: %w", role.typ, err)
			}
		}

		s.logger.Debug().
			Str("bet_reference", bet.Reference).
			Str("type", string(role.typ)).
			Str("amount", amount.StringFixed(2)).
			Msg("commission recorded")
		created = append(created, commission)
	}

	return created, nil
}
