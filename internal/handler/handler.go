package handler

import (
	"errors"
	"fmt"
	"net/http"
	"numbers-game/internal/model"
	"numbers-game/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	betService        service.BetService
	drawService       service.DrawService
	settlementService service.SettlementService
	ledgerService     service.LedgerService
	autoBetService    service.AutoBetService
	logger            zerolog.Logger
}

func NewHandler(
	betService service.BetService,
	drawService service.DrawService,
	settlementService service.SettlementService,
	ledgerService service.LedgerService,
	autoBetService service.AutoBetService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		betService:        betService,
		drawService:       drawService,
		settlementService: settlementService,
		ledgerService:     ledgerService,
		autoBetService:    autoBetService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	bets := v1.Group("/bets")
	bets.POST("", h.PlaceBet)
	bets.GET("/:reference", h.GetBet)

	draws := v1.Group("/draws")
	draws.POST("", h.ScheduleDraw)
	draws.GET("/:id", h.GetDraw)
	draws.GET("/:id/bets", h.ListDrawBets)
	draws.POST("/:id/open", h.OpenDraw)
	draws.POST("/:id/close", h.CloseDraw)
	draws.POST("/:id/cancel", h.CancelDraw)
	draws.POST("/:id/result", h.RecordDrawResult)
	draws.POST("/:id/settle", h.SettleDraw)

	wallets := v1.Group("/wallets")
	wallets.GET("/:id", h.GetWallet)
	wallets.GET("/:id/transactions", h.GetTransactions)
	wallets.POST("/:id/deposit", h.Deposit)
	wallets.PUT("/:id/status", h.SetWalletStatus)

	autoBets := v1.Group("/autobets")
	autoBets.POST("", h.CreateAutoBet)
	autoBets.GET("/:id", h.GetAutoBet)
	autoBets.POST("/:id/pause", h.PauseAutoBet)
	autoBets.POST("/:id/resume", h.ResumeAutoBet)
	autoBets.POST("/:id/cancel", h.CancelAutoBet)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		status = http.StatusBadRequest
		code = "INVALID_REQUEST"
	case errors.Is(err, model.ErrInvalidNumbers):
		status = http.StatusBadRequest
		code = "INVALID_NUMBERS"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidStatus):
		status = http.StatusBadRequest
		code = "INVALID_STATUS"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrDrawNotFound):
		status = http.StatusNotFound
		code = "DRAW_NOT_FOUND"
	case errors.Is(err, model.ErrBetNotFound):
		status = http.StatusNotFound
		code = "BET_NOT_FOUND"
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
		code = "WALLET_NOT_FOUND"
	case errors.Is(err, model.ErrAutoBetNotFound):
		status = http.StatusNotFound
		code = "AUTOBET_NOT_FOUND"
	case errors.Is(err, model.ErrDrawNotAcceptingBets):
		status = http.StatusConflict
		code = "DRAW_NOT_ACCEPTING_BETS"
	case errors.Is(err, model.ErrInvalidStateTransition):
		status = http.StatusConflict
		code = "INVALID_STATE_TRANSITION"
	case errors.Is(err, model.ErrConfigExpired):
		status = http.StatusConflict
		code = "CONFIG_EXPIRED"
	case errors.Is(err, model.ErrAutoBetAlreadyExecuted):
		status = http.StatusConflict
		code = "AUTOBET_ALREADY_EXECUTED"
	case errors.Is(err, model.ErrWalletInactive):
		status = http.StatusConflict
		code = "WALLET_INACTIVE"
	case errors.Is(err, model.ErrDuplicateReference):
		status = http.StatusConflict
		code = "DUPLICATE_REFERENCE"
	case errors.Is(err, model.ErrConfigUnavailable):
		status = http.StatusServiceUnavailable
		code = "CONFIG_UNAVAILABLE"
	case errors.Is(err, model.ErrTransient):
		status = http.StatusServiceUnavailable
		code = "TRANSIENT_FAILURE"
		resp.Error = "temporary storage contention"
		resp.Details = "The operation was not applied, retry later"
	}
	resp.Code = code

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Int("status", status).Msg("request failed")
		if status == http.StatusInternalServerError {
			resp.Error = "internal server error"
		}
	}

	c.JSON(status, resp)
}

func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", model.ErrInvalidRequest, name)
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", model.ErrInvalidAmount, s)
	}
	return amount, nil
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: "Invalid request body",
		Code:  "INVALID_REQUEST",
	})
}
