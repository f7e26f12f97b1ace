package handler

import (
	"net/http"
	"numbers-game/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceBet
// @Summary Place a bet
// @Description Debits the bettor wallet and records a PENDING bet against an OPEN draw
// @Tags bets
// @Accept json
// @Produce json
// @Param bet body model.PlaceBetRequest true "Bet details"
// @Success 201 {object} model.Bet
// @Failure 400 {object} model.ErrorResponse "Validation error or insufficient funds"
// @Failure 404 {object} model.ErrorResponse "Draw or wallet not found"
// @Failure 409 {object} model.ErrorResponse "Draw not accepting bets"
// @Failure 503 {object} model.ErrorResponse "Temporary failure, retry"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bet, err := h.betService.PlaceBet(c.Request.Context(), model.PlaceBetInput{
		DrawID:     req.DrawID,
		BettorID:   req.BettorID,
		CobradorID: req.CobradorID,
		CaboID:     req.CaboID,
		Number1:    req.Number1,
		Number2:    req.Number2,
		Amount:     amount,
		Currency:   req.Currency,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bet)
}

// GetBet
// @Summary Get a bet
// @Tags bets
// @Produce json
// @Param reference path string true "Bet reference"
// @Success 200 {object} model.Bet
// @Failure 404 {object} model.ErrorResponse "Bet not found"
// @Router /bets/{reference} [get]
func (h *Handler) GetBet(c *gin.Context) {
	bet, err := h.betService.GetBet(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bet)
}
