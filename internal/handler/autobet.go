package handler

import (
	"context"
	"fmt"
	"net/http"
	"numbers-game/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateAutoBet
// @Summary Create an auto-bet
// @Description Registers a standing instruction that bets on every open draw for a number of days
// @Tags autobets
// @Accept json
// @Produce json
// @Param autobet body model.CreateAutoBetRequest true "Auto-bet details"
// @Success 201 {object} model.AutoBetConfig
// @Failure 400 {object} model.ErrorResponse "Validation error"
// @Router /autobets [post]
func (h *Handler) CreateAutoBet(c *gin.Context) {
	var req model.CreateAutoBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	amount, err := parseAmount(req.AmountPerBet)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var start time.Time
	if req.StartDate != "" {
		if start, err = time.Parse(time.DateOnly, req.StartDate); err != nil {
			h.handleError(c, fmt.Errorf("%w: start_date must be YYYY-MM-DD", model.ErrInvalidRequest))
			return
		}
	}

	autoBet, err := h.autoBetService.CreateAutoBet(c.Request.Context(), model.CreateAutoBetInput{
		UserID:       req.UserID,
		CobradorID:   req.CobradorID,
		CaboID:       req.CaboID,
		Number1:      req.Number1,
		Number2:      req.Number2,
		AmountPerBet: amount,
		Currency:     req.Currency,
		DurationDays: req.DurationDays,
		StartDate:    start,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, autoBet)
}

// GetAutoBet
// @Summary Get an auto-bet
// @Tags autobets
// @Produce json
// @Param id path int true "Auto-bet ID"
// @Success 200 {object} model.AutoBetConfig
// @Failure 404 {object} model.ErrorResponse "Auto-bet not found"
// @Router /autobets/{id} [get]
func (h *Handler) GetAutoBet(c *gin.Context) {
	h.autoBetAction(c, h.autoBetService.GetAutoBet)
}

// PauseAutoBet
// @Summary Pause an active auto-bet
// @Tags autobets
// @Produce json
// @Param id path int true "Auto-bet ID"
// @Success 200 {object} model.AutoBetConfig
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /autobets/{id}/pause [post]
func (h *Handler) PauseAutoBet(c *gin.Context) {
	h.autoBetAction(c, h.autoBetService.PauseAutoBet)
}

// ResumeAutoBet
// @Summary Resume a paused auto-bet
// @Tags autobets
// @Produce json
// @Param id path int true "Auto-bet ID"
// @Success 200 {object} model.AutoBetConfig
// @Failure 409 {object} model.ErrorResponse "Expired or invalid state transition"
// @Router /autobets/{id}/resume [post]
func (h *Handler) ResumeAutoBet(c *gin.Context) {
	h.autoBetAction(c, h.autoBetService.ResumeAutoBet)
}

// CancelAutoBet
// @Summary Cancel an auto-bet
// @Tags autobets
// @Produce json
// @Param id path int true "Auto-bet ID"
// @Success 200 {object} model.AutoBetConfig
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /autobets/{id}/cancel [post]
func (h *Handler) CancelAutoBet(c *gin.Context) {
	h.autoBetAction(c, h.autoBetService.CancelAutoBet)
}

func (h *Handler) autoBetAction(c *gin.Context, action func(ctx context.Context, id int64) (*model.AutoBetConfig, error)) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	autoBet, err := action(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, autoBet)
}
