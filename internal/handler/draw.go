package handler

import (
	"context"
	"fmt"
	"net/http"
	"numbers-game/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

// ScheduleDraw
// @Summary Schedule a draw
// @Tags draws
// @Accept json
// @Produce json
// @Param draw body model.ScheduleDrawRequest true "Draw schedule"
// @Success 201 {object} model.Draw
// @Failure 400 {object} model.ErrorResponse "Validation error"
// @Router /draws [post]
func (h *Handler) ScheduleDraw(c *gin.Context) {
	var req model.ScheduleDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	drawDate, err := time.Parse(time.DateOnly, req.DrawDate)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: draw_date must be YYYY-MM-DD", model.ErrInvalidRequest))
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: scheduled_at must be RFC 3339", model.ErrInvalidRequest))
		return
	}

	draw, err := h.drawService.ScheduleDraw(c.Request.Context(), model.ScheduleDrawInput{
		ScheduleID:    req.ScheduleID,
		DrawType:      model.DrawType(req.DrawType),
		DrawDate:      drawDate,
		ScheduledAt:   scheduledAt,
		CutoffMinutes: req.CutoffMinutes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, draw)
}

// GetDraw
// @Summary Get a draw
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {object} model.Draw
// @Failure 404 {object} model.ErrorResponse "Draw not found"
// @Router /draws/{id} [get]
func (h *Handler) GetDraw(c *gin.Context) {
	h.drawAction(c, h.drawService.GetDraw)
}

// ListDrawBets
// @Summary List bets of a draw
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {array} model.Bet
// @Failure 404 {object} model.ErrorResponse "Draw not found"
// @Router /draws/{id}/bets [get]
func (h *Handler) ListDrawBets(c *gin.Context) {
	drawID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	bets, err := h.drawService.ListDrawBets(c.Request.Context(), drawID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if bets == nil {
		bets = []*model.Bet{}
	}

	c.JSON(http.StatusOK, bets)
}

// OpenDraw
// @Summary Open a scheduled draw for betting
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {object} model.Draw
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /draws/{id}/open [post]
func (h *Handler) OpenDraw(c *gin.Context) {
	h.drawAction(c, h.drawService.OpenDraw)
}

// CloseDraw
// @Summary Stop accepting bets on a draw
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {object} model.Draw
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /draws/{id}/close [post]
func (h *Handler) CloseDraw(c *gin.Context) {
	h.drawAction(c, h.drawService.CloseDraw)
}

// CancelDraw
// @Summary Cancel a draw and refund its pending bets
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {object} model.Draw
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /draws/{id}/cancel [post]
func (h *Handler) CancelDraw(c *gin.Context) {
	h.drawAction(c, h.drawService.CancelDraw)
}

// RecordDrawResult
// @Summary Record the drawn numbers
// @Description Resolves every bet of a CLOSED draw, pays winners and settles commissions
// @Tags draws
// @Accept json
// @Produce json
// @Param id path int true "Draw ID"
// @Param result body model.DrawResultRequest true "Drawn numbers"
// @Success 200 {object} model.Draw
// @Failure 400 {object} model.ErrorResponse "Invalid numbers"
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /draws/{id}/result [post]
func (h *Handler) RecordDrawResult(c *gin.Context) {
	drawID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.DrawResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	draw, err := h.settlementService.RecordDrawResult(c.Request.Context(), drawID, req.Number1, req.Number2)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, draw)
}

// SettleDraw
// @Summary Settle a drawn draw
// @Description Distributes commissions and marks the draw SETTLED; repeat calls return the same outcome
// @Tags draws
// @Produce json
// @Param id path int true "Draw ID"
// @Success 200 {object} model.SettlementResult
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /draws/{id}/settle [post]
func (h *Handler) SettleDraw(c *gin.Context) {
	drawID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.settlementService.SettleDraw(c.Request.Context(), drawID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) drawAction(c *gin.Context, action func(ctx context.Context, drawID int64) (*model.Draw, error)) {
	drawID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	draw, err := action(c.Request.Context(), drawID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, draw)
}
