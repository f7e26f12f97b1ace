package handler

import (
	"net/http"
	"numbers-game/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetWallet
// @Summary Get wallet balance
// @Tags wallets
// @Produce json
// @Param id path int true "Wallet ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{id} [get]
func (h *Handler) GetWallet(c *gin.Context) {
	walletID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	wallet, err := h.ledgerService.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse(wallet))
}

// GetTransactions
// @Summary Get wallet transactions
// @Description Returns a paginated list of ledger entries for a wallet, newest first
// @Tags wallets
// @Produce json
// @Param id path int true "Wallet ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /wallets/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	walletID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.ledgerService.GetTransactions(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// Deposit
// @Summary Deposit funds
// @Description Credits a wallet; the reference must be unique across the ledger
// @Tags wallets
// @Accept json
// @Produce json
// @Param id path int true "Wallet ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.LedgerResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount"
// @Failure 409 {object} model.ErrorResponse "Duplicate reference"
// @Router /wallets/{id}/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	walletID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.ledgerService.Credit(c.Request.Context(), model.LedgerRequest{
		WalletID:  walletID,
		Amount:    amount,
		Type:      model.TxDeposit,
		Reference: req.Reference,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.LedgerResponse{
		Balance:     result.Balance.StringFixed(2),
		Transaction: result.Transaction,
	})
}

// SetWalletStatus
// @Summary Activate or suspend a wallet
// @Tags wallets
// @Accept json
// @Produce json
// @Param id path int true "Wallet ID"
// @Param status body model.WalletStatusRequest true "New status"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{id}/status [put]
func (h *Handler) SetWalletStatus(c *gin.Context) {
	walletID, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.WalletStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	status, err := model.ParseWalletStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	wallet, err := h.ledgerService.SetWalletStatus(c.Request.Context(), walletID, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse(wallet))
}

func balanceResponse(wallet *model.Wallet) model.BalanceResponse {
	return model.BalanceResponse{
		WalletID: wallet.ID,
		UserID:   wallet.UserID,
		Balance:  wallet.Balance.StringFixed(2),
		Currency: wallet.Currency,
		Status:   wallet.Status.String(),
	}
}
