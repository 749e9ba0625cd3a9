package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/middleware"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to party transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
	analytics  *utils.PosthogClientWrapper
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, analytics *utils.PosthogClientWrapper) *transactionHandler {
	return &transactionHandler{txnService: ts, analytics: analytics}
}

func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newTransactionHandler(txnService, analytics)
	read := middleware.RequireRight(domain.RightGetTransactions)
	manage := middleware.RequireRight(domain.RightManageTransactions)

	txns := rg.Group("/transactions")
	{
		txns.POST("", manage, h.createTransaction)
		txns.GET("", read, h.listTransactions)
		txns.GET("/:id", read, h.getTransaction)
		txns.PATCH("/:id", manage, h.updateTransaction)
		txns.DELETE("/:id", manage, h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records cash received from (debit) or paid to (credit) a party. Debit and credit are derived from type and amount.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	creatorID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	middleware.PosthogEvent(c, h.analytics, utils.EventTransactionCreated, map[string]any{
		"transaction_type": string(txn.TransactionType),
	})
	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first. Dates are YYYY-MM-DD; endDate includes the whole day.
// @Tags transactions
// @Produce  json
// @Param   accountId query string false "Party ID"
// @Param   transactionType query string false "cashReceived or expenseVoucher"
// @Param   status query string false "pending or completed"
// @Param   transactionId query string false "External transaction reference"
// @Param   startDate query string false "First day (inclusive)"
// @Param   endDate query string false "Last day (inclusive)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter or date range"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	resp, err := h.txnService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Partial update. Changing type or amount re-derives debit and credit.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Transaction or account not found"
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	if err := h.txnService.DeleteTransaction(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
