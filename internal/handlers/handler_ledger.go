package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/middleware"
	"github.com/SscSPs/cash_book_app/internal/report"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/SscSPs/cash_book_app/internal/utils/accounting"
	"github.com/SscSPs/cash_book_app/internal/utils/format"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the computed views: cash book, party summary and party ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	analytics     *utils.PosthogClientWrapper
	now           func() time.Time
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, analytics *utils.PosthogClientWrapper) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, analytics: analytics, now: time.Now}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newLedgerHandler(ledgerService, analytics)

	ledger := rg.Group("/ledger", middleware.RequireRight(domain.RightGetLedger))
	{
		ledger.GET("/cashbook", h.getDayLedger)
		ledger.GET("/party-detail", h.getPartyDetail)
		ledger.GET("/party-ledger", h.getAccountLedger)
		ledger.GET("/party-ledger/export", h.exportAccountLedger)
		ledger.GET("/previous-balance", h.getPreviousBalance)
	}
}

// getDayLedger godoc
// @Summary Get the cash book of one day
// @Description Opening balance, received and paid tables with running balances and the closing balance.
// @Tags ledger
// @Produce  json
// @Param   date query string false "Day (YYYY-MM-DD), defaults to today"
// @Param   order query string false "received-first or chronological"
// @Success 200 {object} dto.DayLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid date or order"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /ledger/cashbook [get]
func (h *ledgerHandler) getDayLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DayLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	date := h.now()
	if params.Date != "" {
		parsed, err := accounting.ParseDay(params.Date, h.ledgerService.Location())
		if err != nil {
			respondError(c, logger, err, "Invalid date")
			return
		}
		date = parsed
	}
	order := h.ledgerService.DefaultOrder()
	if params.Order != "" {
		order = domain.AccumulationOrder(params.Order)
	}

	ledger, err := h.ledgerService.GetDayLedger(c.Request.Context(), date, order)
	if err != nil {
		respondError(c, logger, err, "Failed to build cash book")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayLedgerResponse(ledger))
}

// getPartyDetail godoc
// @Summary Get every party's balance
// @Description Positive balances are payable, negative balances are receivable.
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.PartyDetailResponse
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /ledger/party-detail [get]
func (h *ledgerHandler) getPartyDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, rows, err := h.ledgerService.GetPartySummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to summarize parties")
		return
	}
	if rows == nil {
		rows = []domain.PartyBalanceRow{}
	}
	c.JSON(http.StatusOK, dto.PartyDetailResponse{Parties: rows, Summary: *summary})
}

func (h *ledgerHandler) bindAccountLedger(c *gin.Context, logger *slog.Logger, params dto.AccountLedgerParams) (*domain.AccountLedger, bool) {
	loc := h.ledgerService.Location()
	start, err := accounting.ParseDay(params.StartDate, loc)
	if err != nil {
		respondError(c, logger, err, "Invalid start date")
		return nil, false
	}
	end, err := accounting.ParseDay(params.EndDate, loc)
	if err != nil {
		respondError(c, logger, err, "Invalid end date")
		return nil, false
	}

	ledger, err := h.ledgerService.GetAccountLedger(c.Request.Context(), params.AccountID, start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to build party ledger")
		return nil, false
	}
	return ledger, true
}

// getAccountLedger godoc
// @Summary Get a party ledger
// @Description Transactions of one party between two days inclusive, with the opening balance and running balances.
// @Tags ledger
// @Produce  json
// @Param   accountId query string true "Party ID"
// @Param   startDate query string true "First day (YYYY-MM-DD)"
// @Param   endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /ledger/party-ledger [get]
func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AccountLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	ledger, ok := h.bindAccountLedger(c, logger, params)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}

// exportAccountLedger godoc
// @Summary Download a party ledger
// @Tags ledger
// @Produce  text/csv
// @Produce  text/markdown
// @Produce  text/html
// @Param   accountId query string true "Party ID"
// @Param   startDate query string true "First day (YYYY-MM-DD)"
// @Param   endDate query string true "Last day (YYYY-MM-DD)"
// @Param   format query string false "csv, md or html" default(csv)
// @Param   lang query string false "en or ur" default(en)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /ledger/party-ledger/export [get]
func (h *ledgerHandler) exportAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExportLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	lang, err := format.ParseLang(params.Lang)
	if err != nil {
		badRequest(c, logger, "Invalid language", err)
		return
	}
	ledger, ok := h.bindAccountLedger(c, logger, params.AccountLedgerParams)
	if !ok {
		return
	}

	opts := report.Options{Lang: lang, Location: h.ledgerService.Location()}
	base := fmt.Sprintf("ledger-%s-%s-%s", ledger.Party.Name,
		ledger.StartDate.Format(time.DateOnly), ledger.EndDate.Format(time.DateOnly))

	var (
		body        []byte
		contentType string
		ext         string
	)
	switch params.Format {
	case "md":
		body = []byte(report.AccountLedgerMarkdown(ledger, opts))
		contentType, ext = "text/markdown; charset=utf-8", "md"
	case "html":
		body, err = report.MarkdownToHTML(report.AccountLedgerMarkdown(ledger, opts), base, lang)
		contentType, ext = "text/html; charset=utf-8", "html"
	default:
		var buf bytes.Buffer
		err = report.WriteAccountLedgerCSV(&buf, ledger, opts)
		body = buf.Bytes()
		contentType, ext = "text/csv; charset=utf-8", "csv"
	}
	if err != nil {
		respondError(c, logger, err, "Failed to render ledger")
		return
	}

	middleware.PosthogEvent(c, h.analytics, utils.EventLedgerExported, map[string]any{
		"format": ext,
		"lang":   string(lang),
	})
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"."+ext))
	c.Data(http.StatusOK, contentType, body)
}

// getPreviousBalance godoc
// @Summary Get the opening balance at a day
// @Description Net of all transactions before the start of cutoff's day. Omit accountId for the whole cash book.
// @Tags ledger
// @Produce  json
// @Param   accountId query string false "Party ID"
// @Param   cutoff query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.PreviousBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid cutoff"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /ledger/previous-balance [get]
func (h *ledgerHandler) getPreviousBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PreviousBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	cutoff, err := accounting.ParseDay(params.Cutoff, h.ledgerService.Location())
	if err != nil {
		respondError(c, logger, err, "Invalid cutoff")
		return
	}

	var accountID *string
	if params.AccountID != "" {
		accountID = &params.AccountID
	}
	balance, err := h.ledgerService.ComputePreviousBalance(c.Request.Context(), accountID, cutoff)
	if err != nil {
		respondError(c, logger, err, "Failed to compute previous balance")
		return
	}
	c.JSON(http.StatusOK, dto.PreviousBalanceResponse{
		AccountID:       accountID,
		Cutoff:          cutoff,
		PreviousBalance: balance,
	})
}
