package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// roznamchaHandler serves the day book.
type roznamchaHandler struct {
	roznamchaService portssvc.RoznamchaSvcFacade
}

func registerRoznamchaRoutes(rg *gin.RouterGroup, rs portssvc.RoznamchaSvcFacade) {
	h := &roznamchaHandler{roznamchaService: rs}
	read := middleware.RequireRight(domain.RightGetRoznamchas)
	manage := middleware.RequireRight(domain.RightManageRoznamchas)

	entries := rg.Group("/roznamcha")
	{
		entries.POST("", manage, h.createEntry)
		entries.GET("", read, h.listEntries)
		entries.GET("/:id", read, h.getEntry)
		entries.PATCH("/:id", manage, h.updateEntry)
		entries.DELETE("/:id", manage, h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a day book entry
// @Tags roznamcha
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateRoznamchaRequest true "Entry details"
// @Success 201 {object} dto.RoznamchaResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /roznamcha [post]
func (h *roznamchaHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoznamchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	creatorID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.roznamchaService.CreateRoznamcha(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create roznamcha entry")
		return
	}
	logger.Info("Roznamcha entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToRoznamchaResponse(entry))
}

// listEntries godoc
// @Summary List day book entries
// @Description Newest first. date restricts the list to one calendar day.
// @Tags roznamcha
// @Produce  json
// @Param   date query string false "Day (YYYY-MM-DD)"
// @Param   description query string false "Case-insensitive description match"
// @Param   transactionType query string false "cashReceived or expenseVoucher"
// @Param   status query string false "pending or completed"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRoznamchaResponse
// @Security BearerAuth
// @Router /roznamcha [get]
func (h *roznamchaHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRoznamchaParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	resp, err := h.roznamchaService.ListRoznamcha(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list roznamcha entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a day book entry
// @Tags roznamcha
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.RoznamchaResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /roznamcha/{id} [get]
func (h *roznamchaHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.roznamchaService.GetRoznamchaByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve roznamcha entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoznamchaResponse(entry))
}

// updateEntry godoc
// @Summary Update a day book entry
// @Tags roznamcha
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateRoznamchaRequest true "Fields to update"
// @Success 200 {object} dto.RoznamchaResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /roznamcha/{id} [patch]
func (h *roznamchaHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRoznamchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	entry, err := h.roznamchaService.UpdateRoznamcha(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update roznamcha entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoznamchaResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a day book entry
// @Tags roznamcha
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /roznamcha/{id} [delete]
func (h *roznamchaHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	if err := h.roznamchaService.DeleteRoznamcha(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete roznamcha entry")
		return
	}
	c.Status(http.StatusNoContent)
}
