package handlers

import (
	"log/slog"
	"os"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/middleware"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// backupHandler serves store snapshots.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
	analytics     *utils.PosthogClientWrapper
}

func newBackupHandler(bs portssvc.BackupSvcFacade, analytics *utils.PosthogClientWrapper) *backupHandler {
	return &backupHandler{
		backupService: bs,
		analytics:     analytics,
	}
}

// registerBackupRoutes registers the backup download. Admin only.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newBackupHandler(backupService, analytics)

	backup := rg.Group("/backup", middleware.RequireRight(domain.RightDownloadBackup))
	{
		backup.GET("/download", h.downloadBackup)
	}
}

// downloadBackup godoc
// @Summary Download a snapshot of the store
// @Description SQLite backends return the database file, Postgres backends a psql script of COPY blocks.
// @Tags backup
// @Produce  octet-stream
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /backup/download [get]
func (h *backupHandler) downloadBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	f, err := os.CreateTemp("", "cashbook-backup-*")
	if err != nil {
		respondError(c, logger, err, "Failed to prepare backup")
		return
	}
	defer os.Remove(f.Name())

	name, err := h.backupService.WriteBackup(c.Request.Context(), f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		respondError(c, logger, err, "Failed to create backup")
		return
	}

	logger.Info("Backup prepared for download", slog.String("file", name))
	middleware.PosthogEvent(c, h.analytics, utils.EventBackupDownloaded, map[string]any{"file": name})
	c.FileAttachment(f.Name(), name)
}
