package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
)

// BackupService names and writes store snapshots.
type BackupService struct {
	BaseService
	backupRepo portsrepo.BackupWriter
}

var _ portssvc.BackupSvcFacade = (*BackupService)(nil)

func NewBackupService(backupRepo portsrepo.BackupWriter) *BackupService {
	return &BackupService{
		BaseService: newBaseService(),
		backupRepo:  backupRepo,
	}
}

// WriteBackup names the file cashbook-backup-<UTC timestamp>.<ext>.
func (s *BackupService) WriteBackup(ctx context.Context, w io.Writer) (string, error) {
	name := fmt.Sprintf("cashbook-backup-%s.%s", s.now().UTC().Format("20060102-150405"), s.backupRepo.BackupExtension())
	if err := s.backupRepo.WriteBackup(ctx, w); err != nil {
		s.LogError(ctx, err, "Failed to write backup", slog.String("file", name))
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	s.LogInfo(ctx, "Backup written", slog.String("file", name))
	return name, nil
}
