package sqlite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
)

// BackupRepository snapshots the live database with VACUUM INTO.
type BackupRepository struct {
	BaseRepository
}

var _ portsrepo.BackupWriter = (*BackupRepository)(nil)

func (r *BackupRepository) BackupExtension() string {
	return "db"
}

// WriteBackup copies a vacuumed snapshot of the database file to w.
// The snapshot is a standalone SQLite file that can replace SQLITE_DB_PATH.
func (r *BackupRepository) WriteBackup(ctx context.Context, w io.Writer) error {
	dir, err := os.MkdirTemp("", "cashbook-snapshot-")
	if err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	defer os.RemoveAll(dir)

	// VACUUM INTO refuses to overwrite, so the target must not exist yet.
	snapshot := filepath.Join(dir, "snapshot.db")
	if _, err := r.DB.ExecContext(ctx, `VACUUM INTO ?`, snapshot); err != nil {
		return apperrors.StoreFailure("snapshot database", err)
	}

	f, err := os.Open(snapshot)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copy snapshot: %w", err)
	}
	return nil
}
