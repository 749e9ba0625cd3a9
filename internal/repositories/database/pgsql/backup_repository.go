package pgsql

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// backupTables is in foreign key order so the dump restores top to bottom.
var backupTables = []string{"users", "parties", "transactions", "roznamcha"}

// PgxBackupRepository dumps every table as a psql script of COPY blocks.
type PgxBackupRepository struct {
	BaseRepository
}

var _ portsrepo.BackupWriter = (*PgxBackupRepository)(nil)

func newPgxBackupRepository(pool *pgxpool.Pool) *PgxBackupRepository {
	return &PgxBackupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxBackupRepository) BackupExtension() string {
	return "sql"
}

// WriteBackup streams the tables from a single read-only snapshot. Restore the
// output with `psql -f` into a migrated, empty database.
func (r *PgxBackupRepository) WriteBackup(ctx context.Context, w io.Writer) error {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return apperrors.StoreFailure("begin backup snapshot", err)
	}
	defer r.Rollback(ctx, tx)

	if _, err := fmt.Fprintf(w, "-- cashbook backup %s\nBEGIN;\n", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write backup header: %w", err)
	}
	for _, table := range backupTables {
		if _, err := fmt.Fprintf(w, "\nCOPY %s FROM stdin WITH (FORMAT csv, HEADER true);\n", table); err != nil {
			return fmt.Errorf("write %s header: %w", table, err)
		}
		copySQL := fmt.Sprintf("COPY %s TO STDOUT WITH (FORMAT csv, HEADER true)", table)
		if _, err := tx.Conn().PgConn().CopyTo(ctx, w, copySQL); err != nil {
			return apperrors.StoreFailure("copy "+table, err)
		}
		if _, err := io.WriteString(w, "\\.\n"); err != nil {
			return fmt.Errorf("write %s terminator: %w", table, err)
		}
	}
	if _, err := io.WriteString(w, "\nCOMMIT;\n"); err != nil {
		return fmt.Errorf("write backup footer: %w", err)
	}
	return nil
}
