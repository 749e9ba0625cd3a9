package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the database at dbPath and applies migrations.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	if _, err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewRepositoryProvider wires every repository to db.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		PartyRepo:       &PartyRepository{BaseRepository: base},
		TransactionRepo: &TransactionRepository{BaseRepository: base},
		RoznamchaRepo:   &RoznamchaRepository{BaseRepository: base},
		UserRepo:        &UserRepository{BaseRepository: base},
		BackupRepo:      &BackupRepository{BaseRepository: base},
		Ping:            base.Ping,
	}
}
