package commands

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cash_book_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/cash_book_app/pkg/database"
)

// openStore migrates and connects the configured backend. The returned func
// releases the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite database opened", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() { db.Close() }, nil

	case config.BackendPostgres:
		changed, err := pgsql.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logMigrationResult(logger, changed)

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
}

// runMigrations applies pending migrations without opening the application store.
func runMigrations(cfg *config.Config) (bool, error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		return sqlite.RunMigrations(cfg.SQLitePath)
	case config.BackendPostgres:
		return pgsql.RunMigrations(cfg.DatabaseURL)
	}
	return false, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
}

func logMigrationResult(logger *slog.Logger, changed bool) {
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
}
