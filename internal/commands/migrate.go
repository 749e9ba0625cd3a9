package commands

import (
	"fmt"

	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			changed, err := runMigrations(cfg)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", cfg.DataBackend, err)
			}
			logMigrationResult(logger, changed)
			return nil
		},
	}
}
