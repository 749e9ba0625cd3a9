package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SscSPs/cash_book_app/internal/core/services"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func newBackupCommand() *cobra.Command {
	var output, dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a snapshot of the store to a file",
		Long: `Write a snapshot of the store. SQLite backends produce a database file that
can replace SQLITE_DB_PATH; Postgres backends produce a psql script to run
against a freshly migrated database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			slog.SetDefault(logger)

			repos, closeStore, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer closeStore()

			if output == "-" {
				_, err := services.NewBackupService(repos.BackupRepo).WriteBackup(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			target := output
			if target == "" {
				target = filepath.Join(dir, ".cashbook-backup.partial")
			}
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			name, err := services.NewBackupService(repos.BackupRepo).WriteBackup(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				os.Remove(target)
				return err
			}

			if output == "" {
				final := filepath.Join(dir, name)
				if err := os.Rename(target, final); err != nil {
					return fmt.Errorf("name backup file: %w", err)
				}
				target = final
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `file to write; "-" writes to stdout`)
	cmd.Flags().StringVar(&dir, "dir", ".", "directory for the timestamped backup when --output is empty")
	return cmd
}
