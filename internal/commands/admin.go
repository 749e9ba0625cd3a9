package commands

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/utils"
)

// seedAdmin makes sure the configured admin account exists. Without
// ADMIN_PASSWORD a random password is generated and logged once.
func seedAdmin(ctx context.Context, cfg *config.Config, users portssvc.UserSvcFacade, logger *slog.Logger) error {
	password := cfg.AdminPassword
	generated := false
	if password == "" {
		p, err := utils.GenerateSecureRandomString(12)
		if err != nil {
			return fmt.Errorf("generate admin password: %w", err)
		}
		password, generated = p, true
	}

	user, created, err := users.EnsureAdminUser(ctx, cfg.AdminUsername, password)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if !created {
		return nil
	}

	attrs := []any{slog.String("username", user.Username), slog.String("user_id", user.UserID)}
	if generated {
		attrs = append(attrs, slog.String("password", password))
		logger.Warn("Admin user created with a generated password; set ADMIN_PASSWORD to choose one", attrs...)
	} else {
		logger.Info("Admin user created", attrs...)
	}
	return nil
}
