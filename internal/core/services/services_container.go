package services

import (
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc := cfg.Location()

	container := &portssvc.ServiceContainer{}
	container.Party = NewPartyService(repos.PartyRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.PartyRepo, loc)
	container.Ledger = NewLedgerService(
		repos.PartyRepo,
		repos.TransactionRepo,
		WithLocation(loc),
		WithExcludedPartyNames(cfg.ExcludedPartyNames...),
		WithDefaultOrder(cfg.DayLedgerOrder),
	)
	container.Roznamcha = NewRoznamchaService(repos.RoznamchaRepo, loc)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Backup = NewBackupService(repos.BackupRepo)
	container.HealthCheck = repos.Ping

	return container
}
