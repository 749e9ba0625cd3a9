package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PartyRepo       PartyRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	RoznamchaRepo   RoznamchaRepositoryFacade
	UserRepo        UserRepositoryFacade
	BackupRepo      BackupWriter

	// Ping checks the backing store is reachable. Nil when the backend has no health check.
	Ping func(ctx context.Context) error
}
