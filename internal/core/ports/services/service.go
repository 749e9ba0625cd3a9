package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Party       PartySvcFacade
	Transaction TransactionSvcFacade
	Ledger      LedgerSvcFacade
	Roznamcha   RoznamchaSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	Backup      BackupSvcFacade

	// HealthCheck pings the store; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}
