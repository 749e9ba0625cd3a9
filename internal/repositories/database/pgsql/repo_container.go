package pgsql

import (
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}
	return portsrepo.RepositoryProvider{
		PartyRepo:       newPgxPartyRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		RoznamchaRepo:   newPgxRoznamchaRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		BackupRepo:      newPgxBackupRepository(dbPool),
		Ping:            base.Ping,
	}
}
