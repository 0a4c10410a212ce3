package pgsql

import (
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		JournalRepo:   newPgxJournalRepository(dbPool, accountRepo),
		BankRepo:      newPgxBankRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		PartyRepo:     newPgxPartyRepository(dbPool),
	}
}
