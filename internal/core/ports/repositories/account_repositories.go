package repositories

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for the chart of
// accounts. Balance mutations happen only through the posting transaction
// helpers, never through UpdateAccount.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
	SearchAccountsByName(ctx context.Context, name string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// FindAccountsByIDsForUpdate locks the account rows within tx; used by the
	// posting engine to prevent lost updates under concurrent posting.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	// UpdateAccountBalancesInTx applies the net balance deltas within tx.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}
