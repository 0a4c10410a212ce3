package repositories

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankRepositoryFacade defines persistence operations for bank accounts and
// their movement log.
type BankRepositoryFacade interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	// UpdateBankStatementBalance records the externally supplied bank-side
	// balance used for reconciliation. It never touches the books balance.
	UpdateBankStatementBalance(ctx context.Context, bankAccountID string, bankBalance decimal.Decimal, userID string, now time.Time) error

	// RegisterMovement inserts the movement and applies its signed effect to
	// the account's books balance in one transaction, returning the updated
	// account.
	RegisterMovement(ctx context.Context, movement domain.BankMovement) (*domain.BankAccount, error)
	ReconcileMovement(ctx context.Context, movementID string, reconciledAt time.Time, userID string, now time.Time) (*domain.BankMovement, error)

	FindMovementsByAccount(ctx context.Context, bankAccountID string, limit, offset int) ([]domain.BankMovement, error)
	FindMovementsByDateRange(ctx context.Context, bankAccountID string, from, to time.Time) ([]domain.BankMovement, error)
	// FindOutstandingChecks returns issued checks still pending
	// reconciliation, oldest first.
	FindOutstandingChecks(ctx context.Context, bankAccountID string) ([]domain.BankMovement, error)
	FindRecentMovements(ctx context.Context, limit int) ([]domain.BankMovement, error)
}
