package services

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// BankReaderSvc defines read operations for the bank auxiliary ledger
type BankReaderSvc interface {
	// GetBankAccountByID retrieves a specific bank account.
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all bank accounts.
	ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error)

	// ListMovements retrieves the movements of a bank account.
	ListMovements(ctx context.Context, bankAccountID string, limit, offset int) ([]domain.BankMovement, error)

	// ListMovementsByDateRange retrieves movements within a period.
	ListMovementsByDateRange(ctx context.Context, bankAccountID string, from, to time.Time) ([]domain.BankMovement, error)

	// ListOutstandingChecks retrieves issued checks not yet reconciled.
	ListOutstandingChecks(ctx context.Context, bankAccountID string) ([]domain.BankMovement, error)

	// BankSummary aggregates balances across all bank accounts.
	BankSummary(ctx context.Context) (*domain.BankSummary, error)
}

// BankWriterSvc defines write operations for the bank auxiliary ledger
type BankWriterSvc interface {
	// RegisterBankAccount persists a new bank account.
	RegisterBankAccount(ctx context.Context, req dto.RegisterBankAccountRequest) (*domain.BankAccount, error)

	// RegisterMovement records a movement and adjusts the books balance
	// according to the movement type's effect.
	RegisterMovement(ctx context.Context, bankAccountID string, req dto.RegisterBankMovementRequest) (*domain.BankMovement, *domain.BankAccount, error)

	// ReconcileMovement marks a movement as seen on the bank statement.
	ReconcileMovement(ctx context.Context, movementID string, reconciledBy string) (*domain.BankMovement, error)

	// UpdateStatementBalance sets the balance reported by the bank.
	UpdateStatementBalance(ctx context.Context, bankAccountID string, req dto.UpdateBankStatementBalanceRequest) (*domain.BankAccount, error)
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
}
