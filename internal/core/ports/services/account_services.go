package services

import (
	"context"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves a specific account by its catalog code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts, optionally active only.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)

	// ListAccountsByType retrieves all accounts of a given type.
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)

	// SearchAccounts retrieves accounts whose name matches the query.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// RegisterAccount persists a new account in the catalog.
	RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)

	// UpdateAccount updates account details (excluding the balance).
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updatedBy string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, requestedBy string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
