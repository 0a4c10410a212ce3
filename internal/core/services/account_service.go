package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/SergioDaniel16/mipymes/internal/utils/accounting"
)

var (
	ErrNatureTypeMismatch = errors.New("account nature does not match the conventional nature for its type")
	ErrAccountNameMissing = errors.New("account name is required")
	ErrUnknownAccountType = errors.New("unknown account type")
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// RegisterAccount creates a new account in the catalog after validating the
// code is free and the nature matches the account type convention.
func (s *accountService) RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountNameMissing)
	}

	expectedNature, err := accounting.NatureForType(req.AccountType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownAccountType)
	}
	if req.Nature != expectedNature {
		return nil, fmt.Errorf("%w: %s expects %s", ErrNatureTypeMismatch, req.AccountType, expectedNature)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check account code uniqueness", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Nature:      req.Nature,
		Balance:     req.OpeningBalance,
		IsActive:    true,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves a specific account by its catalog code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, activeOnly)
}

// ListAccountsByType retrieves all accounts of the given type.
func (s *accountService) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	if _, err := accounting.NatureForType(accountType); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownAccountType)
	}
	return s.accountRepo.ListAccountsByType(ctx, accountType)
}

// SearchAccounts retrieves accounts whose name contains the query.
func (s *accountService) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	return s.accountRepo.SearchAccountsByName(ctx, query)
}

// UpdateAccount updates account details. The balance is never touched here;
// it only moves through the posting engine.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updatedBy string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountNameMissing)
		}
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Nature != nil {
		account.Nature = *req.Nature
	}
	if req.Description != nil {
		account.Description = *req.Description
	}

	// Type and nature must stay consistent after any change to either.
	expectedNature, err := accounting.NatureForType(account.AccountType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownAccountType)
	}
	if account.Nature != expectedNature {
		return nil, fmt.Errorf("%w: %s expects %s", ErrNatureTypeMismatch, account.AccountType, expectedNature)
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = updatedBy

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// DeactivateAccount marks an account as inactive. Accounts are never deleted
// so posted history stays intact.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, requestedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, requestedBy, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
