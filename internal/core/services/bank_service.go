package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownMovementType = errors.New("unknown bank movement type")
	ErrMovementReconciled  = errors.New("bank movement is already reconciled")
	ErrBankAccountInactive = errors.New("bank account is inactive")
)

// bankService manages the bank auxiliary ledger: accounts, their movement
// log and the books-versus-statement reconciliation figures.
type bankService struct {
	bankRepo    portsrepo.BankRepositoryFacade
	companyName string
}

// NewBankService creates a new BankService.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade, companyName string) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo, companyName: companyName}
}

// Ensure bankService implements the portssvc.BankSvcFacade interface
var _ portssvc.BankSvcFacade = (*bankService)(nil)

// RegisterBankAccount creates a new bank account. The opening balance seeds
// both the books side and the bank side, so a fresh account reconciles.
func (s *bankService) RegisterBankAccount(ctx context.Context, req dto.RegisterBankAccountRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Name:          req.Name,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountType:   req.AccountType,
		BooksBalance:  req.OpeningBalance,
		BankBalance:   req.OpeningBalance,
		IsActive:      true,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.bankRepo.SaveBankAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, req.AccountNumber)
		}
		logger.Error("Failed to save bank account", slog.String("account_number", req.AccountNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	logger.Info("Bank account registered", slog.String("bank_account_id", account.BankAccountID), slog.String("bank", account.BankName))
	return &account, nil
}

// GetBankAccountByID retrieves a specific bank account.
func (s *bankService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	return s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
}

// ListBankAccounts retrieves all bank accounts.
func (s *bankService) ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error) {
	return s.bankRepo.ListBankAccounts(ctx, activeOnly)
}

// RegisterMovement records a bank movement. The movement type's behavior
// table decides whether the books balance goes up or down; the repository
// applies movement insert and balance change in one transaction.
func (s *bankService) RegisterMovement(ctx context.Context, bankAccountID string, req dto.RegisterBankMovementRequest) (*domain.BankMovement, *domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.MovementType.IsValid() {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownMovementType, req.MovementType)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, fmt.Errorf("%w: %s", ErrBankAccountInactive, bankAccountID)
	}

	now := time.Now().UTC()
	movement := domain.BankMovement{
		MovementID:     uuid.NewString(),
		BankAccountID:  bankAccountID,
		MovementType:   req.MovementType,
		MovementDate:   req.MovementDate,
		Amount:         req.Amount,
		Description:    req.Description,
		DocumentNumber: req.DocumentNumber,
		Beneficiary:    req.Beneficiary,
		Status:         domain.MovementPending,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	updatedAccount, err := s.bankRepo.RegisterMovement(ctx, movement)
	if err != nil {
		logger.Error("Failed to register bank movement", slog.String("bank_account_id", bankAccountID), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to register bank movement: %w", err)
	}

	logger.Info("Bank movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("type", string(movement.MovementType)),
		slog.String("signed_amount", movement.SignedAmount().String()),
	)
	return &movement, updatedAccount, nil
}

// ReconcileMovement marks a movement as seen on the bank statement.
func (s *bankService) ReconcileMovement(ctx context.Context, movementID string, reconciledBy string) (*domain.BankMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	movement, err := s.bankRepo.ReconcileMovement(ctx, movementID, now, reconciledBy, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrMovementReconciled, movementID)
		}
		logger.Error("Failed to reconcile bank movement", slog.String("movement_id", movementID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Bank movement reconciled", slog.String("movement_id", movementID))
	return movement, nil
}

// UpdateStatementBalance records the balance the bank reports, leaving the
// books balance untouched.
func (s *bankService) UpdateStatementBalance(ctx context.Context, bankAccountID string, req dto.UpdateBankStatementBalanceRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.bankRepo.UpdateBankStatementBalance(ctx, bankAccountID, req.BankBalance, req.UpdatedBy, now); err != nil {
		logger.Error("Failed to update statement balance", slog.String("bank_account_id", bankAccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update statement balance: %w", err)
	}

	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	logger.Info("Bank statement balance updated",
		slog.String("bank_account_id", bankAccountID),
		slog.String("difference", account.ReconciliationDifference().String()),
	)
	return account, nil
}

// ListMovements retrieves a bank account's movement log, newest first.
func (s *bankService) ListMovements(ctx context.Context, bankAccountID string, limit, offset int) ([]domain.BankMovement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if _, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}
	return s.bankRepo.FindMovementsByAccount(ctx, bankAccountID, limit, offset)
}

// ListMovementsByDateRange retrieves movements within a period.
func (s *bankService) ListMovementsByDateRange(ctx context.Context, bankAccountID string, from, to time.Time) ([]domain.BankMovement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	if _, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}
	return s.bankRepo.FindMovementsByDateRange(ctx, bankAccountID, from, to)
}

// ListOutstandingChecks retrieves issued checks not yet reconciled, the
// classic reconciliation working paper.
func (s *bankService) ListOutstandingChecks(ctx context.Context, bankAccountID string) ([]domain.BankMovement, error) {
	if _, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}
	return s.bankRepo.FindOutstandingChecks(ctx, bankAccountID)
}

// BankSummary aggregates every bank account with its reconciliation state
// and the most recent movements across accounts.
func (s *bankService) BankSummary(ctx context.Context) (*domain.BankSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.bankRepo.ListBankAccounts(ctx, true)
	if err != nil {
		logger.Error("Failed to list bank accounts for summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	summary := &domain.BankSummary{
		CompanyName:     s.companyName,
		AsOfDate:        time.Now().UTC(),
		Accounts:        accounts,
		TotalBooks:      decimal.Zero,
		TotalBank:       decimal.Zero,
		TotalDifference: decimal.Zero,
	}
	for i := range accounts {
		acc := &accounts[i]
		summary.TotalBooks = summary.TotalBooks.Add(acc.BooksBalance)
		summary.TotalBank = summary.TotalBank.Add(acc.BankBalance)
		summary.TotalDifference = summary.TotalDifference.Add(acc.ReconciliationDifference())
		if acc.IsReconciled() {
			summary.ReconciledCount++
		} else {
			summary.PendingCount++
		}
	}

	recent, err := s.bankRepo.FindRecentMovements(ctx, 10)
	if err != nil {
		logger.Error("Failed to load recent bank movements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load recent movements: %w", err)
	}
	summary.RecentMovements = recent

	return summary, nil
}
