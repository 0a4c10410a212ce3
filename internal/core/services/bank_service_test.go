package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/core/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// MockBankRepository is a mock type for the BankRepositoryFacade interface
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankRepository) ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankRepository) UpdateBankStatementBalance(ctx context.Context, bankAccountID string, bankBalance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, bankAccountID, bankBalance, userID, now)
	return args.Error(0)
}

func (m *MockBankRepository) RegisterMovement(ctx context.Context, movement domain.BankMovement) (*domain.BankAccount, error) {
	args := m.Called(ctx, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankRepository) ReconcileMovement(ctx context.Context, movementID string, reconciledAt time.Time, userID string, now time.Time) (*domain.BankMovement, error) {
	args := m.Called(ctx, movementID, reconciledAt, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankMovement), args.Error(1)
}

func (m *MockBankRepository) FindMovementsByAccount(ctx context.Context, bankAccountID string, limit, offset int) ([]domain.BankMovement, error) {
	args := m.Called(ctx, bankAccountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMovement), args.Error(1)
}

func (m *MockBankRepository) FindMovementsByDateRange(ctx context.Context, bankAccountID string, from, to time.Time) ([]domain.BankMovement, error) {
	args := m.Called(ctx, bankAccountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMovement), args.Error(1)
}

func (m *MockBankRepository) FindOutstandingChecks(ctx context.Context, bankAccountID string) ([]domain.BankMovement, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMovement), args.Error(1)
}

func (m *MockBankRepository) FindRecentMovements(ctx context.Context, limit int) ([]domain.BankMovement, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMovement), args.Error(1)
}

// --- Test Suite Setup ---

type BankServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBankRepository
	service  portssvc.BankSvcFacade
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBankRepository)
	suite.service = services.NewBankService(suite.mockRepo, "Almacén El Planeador")
}

func activeBankAccount(id string) *domain.BankAccount {
	return &domain.BankAccount{
		BankAccountID: id,
		Name:          "Cuenta Monetaria",
		BankName:      "Banco Industrial",
		AccountNumber: "010-005623-1",
		AccountType:   domain.CheckingAccount,
		BooksBalance:  decimal.NewFromInt(68000),
		BankBalance:   decimal.NewFromInt(68000),
		IsActive:      true,
	}
}

// --- Test Cases ---

// A fresh account seeds both sides with the opening balance, so it starts
// reconciled.
func (suite *BankServiceTestSuite) TestRegisterBankAccount_SeedsBothBalances() {
	ctx := context.Background()
	req := dto.RegisterBankAccountRequest{
		Name:           "Cuenta Monetaria",
		BankName:       "Banco Industrial",
		AccountNumber:  "010-005623-1",
		AccountType:    domain.CheckingAccount,
		OpeningBalance: decimal.NewFromInt(68000),
		CreatedBy:      uuid.NewString(),
	}

	suite.mockRepo.On("SaveBankAccount", ctx, mock.MatchedBy(func(acc domain.BankAccount) bool {
		return acc.BooksBalance.Equal(req.OpeningBalance) &&
			acc.BankBalance.Equal(req.OpeningBalance) &&
			acc.IsActive
	})).Return(nil).Once()

	account, err := suite.service.RegisterBankAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.IsReconciled())
	suite.NotEmpty(account.BankAccountID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestRegisterBankAccount_DuplicateNumber() {
	ctx := context.Background()
	req := dto.RegisterBankAccountRequest{
		Name:          "Cuenta Monetaria",
		BankName:      "Banco Industrial",
		AccountNumber: "010-005623-1",
		AccountType:   domain.CheckingAccount,
	}

	suite.mockRepo.On("SaveBankAccount", ctx, mock.AnythingOfType("domain.BankAccount")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.RegisterBankAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *BankServiceTestSuite) TestRegisterMovement_DepositIncreasesBooks() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := activeBankAccount(accountID)
	amount := decimal.NewFromInt(12000)

	updated := *account
	updated.BooksBalance = account.BooksBalance.Add(amount)

	req := dto.RegisterBankMovementRequest{
		MovementType: domain.Deposit,
		Amount:       amount,
		MovementDate: time.Now().UTC(),
		Description:  "Depósito de efectivo",
		CreatedBy:    uuid.NewString(),
	}

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.MatchedBy(func(mov domain.BankMovement) bool {
		return mov.BankAccountID == accountID &&
			mov.MovementType == domain.Deposit &&
			mov.Amount.Equal(amount) &&
			mov.Status == domain.MovementPending &&
			mov.SignedAmount().Equal(amount)
	})).Return(&updated, nil).Once()

	movement, resultAccount, err := suite.service.RegisterMovement(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Require().NotNil(resultAccount)
	suite.True(decimal.NewFromInt(80000).Equal(resultAccount.BooksBalance))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestRegisterMovement_CheckDecreasesBooks() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := activeBankAccount(accountID)
	amount := decimal.NewFromInt(5000)

	updated := *account
	updated.BooksBalance = account.BooksBalance.Sub(amount)

	req := dto.RegisterBankMovementRequest{
		MovementType:   domain.CheckIssued,
		Amount:         amount,
		MovementDate:   time.Now().UTC(),
		DocumentNumber: "CHQ-0147",
		Beneficiary:    "Distribuidora La Económica",
		CreatedBy:      uuid.NewString(),
	}

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.MatchedBy(func(mov domain.BankMovement) bool {
		return mov.SignedAmount().Equal(amount.Neg())
	})).Return(&updated, nil).Once()

	movement, resultAccount, err := suite.service.RegisterMovement(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.Equal("CHQ-0147", movement.DocumentNumber)
	suite.True(decimal.NewFromInt(63000).Equal(resultAccount.BooksBalance))
}

func (suite *BankServiceTestSuite) TestRegisterMovement_UnknownType() {
	ctx := context.Background()
	req := dto.RegisterBankMovementRequest{
		MovementType: domain.BankMovementType("WIRE_MAGIC"),
		Amount:       decimal.NewFromInt(100),
		MovementDate: time.Now().UTC(),
	}

	movement, account, err := suite.service.RegisterMovement(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrUnknownMovementType)

	suite.mockRepo.AssertNotCalled(suite.T(), "RegisterMovement", mock.Anything, mock.Anything)
}

func (suite *BankServiceTestSuite) TestRegisterMovement_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RegisterBankMovementRequest{
		MovementType: domain.Deposit,
		Amount:       decimal.Zero,
		MovementDate: time.Now().UTC(),
	}

	movement, account, err := suite.service.RegisterMovement(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BankServiceTestSuite) TestRegisterMovement_InactiveAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := activeBankAccount(accountID)
	account.IsActive = false

	req := dto.RegisterBankMovementRequest{
		MovementType: domain.Deposit,
		Amount:       decimal.NewFromInt(100),
		MovementDate: time.Now().UTC(),
	}

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(account, nil).Once()

	movement, resultAccount, err := suite.service.RegisterMovement(ctx, accountID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.Nil(resultAccount)
	suite.ErrorIs(err, services.ErrBankAccountInactive)
}

func (suite *BankServiceTestSuite) TestReconcileMovement_Success() {
	ctx := context.Background()
	movementID := uuid.NewString()
	reconciledBy := uuid.NewString()
	now := time.Now().UTC()
	reconciled := &domain.BankMovement{
		MovementID:   movementID,
		Status:       domain.MovementReconciled,
		ReconciledAt: &now,
	}

	suite.mockRepo.On("ReconcileMovement", ctx, movementID, mock.AnythingOfType("time.Time"), reconciledBy, mock.AnythingOfType("time.Time")).Return(reconciled, nil).Once()

	movement, err := suite.service.ReconcileMovement(ctx, movementID, reconciledBy)

	suite.Require().NoError(err)
	suite.Equal(domain.MovementReconciled, movement.Status)
	suite.NotNil(movement.ReconciledAt)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestReconcileMovement_AlreadyReconciled() {
	ctx := context.Background()
	movementID := uuid.NewString()

	suite.mockRepo.On("ReconcileMovement", ctx, movementID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrConflict).Once()

	movement, err := suite.service.ReconcileMovement(ctx, movementID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, services.ErrMovementReconciled)
}

func (suite *BankServiceTestSuite) TestUpdateStatementBalance_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := activeBankAccount(accountID)
	newBankBalance := decimal.NewFromFloat(67999.99)

	refreshed := *account
	refreshed.BankBalance = newBankBalance

	req := dto.UpdateBankStatementBalanceRequest{
		BankBalance: newBankBalance,
		UpdatedBy:   uuid.NewString(),
	}

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateBankStatementBalance", ctx, accountID, newBankBalance, req.UpdatedBy, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(&refreshed, nil).Once()

	result, err := suite.service.UpdateStatementBalance(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.True(newBankBalance.Equal(result.BankBalance))
	// One cent apart is still within tolerance.
	suite.True(result.IsReconciled())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestUpdateStatementBalance_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateStatementBalance(ctx, accountID, dto.UpdateBankStatementBalanceRequest{BankBalance: decimal.NewFromInt(100)})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateBankStatementBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankServiceTestSuite) TestListMovements_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindBankAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	movements, err := suite.service.ListMovements(ctx, accountID, 50, 0)

	suite.Require().Error(err)
	suite.Nil(movements)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BankServiceTestSuite) TestBankSummary_CountsReconciliationState() {
	ctx := context.Background()

	reconciled := *activeBankAccount(uuid.NewString())
	pending := *activeBankAccount(uuid.NewString())
	pending.BankBalance = pending.BooksBalance.Sub(decimal.NewFromInt(10))

	accounts := []domain.BankAccount{reconciled, pending}
	recent := []domain.BankMovement{{MovementID: uuid.NewString(), MovementType: domain.Deposit, Amount: decimal.NewFromInt(500)}}

	suite.mockRepo.On("ListBankAccounts", ctx, true).Return(accounts, nil).Once()
	suite.mockRepo.On("FindRecentMovements", ctx, 10).Return(recent, nil).Once()

	summary, err := suite.service.BankSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(1, summary.ReconciledCount)
	suite.Equal(1, summary.PendingCount)
	suite.True(decimal.NewFromInt(136000).Equal(summary.TotalBooks))
	suite.True(decimal.NewFromInt(10).Equal(summary.TotalDifference))
	suite.Len(summary.RecentMovements, 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestBankSummary_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListBankAccounts", ctx, true).Return(nil, expectedErr).Once()

	summary, err := suite.service.BankSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestBankService(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
