package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// MockAccountRepository is a mock type for the AccountRepositoryFacade
// interface, shared by the account, journal and reporting service suites.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SearchAccountsByName(ctx context.Context, name string) ([]domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestRegisterAccount_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.RegisterAccountRequest{
		Code:           "1002",
		Name:           "Bancos",
		AccountType:    domain.Asset,
		Nature:         domain.DebitNatured,
		OpeningBalance: decimal.NewFromInt(68000),
		CreatedBy:      creatorID,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1002").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("1002", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.Equal(domain.DebitNatured, account.Nature)
	suite.True(decimal.NewFromInt(68000).Equal(account.Balance))
	suite.True(account.IsActive)
	suite.Equal(creatorID, account.CreatedBy)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		Code:        "1001",
		Name:        "Efectivo en Caja",
		AccountType: domain.Asset,
		Nature:      domain.DebitNatured,
	}
	existing := &domain.Account{AccountID: uuid.NewString(), Code: "1001"}

	suite.mockRepo.On("FindAccountByCode", ctx, "1001").Return(existing, nil).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_NatureMismatch() {
	ctx := context.Background()
	// A liability must be credit natured.
	req := dto.RegisterAccountRequest{
		Code:        "2001",
		Name:        "Proveedores",
		AccountType: domain.Liability,
		Nature:      domain.DebitNatured,
	}

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrNatureTypeMismatch)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_NameMissing() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		Code:        "1003",
		Name:        "   ",
		AccountType: domain.Asset,
		Nature:      domain.DebitNatured,
	}

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_SaveDuplicateRace() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		Code:        "4001",
		Name:        "Ventas",
		AccountType: domain.Revenue,
		Nature:      domain.CreditNatured,
	}

	// The code is free at check time but a concurrent insert wins the race.
	suite.mockRepo.On("FindAccountByCode", ctx, "4001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_Success() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: uuid.NewString(), Code: "5101", Name: "Costo de Ventas"}

	suite.mockRepo.On("FindAccountByCode", ctx, "5101").Return(expected, nil).Once()

	account, err := suite.service.GetAccountByCode(ctx, "5101")

	suite.Require().NoError(err)
	suite.Equal(expected, account)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsByType_UnknownType() {
	ctx := context.Background()

	accounts, err := suite.service.ListAccountsByType(ctx, domain.AccountType("CONTRA"))

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccountsByType", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSearchAccounts_EmptyQuery() {
	ctx := context.Background()

	accounts, err := suite.service.SearchAccounts(ctx, "   ")

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	updaterID := uuid.NewString()
	initialTime := time.Now().Add(-time.Hour)

	original := &domain.Account{
		AccountID:   testID,
		Code:        "5002",
		Name:        "Publicidad",
		AccountType: domain.Expense,
		Nature:      domain.DebitNatured,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedBy:     "seed",
			LastUpdatedBy: "seed",
			CreatedAt:     initialTime,
			LastUpdatedAt: initialTime,
		},
	}

	newName := "Publicidad y Promoción"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == testID &&
			acc.Name == newName &&
			acc.LastUpdatedBy == updaterID &&
			acc.LastUpdatedAt.After(initialTime)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.Equal(updaterID, updated.LastUpdatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_TypeChangeBreaksNature() {
	ctx := context.Background()
	testID := uuid.NewString()
	original := &domain.Account{
		AccountID:   testID,
		Code:        "1001",
		Name:        "Efectivo en Caja",
		AccountType: domain.Asset,
		Nature:      domain.DebitNatured,
		IsActive:    true,
	}

	// Changing the type without the matching nature must be rejected.
	newType := domain.Revenue
	req := dto.UpdateAccountRequest{AccountType: &newType}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(original, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrNatureTypeMismatch)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	userID := uuid.NewString()
	account := &domain.Account{AccountID: testID, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, testID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, testID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, testID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterAccount_RepoErrorOnCodeCheck() {
	ctx := context.Background()
	req := dto.RegisterAccountRequest{
		Code:        "3001",
		Name:        "Capital",
		AccountType: domain.Equity,
		Nature:      domain.CreditNatured,
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAccountByCode", ctx, "3001").Return(nil, expectedErr).Once()

	account, err := suite.service.RegisterAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
