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

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error) {
	args := m.Called(ctx, entry, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) PostEntry(ctx context.Context, entryID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, entryID, balanceChanges, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByNumber(ctx context.Context, entryNumber int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SearchEntriesByDescription(ctx context.Context, fragment string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade

	cashID string
	bankID string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.cashID = uuid.NewString()
	suite.bankID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashID: {
			AccountID:   suite.cashID,
			Code:        "1001",
			Name:        "Efectivo en Caja",
			AccountType: domain.Asset,
			Nature:      domain.DebitNatured,
			IsActive:    true,
		},
		suite.bankID: {
			AccountID:   suite.bankID,
			Code:        "1002",
			Name:        "Bancos",
			AccountType: domain.Asset,
			Nature:      domain.DebitNatured,
			IsActive:    true,
		},
	}
}

// --- Test Cases ---

// A Q12,000 cash deposit: debit Bancos, credit Efectivo en Caja.
func (suite *JournalServiceTestSuite) TestCreateEntry_BankDeposit() {
	ctx := context.Background()
	amount := decimal.NewFromInt(12000)
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Depósito bancario de efectivo",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.bankID, Side: domain.Debit, Amount: amount},
			{AccountID: suite.cashID, Side: domain.Credit, Amount: amount},
		},
		CreatedBy: uuid.NewString(),
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.JournalEntry) bool {
		return entry.Status == domain.Draft &&
			entry.TotalDebits.Equal(amount) &&
			entry.TotalCredits.Equal(amount) &&
			len(entry.Lines) == 2
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(int64(8), nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(8), entry.EntryNumber)
	suite.Equal(domain.Draft, entry.Status)
	suite.True(entry.IsBalanced())
	suite.Len(entry.Lines, 2)
	suite.Equal(1, entry.Lines[0].Order)
	suite.Equal(2, entry.Lines[1].Order)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// Debits 100.00 against credits 99.99 must be rejected, never adjusted.
func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Venta con descuadre",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromFloat(100.00)},
			{AccountID: suite.bankID, Side: domain.Credit, Amount: decimal.NewFromFloat(99.99)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleLine() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Solo un cargo",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(100)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrEntryMinLines)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleAccount() {
	ctx := context.Background()
	// Two lines but both against the same account.
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Cargo y abono a la misma cuenta",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.cashID, Side: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrEntryMinAccounts)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_DescriptionMissing() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "   ",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.bankID, Side: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrDescriptionMissing)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Monto inválido",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(-50)},
			{AccountID: suite.bankID, Side: domain.Credit, Amount: decimal.NewFromInt(-50)},
		},
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountMissing() {
	ctx := context.Background()
	ghostID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Cuenta inexistente",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: ghostID, Side: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	// Only the cash account comes back.
	partial := map[string]domain.Account{suite.cashID: suite.activeAccounts()[suite.cashID]}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(partial, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrAccountNotFound)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	accounts := suite.activeAccounts()
	inactive := accounts[suite.bankID]
	inactive.IsActive = false
	accounts[suite.bankID] = inactive

	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Cuenta desactivada",
		EntryType:   domain.Operation,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Side: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.bankID, Side: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// Posting the deposit entry must compute +12000 on Bancos and -12000 on
// Efectivo en Caja and hand both deltas to the repository in one call.
func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	postedBy := uuid.NewString()
	amount := decimal.NewFromInt(12000)

	entry := &domain.JournalEntry{
		EntryID:      entryID,
		EntryNumber:  8,
		Description:  "Depósito bancario de efectivo",
		Status:       domain.Draft,
		TotalDebits:  amount,
		TotalCredits: amount,
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankID, Side: domain.Debit, Amount: amount, Order: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: amount, Order: 2},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("PostEntry", ctx, entryID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 2 &&
			changes[suite.bankID].Equal(amount) &&
			changes[suite.cashID].Equal(amount.Neg())
	}), postedBy, mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, postedBy)

	suite.Require().NoError(err)
	suite.Require().NotNil(posted)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(postedBy, posted.LastUpdatedBy)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// Lines hitting the same account net into a single delta.
func (suite *JournalServiceTestSuite) TestPostEntry_NetsRepeatedAccounts() {
	ctx := context.Background()
	entryID := uuid.NewString()

	entry := &domain.JournalEntry{
		EntryID:      entryID,
		EntryNumber:  9,
		Status:       domain.Validated,
		TotalDebits:  decimal.NewFromInt(300),
		TotalCredits: decimal.NewFromInt(300),
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankID, Side: domain.Debit, Amount: decimal.NewFromInt(300), Order: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: decimal.NewFromInt(200), Order: 2},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: decimal.NewFromInt(100), Order: 3},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("PostEntry", ctx, entryID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 2 &&
			changes[suite.bankID].Equal(decimal.NewFromInt(300)) &&
			changes[suite.cashID].Equal(decimal.NewFromInt(-300))
	}), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(posted)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// An account deactivated after the draft was created blocks the post.
func (suite *JournalServiceTestSuite) TestPostEntry_InactiveAccount() {
	ctx := context.Background()
	entryID := uuid.NewString()
	amount := decimal.NewFromInt(500)

	entry := &domain.JournalEntry{
		EntryID:      entryID,
		EntryNumber:  11,
		Status:       domain.Draft,
		TotalDebits:  amount,
		TotalCredits: amount,
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankID, Side: domain.Debit, Amount: amount, Order: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: amount, Order: 2},
	}
	accounts := suite.activeAccounts()
	inactive := accounts[suite.bankID]
	inactive.IsActive = false
	accounts[suite.bankID] = inactive

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_AlreadyPosted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: 3, Status: domain.Posted}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, services.ErrAlreadyPosted)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_Voided() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: 4, Status: domain.Void}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, services.ErrEntryVoided)
}

func (suite *JournalServiceTestSuite) TestPostEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// A stored draft whose lines no longer balance must be caught at post time.
func (suite *JournalServiceTestSuite) TestPostEntry_RechecksBalance() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: 5, Status: domain.Draft}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankID, Side: domain.Debit, Amount: decimal.NewFromFloat(100.00), Order: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: decimal.NewFromFloat(99.99), Order: 2},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_RepoFailureSurfaces() {
	ctx := context.Background()
	entryID := uuid.NewString()
	amount := decimal.NewFromInt(500)
	entry := &domain.JournalEntry{
		EntryID: entryID, EntryNumber: 6, Status: domain.Draft,
		TotalDebits: amount, TotalCredits: amount,
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankID, Side: domain.Debit, Amount: amount, Order: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashID, Side: domain.Credit, Amount: amount, Order: 2},
	}
	expectedErr := assert.AnError

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("PostEntry", ctx, entryID, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(expectedErr).Once()

	posted, err := suite.service.PostEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, expectedErr)
}

func (suite *JournalServiceTestSuite) TestGetEntryByNumber_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: 2}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, Order: 1},
	}

	suite.mockJournalRepo.On("FindEntryByNumber", ctx, int64(2)).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	found, err := suite.service.GetEntryByNumber(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Len(found.Lines, 1)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_ClampsPagination() {
	ctx := context.Background()
	var expected []domain.JournalEntry

	// An out-of-range limit falls back to the default page size.
	suite.mockJournalRepo.On("ListEntries", ctx, 50, 0).Return(expected, nil).Once()

	_, err := suite.service.ListEntries(ctx, 1000, -5)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntriesByDateRange_InvertedRange() {
	ctx := context.Background()
	from := time.Now()
	to := from.Add(-24 * time.Hour)

	entries, err := suite.service.ListEntriesByDateRange(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestSearchEntries_EmptyQuery() {
	ctx := context.Background()

	entries, err := suite.service.SearchEntries(ctx, "  ")

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Test Suite ---

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
