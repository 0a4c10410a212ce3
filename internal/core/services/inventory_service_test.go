package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/core/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// MockInventoryRepository is a mock type for the InventoryRepositoryFacade interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error {
	args := m.Called(ctx, productID, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) RegisterMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryMovement, error) {
	args := m.Called(ctx, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryMovement), args.Error(1)
}

func (m *MockInventoryRepository) FindMovementsByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockInventoryRepository) FindRecentMovements(ctx context.Context, limit int) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockInventoryRepository) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockRepo, "Almacén El Planeador")
}

func activeProduct(id string) *domain.Product {
	return &domain.Product{
		ProductID:     id,
		Code:          "PRD-001",
		Name:          "Caja de clavos 2\"",
		PurchasePrice: decimal.NewFromFloat(18.50),
		SalePrice:     decimal.NewFromFloat(27.00),
		Stock:         30,
		MinStock:      5,
		Unit:          domain.Box,
		IsActive:      true,
	}
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestRegisterProduct_Success() {
	ctx := context.Background()
	req := dto.RegisterProductRequest{
		Code:          "PRD-001",
		Name:          "Caja de clavos 2\"",
		PurchasePrice: decimal.NewFromFloat(18.50),
		SalePrice:     decimal.NewFromFloat(27.00),
		InitialStock:  30,
		MinStock:      5,
		Unit:          domain.Box,
		CreatedBy:     uuid.NewString(),
	}

	suite.mockRepo.On("FindProductByCode", ctx, "PRD-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Code == "PRD-001" && p.Stock == 30 && p.IsActive
	})).Return(nil).Once()

	product, err := suite.service.RegisterProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(int64(30), product.Stock)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRegisterProduct_DuplicateCode() {
	ctx := context.Background()
	req := dto.RegisterProductRequest{
		Code: "PRD-001",
		Name: "Caja de clavos 2\"",
		Unit: domain.Box,
	}

	suite.mockRepo.On("FindProductByCode", ctx, "PRD-001").Return(activeProduct(uuid.NewString()), nil).Once()

	product, err := suite.service.RegisterProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRegisterProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.RegisterProductRequest{
		Code:          "PRD-002",
		Name:          "Martillo",
		PurchasePrice: decimal.NewFromFloat(-1.00),
		Unit:          domain.Unit,
	}

	product, err := suite.service.RegisterProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestRegisterMovement_PurchaseEntry() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)

	req := dto.RegisterInventoryMovementRequest{
		MovementType:   domain.PurchaseEntry,
		Quantity:       20,
		UnitPrice:      decimal.NewFromFloat(18.00),
		MovementDate:   time.Now().UTC(),
		DocumentNumber: "FAC-4410",
		CreatedBy:      uuid.NewString(),
	}

	saved := domain.InventoryMovement{
		MovementID:     uuid.NewString(),
		ProductID:      productID,
		MovementType:   domain.PurchaseEntry,
		Quantity:       20,
		PreviousStock:  30,
		ResultingStock: 50,
	}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.MatchedBy(func(mov domain.InventoryMovement) bool {
		return mov.ProductID == productID &&
			mov.Quantity == 20 &&
			mov.UnitPrice.Equal(decimal.NewFromFloat(18.00)) &&
			!mov.CreatedAt.IsZero()
	})).Return(&saved, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, productID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(30), movement.PreviousStock)
	suite.Equal(int64(50), movement.ResultingStock)

	suite.mockRepo.AssertExpectations(suite.T())
}

// An exit of 50 against a stock of 30 must be rejected before the
// repository is ever asked to move stock.
func (suite *InventoryServiceTestSuite) TestRegisterMovement_InsufficientStock() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)

	req := dto.RegisterInventoryMovementRequest{
		MovementType: domain.SaleExit,
		Quantity:     50,
		MovementDate: time.Now().UTC(),
	}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, productID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), "requested 50")
	suite.Contains(err.Error(), "available 30")

	// The stock was never touched.
	suite.mockRepo.AssertNotCalled(suite.T(), "RegisterMovement", mock.Anything, mock.Anything)
	suite.Equal(int64(30), product.Stock)
}

func (suite *InventoryServiceTestSuite) TestRegisterMovement_ExitOfFullStock() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)

	req := dto.RegisterInventoryMovementRequest{
		MovementType: domain.SaleExit,
		Quantity:     30,
		UnitPrice:    decimal.NewFromFloat(27.00),
		MovementDate: time.Now().UTC(),
	}
	saved := domain.InventoryMovement{
		MovementID:     uuid.NewString(),
		ProductID:      productID,
		MovementType:   domain.SaleExit,
		Quantity:       30,
		PreviousStock:  30,
		ResultingStock: 0,
	}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.AnythingOfType("domain.InventoryMovement")).Return(&saved, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, productID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(0), movement.ResultingStock)
}

// With no unit price supplied, exits default to the sale price and entries
// to the purchase price.
func (suite *InventoryServiceTestSuite) TestRegisterMovement_DefaultsUnitPrice() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)

	saleReq := dto.RegisterInventoryMovementRequest{
		MovementType: domain.SaleExit,
		Quantity:     5,
		MovementDate: time.Now().UTC(),
	}
	saved := domain.InventoryMovement{MovementID: uuid.NewString(), ProductID: productID}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.MatchedBy(func(mov domain.InventoryMovement) bool {
		return mov.UnitPrice.Equal(product.SalePrice)
	})).Return(&saved, nil).Once()

	_, err := suite.service.RegisterMovement(ctx, productID, saleReq)
	suite.Require().NoError(err)

	purchaseReq := dto.RegisterInventoryMovementRequest{
		MovementType: domain.PurchaseEntry,
		Quantity:     5,
		MovementDate: time.Now().UTC(),
	}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockRepo.On("RegisterMovement", ctx, mock.MatchedBy(func(mov domain.InventoryMovement) bool {
		return mov.UnitPrice.Equal(product.PurchasePrice)
	})).Return(&saved, nil).Once()

	_, err = suite.service.RegisterMovement(ctx, productID, purchaseReq)
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRegisterMovement_UnknownType() {
	ctx := context.Background()

	req := dto.RegisterInventoryMovementRequest{
		MovementType: domain.InventoryMovementType("TELEPORT"),
		Quantity:     1,
		MovementDate: time.Now().UTC(),
	}

	movement, err := suite.service.RegisterMovement(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, services.ErrUnknownInventoryMovement)
}

func (suite *InventoryServiceTestSuite) TestRegisterMovement_InactiveProduct() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)
	product.IsActive = false

	req := dto.RegisterInventoryMovementRequest{
		MovementType: domain.PurchaseEntry,
		Quantity:     10,
		MovementDate: time.Now().UTC(),
	}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, productID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, services.ErrProductInactive)
}

func (suite *InventoryServiceTestSuite) TestUpdateProduct_StockUntouchable() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := activeProduct(productID)

	newName := "Caja de clavos 3\""
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		// Details change, stock stays the repository's business.
		return p.Name == newName && p.Stock == 30
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, productID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(int64(30), updated.Stock)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestInventoryReport_ValuesAndLowStock() {
	ctx := context.Background()
	products := []domain.Product{
		{ProductID: uuid.NewString(), Code: "PRD-001", Name: "Clavos", PurchasePrice: decimal.NewFromInt(10), Stock: 50, MinStock: 5, IsActive: true},
		{ProductID: uuid.NewString(), Code: "PRD-002", Name: "Martillos", PurchasePrice: decimal.NewFromInt(40), Stock: 2, MinStock: 5, IsActive: true},
	}

	suite.mockRepo.On("ListProducts", ctx, true).Return(products, nil).Once()

	report, err := suite.service.InventoryReport(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(2, report.TotalProducts)
	suite.True(decimal.NewFromInt(580).Equal(report.TotalValue))
	suite.Equal(1, report.LowStockCount)
	suite.Equal("PRD-002", report.LowStockProducts[0].Code)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestSearchProducts_EmptyQuery() {
	ctx := context.Background()

	products, err := suite.service.SearchProducts(ctx, " ")

	suite.Require().Error(err)
	suite.Nil(products)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Test Suite ---

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
