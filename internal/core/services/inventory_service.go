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
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownInventoryMovement = errors.New("unknown inventory movement type")
	ErrProductInactive          = errors.New("product is inactive")
)

// inventoryService manages the product catalog and the perpetual inventory
// movement log.
type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
	companyName   string
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, companyName string) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: inventoryRepo, companyName: companyName}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// RegisterProduct creates a new product in the catalog.
func (s *inventoryService) RegisterProduct(ctx context.Context, req dto.RegisterProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.PurchasePrice.IsNegative() || req.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	}

	existing, err := s.inventoryRepo.FindProductByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check product code uniqueness", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check product code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         req.InitialStock,
		MinStock:      req.MinStock,
		Unit:          req.Unit,
		Category:      req.Category,
		SupplierName:  req.SupplierName,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.inventoryRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save product", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product registered", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	return &product, nil
}

// GetProductByID retrieves a specific product.
func (s *inventoryService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.inventoryRepo.FindProductByID(ctx, productID)
}

// GetProductByCode retrieves a specific product by its code.
func (s *inventoryService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	return s.inventoryRepo.FindProductByCode(ctx, code)
}

// ListProducts retrieves the product catalog.
func (s *inventoryService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	return s.inventoryRepo.ListProducts(ctx, activeOnly)
}

// SearchProducts retrieves products whose name contains the query.
func (s *inventoryService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	return s.inventoryRepo.SearchProductsByName(ctx, query)
}

// ListLowStockProducts retrieves active products at or below their minimum.
func (s *inventoryService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return s.inventoryRepo.ListLowStockProducts(ctx)
}

// UpdateProduct updates product details. Stock is never touched here; it
// only moves through movements.
func (s *inventoryService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updatedBy string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.inventoryRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: purchase price must not be negative", apperrors.ErrValidation)
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		if req.SalePrice.IsNegative() {
			return nil, fmt.Errorf("%w: sale price must not be negative", apperrors.ErrValidation)
		}
		product.SalePrice = *req.SalePrice
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SupplierName != nil {
		product.SupplierName = *req.SupplierName
	}

	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = updatedBy

	if err := s.inventoryRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("product_id", productID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeactivateProduct marks a product as inactive.
func (s *inventoryService) DeactivateProduct(ctx context.Context, productID string, requestedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.inventoryRepo.FindProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.inventoryRepo.DeactivateProduct(ctx, productID, requestedBy, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate product", slog.String("product_id", productID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	logger.Info("Product deactivated", slog.String("product_id", productID))
	return nil
}

// RegisterMovement records a stock movement. The repository locks the
// product row, re-checks stock for exits and snapshots before/after counts;
// an exit larger than the available stock is rejected and leaves the stock
// untouched.
func (s *inventoryService) RegisterMovement(ctx context.Context, productID string, req dto.RegisterInventoryMovementRequest) (*domain.InventoryMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.MovementType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInventoryMovement, req.MovementType)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	product, err := s.inventoryRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrProductInactive, productID)
	}

	// Early stock check for a friendlier error; the repository re-checks
	// under the row lock, which is the authoritative test.
	if req.MovementType.IsExit() && req.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: requested %d, available %d", apperrors.ErrInsufficientStock, req.Quantity, product.Stock)
	}

	unitPrice := req.UnitPrice
	if unitPrice.IsZero() {
		// Default valuation: purchases at purchase price, exits at sale price.
		if req.MovementType == domain.SaleExit {
			unitPrice = product.SalePrice
		} else {
			unitPrice = product.PurchasePrice
		}
	}

	movement := domain.InventoryMovement{
		MovementID:     uuid.NewString(),
		ProductID:      productID,
		MovementType:   req.MovementType,
		Quantity:       req.Quantity,
		UnitPrice:      unitPrice,
		DocumentNumber: req.DocumentNumber,
		Notes:          req.Notes,
		MovementDate:   req.MovementDate,
		CreatedAt:      time.Now().UTC(),
		CreatedBy:      req.CreatedBy,
	}

	saved, err := s.inventoryRepo.RegisterMovement(ctx, movement)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			return nil, err
		}
		logger.Error("Failed to register inventory movement", slog.String("product_id", productID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register inventory movement: %w", err)
	}

	logger.Info("Inventory movement registered",
		slog.String("movement_id", saved.MovementID),
		slog.String("type", string(saved.MovementType)),
		slog.Int64("resulting_stock", saved.ResultingStock),
	)
	return saved, nil
}

// ListMovements retrieves a product's movement history, newest first.
func (s *inventoryService) ListMovements(ctx context.Context, productID string, limit, offset int) ([]domain.InventoryMovement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if _, err := s.inventoryRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.inventoryRepo.FindMovementsByProduct(ctx, productID, limit, offset)
}

// InventoryReport values the whole inventory at purchase price and flags
// low-stock products.
func (s *inventoryService) InventoryReport(ctx context.Context) (*domain.InventoryReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	products, err := s.inventoryRepo.ListProducts(ctx, true)
	if err != nil {
		logger.Error("Failed to list products for inventory report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	report := &domain.InventoryReport{
		CompanyName:      s.companyName,
		AsOfDate:         time.Now().UTC(),
		Products:         products,
		TotalProducts:    len(products),
		LowStockProducts: []domain.Product{},
		TotalValue:       decimal.Zero,
	}
	for i := range products {
		p := &products[i]
		report.TotalValue = report.TotalValue.Add(p.StockValue())
		if p.IsBelowMinStock() {
			report.LowStockProducts = append(report.LowStockProducts, *p)
		}
	}
	report.LowStockCount = len(report.LowStockProducts)

	return report, nil
}
