package services

import (
	"context"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// InventoryReaderSvc defines read operations for the inventory ledger
type InventoryReaderSvc interface {
	// GetProductByID retrieves a specific product.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductByCode retrieves a specific product by its code.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves all products, optionally active only.
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)

	// SearchProducts retrieves products whose name matches the query.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)

	// ListLowStockProducts retrieves active products at or below minimum.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)

	// ListMovements retrieves the movement history of a product.
	ListMovements(ctx context.Context, productID string, limit, offset int) ([]domain.InventoryMovement, error)

	// InventoryReport values the full inventory and flags low stock.
	InventoryReport(ctx context.Context) (*domain.InventoryReport, error)
}

// InventoryWriterSvc defines write operations for the inventory ledger
type InventoryWriterSvc interface {
	// RegisterProduct persists a new product.
	RegisterProduct(ctx context.Context, req dto.RegisterProductRequest) (*domain.Product, error)

	// UpdateProduct updates product details (excluding stock).
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updatedBy string) (*domain.Product, error)

	// DeactivateProduct marks a product as inactive.
	DeactivateProduct(ctx context.Context, productID string, requestedBy string) error

	// RegisterMovement records a stock movement. Exits that would drive
	// stock negative are rejected and leave stock untouched.
	RegisterMovement(ctx context.Context, productID string, req dto.RegisterInventoryMovementRequest) (*domain.InventoryMovement, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
