package repositories

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryRepositoryFacade defines persistence operations for products and
// inventory movements.
type InventoryRepositoryFacade interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error

	// RegisterMovement locks the product row, re-checks stock for exit
	// movements, records before/after snapshots, and updates the running
	// stock, all in one transaction. Returns the saved movement.
	RegisterMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryMovement, error)
	FindMovementsByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.InventoryMovement, error)
	FindRecentMovements(ctx context.Context, limit int) ([]domain.InventoryMovement, error)

	// TotalInventoryValue sums stock * purchase price over active products.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
}
