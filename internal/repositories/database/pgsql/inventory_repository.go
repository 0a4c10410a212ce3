package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	"github.com/SergioDaniel16/mipymes/internal/models"
	"github.com/SergioDaniel16/mipymes/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `product_id, code, name, description, purchase_price, sale_price, stock, min_stock, unit, category, supplier_name, is_active, created_at, created_by, last_updated_at, last_updated_by`

const inventoryMovementColumns = `movement_id, product_id, movement_type, quantity, unit_price, previous_stock, resulting_stock, document_number, notes, movement_date, created_at, created_by`

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for the inventory
// auxiliary ledger.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryFacade
var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Code,
		&m.Name,
		&m.Description,
		&m.PurchasePrice,
		&m.SalePrice,
		&m.Stock,
		&m.MinStock,
		&m.Unit,
		&m.Category,
		&m.SupplierName,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	products := []domain.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func scanInventoryMovement(row pgx.Row) (models.InventoryMovement, error) {
	var m models.InventoryMovement
	err := row.Scan(
		&m.MovementID,
		&m.ProductID,
		&m.MovementType,
		&m.Quantity,
		&m.UnitPrice,
		&m.PreviousStock,
		&m.ResultingStock,
		&m.DocumentNumber,
		&m.Notes,
		&m.MovementDate,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func collectInventoryMovements(rows pgx.Rows) ([]domain.InventoryMovement, error) {
	defer rows.Close()
	movements := []domain.InventoryMovement{}
	for rows.Next() {
		m, err := scanInventoryMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory movement row: %w", err)
		}
		movements = append(movements, mapping.ToDomainInventoryMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory movement rows: %w", err)
	}
	return movements, nil
}

// SaveProduct inserts a new product.
func (r *PgxInventoryRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Code,
		m.Name,
		m.Description,
		m.PurchasePrice,
		m.SalePrice,
		m.Stock,
		m.MinStock,
		m.Unit,
		m.Category,
		m.SupplierName,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product code %s already registered", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to insert product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by ID.
func (r *PgxInventoryRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// FindProductByCode retrieves a product by its unique code.
func (r *PgxInventoryRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product with code %s: %w", code, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// ListProducts lists products ordered by code.
func (r *PgxInventoryRepository) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return collectProducts(rows)
}

// SearchProductsByName retrieves active products whose name matches, case
// insensitively.
func (r *PgxInventoryRepository) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND name ILIKE '%' || $1 || '%'
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return collectProducts(rows)
}

// ListLowStockProducts retrieves active products at or below their minimum
// stock.
func (r *PgxInventoryRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND stock <= min_stock
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	return collectProducts(rows)
}

// UpdateProduct updates catalog fields of a product. Stock is managed
// exclusively by RegisterMovement.
func (r *PgxInventoryRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET code = $2, name = $3, description = $4, purchase_price = $5, sale_price = $6, min_stock = $7, unit = $8, category = $9, supplier_name = $10, is_active = $11, last_updated_at = $12, last_updated_by = $13
		WHERE product_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Code,
		m.Name,
		m.Description,
		m.PurchasePrice,
		m.SalePrice,
		m.MinStock,
		m.Unit,
		m.Category,
		m.SupplierName,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product code %s already registered", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateProduct marks a product inactive, keeping its movement history.
func (r *PgxInventoryRepository) DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, productID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", productID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RegisterMovement locks the product row, re-checks stock for exit
// movements, records before/after stock snapshots, updates the running
// stock, and inserts the movement, all in one transaction.
func (r *PgxInventoryRepository) RegisterMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryMovement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 FOR UPDATE;`
	mp, err := scanProduct(tx.QueryRow(ctx, lockQuery, movement.ProductID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", movement.ProductID, err)
	}

	previousStock := mp.Stock
	var resultingStock int64
	if movement.MovementType.IsExit() {
		if movement.Quantity > previousStock {
			return nil, fmt.Errorf("%w: requested %d, available %d", apperrors.ErrInsufficientStock, movement.Quantity, previousStock)
		}
		resultingStock = previousStock - movement.Quantity
	} else {
		resultingStock = previousStock + movement.Quantity
	}

	movement.PreviousStock = previousStock
	movement.ResultingStock = resultingStock

	stockQuery := `
		UPDATE products
		SET stock = $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1;
	`
	if _, err := tx.Exec(ctx, stockQuery, movement.ProductID, resultingStock, movement.CreatedAt, movement.CreatedBy); err != nil {
		return nil, fmt.Errorf("failed to update stock of product %s: %w", movement.ProductID, err)
	}

	m := mapping.ToModelInventoryMovement(movement)
	insertQuery := `
		INSERT INTO inventory_movements (` + inventoryMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.MovementID,
		m.ProductID,
		m.MovementType,
		m.Quantity,
		m.UnitPrice,
		m.PreviousStock,
		m.ResultingStock,
		m.DocumentNumber,
		m.Notes,
		m.MovementDate,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert inventory movement %s: %w", m.MovementID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &movement, nil
}

// FindMovementsByProduct returns a page of a product's movements, newest
// first.
func (r *PgxInventoryRepository) FindMovementsByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.InventoryMovement, error) {
	query := `
		SELECT ` + inventoryMovementColumns + `
		FROM inventory_movements
		WHERE product_id = $1
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for product %s: %w", productID, err)
	}
	return collectInventoryMovements(rows)
}

// FindRecentMovements returns the latest movements across all products.
func (r *PgxInventoryRepository) FindRecentMovements(ctx context.Context, limit int) ([]domain.InventoryMovement, error) {
	query := `
		SELECT ` + inventoryMovementColumns + `
		FROM inventory_movements
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent inventory movements: %w", err)
	}
	return collectInventoryMovements(rows)
}

// TotalInventoryValue sums stock times purchase price over active products.
func (r *PgxInventoryRepository) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(stock * purchase_price), 0) FROM products WHERE is_active = TRUE;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute total inventory value: %w", err)
	}
	return total, nil
}
