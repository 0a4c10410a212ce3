package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitOfMeasure is the unit a product is counted in.
type UnitOfMeasure string

// InventoryMovementType classifies a stock movement.
type InventoryMovementType string

// Product represents one row of the product catalog.
type Product struct {
	ProductID     string          `db:"product_id"`
	Code          string          `db:"code"` // Unique
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	Stock         int64           `db:"stock"`
	MinStock      int64           `db:"min_stock"`
	Unit          UnitOfMeasure   `db:"unit"`
	Category      string          `db:"category"`
	SupplierName  string          `db:"supplier_name"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}

// InventoryMovement represents one stock movement with before and after
// stock snapshots.
type InventoryMovement struct {
	MovementID     string                `db:"movement_id"`
	ProductID      string                `db:"product_id"`
	MovementType   InventoryMovementType `db:"movement_type"`
	Quantity       int64                 `db:"quantity"` // Always positive
	UnitPrice      decimal.Decimal       `db:"unit_price"`
	PreviousStock  int64                 `db:"previous_stock"`
	ResultingStock int64                 `db:"resulting_stock"`
	DocumentNumber string                `db:"document_number"`
	Notes          string                `db:"notes"`
	MovementDate   time.Time             `db:"movement_date"`
	CreatedAt      time.Time             `db:"created_at"`
	CreatedBy      string                `db:"created_by"`
}
