package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitOfMeasure is the unit products are counted in.
type UnitOfMeasure string

const (
	Unit     UnitOfMeasure = "UNIT"
	Box      UnitOfMeasure = "BOX"
	Pack     UnitOfMeasure = "PACK"
	Kilogram UnitOfMeasure = "KILOGRAM"
	Liter    UnitOfMeasure = "LITER"
	Meter    UnitOfMeasure = "METER"
	Dozen    UnitOfMeasure = "DOZEN"
)

// Product is an inventory item with a running stock count.
type Product struct {
	ProductID     string          `json:"productID"`
	Code          string          `json:"code"` // Unique
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int64           `json:"stock"`
	MinStock      int64           `json:"minStock"`
	Unit          UnitOfMeasure   `json:"unit"`
	Category      string          `json:"category"`
	SupplierName  string          `json:"supplierName"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// StockValue returns stock valued at purchase price.
func (p *Product) StockValue() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(p.Stock))
}

// IsBelowMinStock reports whether the product is at or below its minimum.
func (p *Product) IsBelowMinStock() bool {
	return p.Stock <= p.MinStock
}

// InventoryMovementType classifies an inventory movement as a stock entry
// or a stock exit.
type InventoryMovementType string

const (
	PurchaseEntry  InventoryMovementType = "PURCHASE_ENTRY"
	SaleExit       InventoryMovementType = "SALE_EXIT"
	PositiveAdjust InventoryMovementType = "POSITIVE_ADJUST"
	NegativeAdjust InventoryMovementType = "NEGATIVE_ADJUST"
	CustomerReturn InventoryMovementType = "CUSTOMER_RETURN"
	SupplierReturn InventoryMovementType = "SUPPLIER_RETURN"
)

// inventoryEntryEffects maps types to their stock effect: true increases stock.
var inventoryEntryEffects = map[InventoryMovementType]bool{
	PurchaseEntry:  true,
	SaleExit:       false,
	PositiveAdjust: true,
	NegativeAdjust: false,
	CustomerReturn: true,
	SupplierReturn: false,
}

// IsEntry reports whether the movement type increases stock.
func (t InventoryMovementType) IsEntry() bool {
	return inventoryEntryEffects[t]
}

// IsExit reports whether the movement type decreases stock.
func (t InventoryMovementType) IsExit() bool {
	entry, known := inventoryEntryEffects[t]
	return known && !entry
}

// IsValid reports whether the movement type is one of the known variants.
func (t InventoryMovementType) IsValid() bool {
	_, ok := inventoryEntryEffects[t]
	return ok
}

// InventoryMovement records a stock change, immutable once created, with
// before/after snapshots of the product's stock.
type InventoryMovement struct {
	MovementID     string                `json:"movementID"`
	ProductID      string                `json:"productID"`
	MovementType   InventoryMovementType `json:"movementType"`
	Quantity       int64                 `json:"quantity"`
	UnitPrice      decimal.Decimal       `json:"unitPrice"`
	PreviousStock  int64                 `json:"previousStock"`
	ResultingStock int64                 `json:"resultingStock"`
	DocumentNumber string                `json:"documentNumber"`
	Notes          string                `json:"notes"`
	MovementDate   time.Time             `json:"movementDate"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// TotalValue returns quantity times unit price.
func (m *InventoryMovement) TotalValue() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity))
}
