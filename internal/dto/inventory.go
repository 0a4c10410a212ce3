package dto

import (
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterProductRequest defines the data needed to register a product.
type RegisterProductRequest struct {
	Code          string               `json:"code" binding:"required"`
	Name          string               `json:"name" binding:"required"`
	Description   string               `json:"description"`
	PurchasePrice decimal.Decimal      `json:"purchasePrice"`
	SalePrice     decimal.Decimal      `json:"salePrice"`
	InitialStock  int64                `json:"initialStock" binding:"min=0"`
	MinStock      int64                `json:"minStock" binding:"min=0"`
	Unit          domain.UnitOfMeasure `json:"unit" binding:"required,oneof=UNIT BOX PACK KILOGRAM LITER METER DOZEN"`
	Category      string               `json:"category"`
	SupplierName  string               `json:"supplierName"`
	CreatedBy     string               `json:"createdBy"`
}

// UpdateProductRequest defines the fields allowed to change on a product.
// Stock is deliberately absent: it only changes through movements.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	MinStock      *int64           `json:"minStock" binding:"omitempty,min=0"`
	Category      *string          `json:"category"`
	SupplierName  *string          `json:"supplierName"`
}

// RegisterInventoryMovementRequest defines the data needed to record a
// stock movement for a product.
type RegisterInventoryMovementRequest struct {
	MovementType   domain.InventoryMovementType `json:"movementType" binding:"required,oneof=PURCHASE_ENTRY SALE_EXIT POSITIVE_ADJUST NEGATIVE_ADJUST CUSTOMER_RETURN SUPPLIER_RETURN"`
	Quantity       int64                        `json:"quantity" binding:"required,gt=0"`
	UnitPrice      decimal.Decimal              `json:"unitPrice"`
	MovementDate   time.Time                    `json:"movementDate" binding:"required"`
	DocumentNumber string                       `json:"documentNumber"`
	Notes          string                       `json:"notes"`
	CreatedBy      string                       `json:"createdBy"`
}

// ProductResponse mirrors domain.Product with the derived stock fields
// included.
type ProductResponse struct {
	ProductID     string               `json:"productID"`
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	PurchasePrice decimal.Decimal      `json:"purchasePrice"`
	SalePrice     decimal.Decimal      `json:"salePrice"`
	Stock         int64                `json:"stock"`
	MinStock      int64                `json:"minStock"`
	Unit          domain.UnitOfMeasure `json:"unit"`
	Category      string               `json:"category"`
	SupplierName  string               `json:"supplierName"`
	StockValue    decimal.Decimal      `json:"stockValue"`
	BelowMinStock bool                 `json:"belowMinStock"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// InventoryMovementResponse mirrors domain.InventoryMovement.
type InventoryMovementResponse struct {
	MovementID     string                       `json:"movementID"`
	ProductID      string                       `json:"productID"`
	MovementType   domain.InventoryMovementType `json:"movementType"`
	Quantity       int64                        `json:"quantity"`
	UnitPrice      decimal.Decimal              `json:"unitPrice"`
	TotalValue     decimal.Decimal              `json:"totalValue"`
	PreviousStock  int64                        `json:"previousStock"`
	ResultingStock int64                        `json:"resultingStock"`
	DocumentNumber string                       `json:"documentNumber"`
	Notes          string                       `json:"notes"`
	MovementDate   time.Time                    `json:"movementDate"`
	CreatedBy      string                       `json:"createdBy"`
}

// ToProductResponse converts a domain product.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Unit:          p.Unit,
		Category:      p.Category,
		SupplierName:  p.SupplierName,
		StockValue:    p.StockValue(),
		BelowMinStock: p.IsBelowMinStock(),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.LastUpdatedAt,
	}
}

// ToProductResponses converts a slice of products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ToInventoryMovementResponse converts a domain inventory movement.
func ToInventoryMovementResponse(m *domain.InventoryMovement) InventoryMovementResponse {
	return InventoryMovementResponse{
		MovementID:     m.MovementID,
		ProductID:      m.ProductID,
		MovementType:   m.MovementType,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalValue:     m.TotalValue(),
		PreviousStock:  m.PreviousStock,
		ResultingStock: m.ResultingStock,
		DocumentNumber: m.DocumentNumber,
		Notes:          m.Notes,
		MovementDate:   m.MovementDate,
		CreatedBy:      m.CreatedBy,
	}
}

// ToInventoryMovementResponses converts a slice of movements.
func ToInventoryMovementResponses(movements []domain.InventoryMovement) []InventoryMovementResponse {
	res := make([]InventoryMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToInventoryMovementResponse(&movements[i])
	}
	return res
}
