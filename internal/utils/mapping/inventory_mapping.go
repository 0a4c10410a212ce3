package mapping

import (
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		PurchasePrice: d.PurchasePrice,
		SalePrice:     d.SalePrice,
		Stock:         d.Stock,
		MinStock:      d.MinStock,
		Unit:          models.UnitOfMeasure(d.Unit),
		Category:      d.Category,
		SupplierName:  d.SupplierName,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Code:          m.Code,
		Name:          m.Name,
		Description:   m.Description,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		Stock:         m.Stock,
		MinStock:      m.MinStock,
		Unit:          domain.UnitOfMeasure(m.Unit),
		Category:      m.Category,
		SupplierName:  m.SupplierName,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToModelInventoryMovement converts a domain InventoryMovement to its model
func ToModelInventoryMovement(d domain.InventoryMovement) models.InventoryMovement {
	return models.InventoryMovement{
		MovementID:     d.MovementID,
		ProductID:      d.ProductID,
		MovementType:   models.InventoryMovementType(d.MovementType),
		Quantity:       d.Quantity,
		UnitPrice:      d.UnitPrice,
		PreviousStock:  d.PreviousStock,
		ResultingStock: d.ResultingStock,
		DocumentNumber: d.DocumentNumber,
		Notes:          d.Notes,
		MovementDate:   d.MovementDate,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainInventoryMovement converts a model InventoryMovement to its domain form
func ToDomainInventoryMovement(m models.InventoryMovement) domain.InventoryMovement {
	return domain.InventoryMovement{
		MovementID:     m.MovementID,
		ProductID:      m.ProductID,
		MovementType:   domain.InventoryMovementType(m.MovementType),
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		PreviousStock:  m.PreviousStock,
		ResultingStock: m.ResultingStock,
		DocumentNumber: m.DocumentNumber,
		Notes:          m.Notes,
		MovementDate:   m.MovementDate,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainInventoryMovementSlice converts a slice of model movements
func ToDomainInventoryMovementSlice(ms []models.InventoryMovement) []domain.InventoryMovement {
	ds := make([]domain.InventoryMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryMovement(m)
	}
	return ds
}
