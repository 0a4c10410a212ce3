package mapping

import (
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		Name:          d.Name,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		AccountType:   models.BankAccountType(d.AccountType),
		BooksBalance:  d.BooksBalance,
		BankBalance:   d.BankBalance,
		IsActive:      d.IsActive,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		Name:          m.Name,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		AccountType:   domain.BankAccountType(m.AccountType),
		BooksBalance:  m.BooksBalance,
		BankBalance:   m.BankBalance,
		IsActive:      m.IsActive,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankAccountSlice converts a slice of model bank accounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}

// ToModelBankMovement converts a domain BankMovement to a model BankMovement
func ToModelBankMovement(d domain.BankMovement) models.BankMovement {
	return models.BankMovement{
		MovementID:     d.MovementID,
		BankAccountID:  d.BankAccountID,
		MovementType:   models.BankMovementType(d.MovementType),
		MovementDate:   d.MovementDate,
		Amount:         d.Amount,
		Description:    d.Description,
		DocumentNumber: d.DocumentNumber,
		Beneficiary:    d.Beneficiary,
		Status:         models.BankMovementStatus(d.Status),
		ReconciledAt:   d.ReconciledAt,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankMovement converts a model BankMovement to a domain BankMovement
func ToDomainBankMovement(m models.BankMovement) domain.BankMovement {
	return domain.BankMovement{
		MovementID:     m.MovementID,
		BankAccountID:  m.BankAccountID,
		MovementType:   domain.BankMovementType(m.MovementType),
		MovementDate:   m.MovementDate,
		Amount:         m.Amount,
		Description:    m.Description,
		DocumentNumber: m.DocumentNumber,
		Beneficiary:    m.Beneficiary,
		Status:         domain.BankMovementStatus(m.Status),
		ReconciledAt:   m.ReconciledAt,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankMovementSlice converts a slice of model bank movements
func ToDomainBankMovementSlice(ms []models.BankMovement) []domain.BankMovement {
	ds := make([]domain.BankMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankMovement(m)
	}
	return ds
}
