package mapping

import (
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:     d.PartyID,
		Kind:        models.PartyKind(d.Kind),
		Code:        d.Code,
		Name:        d.Name,
		TaxID:       d.TaxID,
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		CreditLimit: d.CreditLimit,
		Balance:     d.Balance,
		CreditDays:  d.CreditDays,
		IsActive:    d.IsActive,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		Kind:        domain.PartyKind(m.Kind),
		Code:        m.Code,
		Name:        m.Name,
		TaxID:       m.TaxID,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		CreditLimit: m.CreditLimit,
		Balance:     m.Balance,
		CreditDays:  m.CreditDays,
		IsActive:    m.IsActive,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}

// ToModelOpenDocument converts a domain OpenDocument to its model
func ToModelOpenDocument(d domain.OpenDocument) models.OpenDocument {
	return models.OpenDocument{
		DocumentID:      d.DocumentID,
		PartyID:         d.PartyID,
		DocumentNumber:  d.DocumentNumber,
		IssueDate:       d.IssueDate,
		DueDate:         d.DueDate,
		OriginalAmount:  d.OriginalAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Status:          models.DocumentStatus(d.Status),
		Description:     d.Description,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpenDocument converts a model OpenDocument to its domain form
func ToDomainOpenDocument(m models.OpenDocument) domain.OpenDocument {
	return domain.OpenDocument{
		DocumentID:      m.DocumentID,
		PartyID:         m.PartyID,
		DocumentNumber:  m.DocumentNumber,
		IssueDate:       m.IssueDate,
		DueDate:         m.DueDate,
		OriginalAmount:  m.OriginalAmount,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		Status:          domain.DocumentStatus(m.Status),
		Description:     m.Description,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOpenDocumentSlice converts a slice of model documents
func ToDomainOpenDocumentSlice(ms []models.OpenDocument) []domain.OpenDocument {
	ds := make([]domain.OpenDocument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOpenDocument(m)
	}
	return ds
}
