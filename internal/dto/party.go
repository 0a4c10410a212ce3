package dto

import (
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPartyRequest defines the data needed to register a customer or
// supplier. Kind is taken from the route, not the body, when registering
// through the /customers or /suppliers groups.
type RegisterPartyRequest struct {
	Kind        domain.PartyKind `json:"kind" binding:"omitempty,oneof=CUSTOMER SUPPLIER"`
	Code        string           `json:"code" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	TaxID       string           `json:"taxID"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email" binding:"omitempty,email"`
	Address     string           `json:"address"`
	CreditLimit decimal.Decimal  `json:"creditLimit"`
	CreditDays  int              `json:"creditDays" binding:"min=0"`
	Notes       string           `json:"notes"`
	CreatedBy   string           `json:"createdBy"`
}

// UpdatePartyRequest defines the fields allowed to change on a party.
type UpdatePartyRequest struct {
	Name        *string          `json:"name"`
	TaxID       *string          `json:"taxID"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Address     *string          `json:"address"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
	CreditDays  *int             `json:"creditDays" binding:"omitempty,min=0"`
	Notes       *string          `json:"notes"`
}

// RegisterDocumentRequest defines the data needed to record an open
// document (invoice or bill) against a party.
type RegisterDocumentRequest struct {
	DocumentNumber string          `json:"documentNumber" binding:"required"`
	IssueDate      time.Time       `json:"issueDate" binding:"required"`
	DueDate        time.Time       `json:"dueDate"` // Defaults to issueDate + credit days
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description"`
	Notes          string          `json:"notes"`
	CreatedBy      string          `json:"createdBy"`
}

// ApplyPaymentRequest records a full or partial payment on a document.
type ApplyPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	AppliedBy string          `json:"appliedBy"`
}

// PartyResponse mirrors domain.Party.
type PartyResponse struct {
	PartyID         string           `json:"partyID"`
	Kind            domain.PartyKind `json:"kind"`
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	TaxID           string           `json:"taxID"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Address         string           `json:"address"`
	CreditLimit     decimal.Decimal  `json:"creditLimit"`
	Balance         decimal.Decimal  `json:"balance"`
	AvailableCredit decimal.Decimal  `json:"availableCredit"`
	CreditDays      int              `json:"creditDays"`
	IsActive        bool             `json:"isActive"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// OpenDocumentResponse mirrors domain.OpenDocument.
type OpenDocumentResponse struct {
	DocumentID      string                `json:"documentID"`
	PartyID         string                `json:"partyID"`
	DocumentNumber  string                `json:"documentNumber"`
	IssueDate       time.Time             `json:"issueDate"`
	DueDate         time.Time             `json:"dueDate"`
	OriginalAmount  decimal.Decimal       `json:"originalAmount"`
	PaidAmount      decimal.Decimal       `json:"paidAmount"`
	RemainingAmount decimal.Decimal       `json:"remainingAmount"`
	Status          domain.DocumentStatus `json:"status"`
	Overdue         bool                  `json:"overdue"`
	DaysLate        int64                 `json:"daysLate"`
	Description     string                `json:"description"`
	Notes           string                `json:"notes"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ToPartyResponse converts a domain party.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:         p.PartyID,
		Kind:            p.Kind,
		Code:            p.Code,
		Name:            p.Name,
		TaxID:           p.TaxID,
		Phone:           p.Phone,
		Email:           p.Email,
		Address:         p.Address,
		CreditLimit:     p.CreditLimit,
		Balance:         p.Balance,
		AvailableCredit: p.AvailableCredit(),
		CreditDays:      p.CreditDays,
		IsActive:        p.IsActive,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.LastUpdatedAt,
	}
}

// ToPartyResponses converts a slice of parties.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}

// ToOpenDocumentResponse converts a domain document, evaluating overdue
// state at the given time.
func ToOpenDocumentResponse(doc *domain.OpenDocument, now time.Time) OpenDocumentResponse {
	return OpenDocumentResponse{
		DocumentID:      doc.DocumentID,
		PartyID:         doc.PartyID,
		DocumentNumber:  doc.DocumentNumber,
		IssueDate:       doc.IssueDate,
		DueDate:         doc.DueDate,
		OriginalAmount:  doc.OriginalAmount,
		PaidAmount:      doc.PaidAmount,
		RemainingAmount: doc.RemainingAmount,
		Status:          doc.Status,
		Overdue:         doc.IsOverdue(now),
		DaysLate:        doc.DaysLate(now),
		Description:     doc.Description,
		Notes:           doc.Notes,
		CreatedAt:       doc.CreatedAt,
	}
}

// ToOpenDocumentResponses converts a slice of documents.
func ToOpenDocumentResponses(docs []domain.OpenDocument, now time.Time) []OpenDocumentResponse {
	res := make([]OpenDocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToOpenDocumentResponse(&docs[i], now)
	}
	return res
}
