package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes customers from suppliers. Both share the same
// master-record shape: a running balance mutated by their open documents.
type PartyKind string

const (
	CustomerParty PartyKind = "CUSTOMER"
	SupplierParty PartyKind = "SUPPLIER"
)

// Party is a customer or supplier master record. Balance is the running sum
// of open document amounts, increased when a document is created and
// decreased as payments are recorded.
type Party struct {
	PartyID     string          `json:"partyID"`
	Kind        PartyKind       `json:"kind"`
	Code        string          `json:"code"` // Unique within the kind
	Name        string          `json:"name"`
	TaxID       string          `json:"taxID"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	Balance     decimal.Decimal `json:"balance"`
	CreditDays  int             `json:"creditDays"`
	IsActive    bool            `json:"isActive"`
	Notes       string          `json:"notes"`
	AuditFields
}

// AvailableCredit returns creditLimit - balance.
func (p *Party) AvailableCredit() decimal.Decimal {
	return p.CreditLimit.Sub(p.Balance)
}

// DocumentStatus is the payment state of a receivable or payable.
type DocumentStatus string

const (
	DocumentPending DocumentStatus = "PENDING"
	DocumentPartial DocumentStatus = "PARTIAL"
	DocumentPaid    DocumentStatus = "PAID"
	DocumentVoided  DocumentStatus = "VOIDED"
)

// OpenDocument is a receivable (customer party) or payable (supplier party).
// RemainingAmount is always originalAmount - paidAmount; overdue is derived
// at read time, never stored.
type OpenDocument struct {
	DocumentID      string          `json:"documentID"`
	PartyID         string          `json:"partyID"`
	DocumentNumber  string          `json:"documentNumber"` // Unique
	IssueDate       time.Time       `json:"issueDate"`
	DueDate         time.Time       `json:"dueDate"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          DocumentStatus  `json:"status"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes"`
	AuditFields
}

// IsOverdue reports whether the document is past due, evaluated against now.
// Only pending documents can be overdue.
func (d *OpenDocument) IsOverdue(now time.Time) bool {
	return d.Status == DocumentPending && now.Truncate(24*time.Hour).After(d.DueDate)
}

// DaysLate returns how many whole days past due the document is, zero when
// not overdue.
func (d *OpenDocument) DaysLate(now time.Time) int64 {
	if !d.IsOverdue(now) {
		return 0
	}
	return int64(now.Truncate(24*time.Hour).Sub(d.DueDate).Hours() / 24)
}

// ApplyPayment adds amount to paidAmount and recomputes remaining and status.
func (d *OpenDocument) ApplyPayment(amount decimal.Decimal) {
	d.PaidAmount = d.PaidAmount.Add(amount)
	d.RemainingAmount = d.OriginalAmount.Sub(d.PaidAmount)
	switch {
	case d.RemainingAmount.LessThanOrEqual(decimal.Zero):
		d.Status = DocumentPaid
	case d.PaidAmount.GreaterThan(decimal.Zero):
		d.Status = DocumentPartial
	default:
		d.Status = DocumentPending
	}
}
