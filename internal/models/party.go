package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes customers from suppliers.
type PartyKind string

// DocumentStatus is the payment state of a receivable or payable.
type DocumentStatus string

// Party represents a customer or supplier master record.
type Party struct {
	PartyID     string          `db:"party_id"`
	Kind        PartyKind       `db:"kind"`
	Code        string          `db:"code"` // Unique within the kind
	Name        string          `db:"name"`
	TaxID       string          `db:"tax_id"`
	Phone       string          `db:"phone"`
	Email       string          `db:"email"`
	Address     string          `db:"address"`
	CreditLimit decimal.Decimal `db:"credit_limit"`
	Balance     decimal.Decimal `db:"balance"` // Running sum of open documents
	CreditDays  int             `db:"credit_days"`
	IsActive    bool            `db:"is_active"`
	Notes       string          `db:"notes"`
	AuditFields
}

// OpenDocument represents a receivable or payable document.
type OpenDocument struct {
	DocumentID      string          `db:"document_id"`
	PartyID         string          `db:"party_id"`
	DocumentNumber  string          `db:"document_number"` // Unique
	IssueDate       time.Time       `db:"issue_date"`
	DueDate         time.Time       `db:"due_date"`
	OriginalAmount  decimal.Decimal `db:"original_amount"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          DocumentStatus  `db:"status"`
	Description     string          `db:"description"`
	Notes           string          `db:"notes"`
	AuditFields
}
