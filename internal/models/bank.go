package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccountType classifies a bank account.
type BankAccountType string

// BankMovementType classifies a movement on a bank account.
type BankMovementType string

// BankMovementStatus is the reconciliation state of a movement.
type BankMovementStatus string

// BankAccount represents one bank account of the auxiliary ledger.
type BankAccount struct {
	BankAccountID string          `db:"bank_account_id"`
	Name          string          `db:"name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"` // Unique
	AccountType   BankAccountType `db:"account_type"`
	BooksBalance  decimal.Decimal `db:"books_balance"` // Balance per our records
	BankBalance   decimal.Decimal `db:"bank_balance"`  // Balance per last statement
	IsActive      bool            `db:"is_active"`
	Description   string          `db:"description"`
	AuditFields
}

// BankMovement represents one movement on a bank account.
type BankMovement struct {
	MovementID     string             `db:"movement_id"`
	BankAccountID  string             `db:"bank_account_id"`
	MovementType   BankMovementType   `db:"movement_type"`
	MovementDate   time.Time          `db:"movement_date"`
	Amount         decimal.Decimal    `db:"amount"` // Always positive
	Description    string             `db:"description"`
	DocumentNumber string             `db:"document_number"`
	Beneficiary    string             `db:"beneficiary"`
	Status         BankMovementStatus `db:"status"`
	ReconciledAt   *time.Time         `db:"reconciled_at"` // Nullable
	Notes          string             `db:"notes"`
	AuditFields
}
