package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccountType classifies a bank account.
type BankAccountType string

const (
	CheckingAccount BankAccountType = "CHECKING"
	SavingsAccount  BankAccountType = "SAVINGS"
	TermDeposit     BankAccountType = "TERM_DEPOSIT"
)

// BankAccount tracks a bank or cash-in-bank position. BooksBalance is the
// running balance per the company's books; BankBalance is the last figure
// reported by the bank statement, supplied externally for reconciliation.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"` // Unique
	AccountType   BankAccountType `json:"accountType"`
	BooksBalance  decimal.Decimal `json:"booksBalance"`
	BankBalance   decimal.Decimal `json:"bankBalance"`
	IsActive      bool            `json:"isActive"`
	Description   string          `json:"description"`
	AuditFields
}

// ReconciliationDifference returns booksBalance - bankBalance.
func (a *BankAccount) ReconciliationDifference() decimal.Decimal {
	return a.BooksBalance.Sub(a.BankBalance)
}

// IsReconciled reports whether books and bank agree within the standard
// 0.01 tolerance. A difference of exactly one cent still counts as
// reconciled.
func (a *BankAccount) IsReconciled() bool {
	return a.ReconciliationDifference().Abs().LessThanOrEqual(ReconciliationTolerance)
}

// ReconciliationTolerance is the epsilon used when comparing derived monetary
// figures (trial balance totals, bank reconciliation). Deliberately not exact
// equality, to absorb rounding in divided figures.
var ReconciliationTolerance = decimal.NewFromFloat(0.01)

// BankMovementType tags a bank movement as a debit effect (decreases the
// books balance) or a credit effect (increases it).
type BankMovementType string

const (
	Deposit        BankMovementType = "DEPOSIT"
	CheckIssued    BankMovementType = "CHECK_ISSUED"
	TransferIn     BankMovementType = "TRANSFER_IN"
	TransferOut    BankMovementType = "TRANSFER_OUT"
	BankDebitNote  BankMovementType = "BANK_DEBIT_NOTE"
	BankCreditNote BankMovementType = "BANK_CREDIT_NOTE"
	BankFee        BankMovementType = "BANK_FEE"
	InterestEarned BankMovementType = "INTEREST_EARNED"
)

// bankDebitEffects is the behavior table for movement types: true means the
// movement decreases the books balance.
var bankDebitEffects = map[BankMovementType]bool{
	Deposit:        false,
	CheckIssued:    true,
	TransferIn:     false,
	TransferOut:    true,
	BankDebitNote:  true,
	BankCreditNote: false,
	BankFee:        true,
	InterestEarned: false,
}

// IsDebitEffect reports whether the movement type decreases the books balance.
func (t BankMovementType) IsDebitEffect() bool {
	return bankDebitEffects[t]
}

// IsCreditEffect reports whether the movement type increases the books balance.
func (t BankMovementType) IsCreditEffect() bool {
	debit, known := bankDebitEffects[t]
	return known && !debit
}

// IsValid reports whether the movement type is one of the known variants.
func (t BankMovementType) IsValid() bool {
	_, ok := bankDebitEffects[t]
	return ok
}

// BankMovementStatus is the reconciliation state of a movement.
type BankMovementStatus string

const (
	MovementPending    BankMovementStatus = "PENDING"
	MovementReconciled BankMovementStatus = "RECONCILED"
	MovementVoided     BankMovementStatus = "VOIDED"
)

// BankMovement is an immutable entry in a bank account's movement log. Its
// effect on the books balance is applied once, at registration.
type BankMovement struct {
	MovementID     string             `json:"movementID"`
	BankAccountID  string             `json:"bankAccountID"`
	MovementType   BankMovementType   `json:"movementType"`
	MovementDate   time.Time          `json:"movementDate"`
	Amount         decimal.Decimal    `json:"amount"`
	Description    string             `json:"description"`
	DocumentNumber string             `json:"documentNumber"` // Check number, deposit slip, etc.
	Beneficiary    string             `json:"beneficiary"`    // For checks
	Status         BankMovementStatus `json:"status"`
	ReconciledAt   *time.Time         `json:"reconciledAt,omitempty"`
	Notes          string             `json:"notes"`
	AuditFields
}

// SignedAmount returns the movement amount with the sign of its effect on
// the books balance.
func (m *BankMovement) SignedAmount() decimal.Decimal {
	if m.MovementType.IsDebitEffect() {
		return m.Amount.Neg()
	}
	return m.Amount
}
