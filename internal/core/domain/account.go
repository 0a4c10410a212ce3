package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountNature defines whether an account's balance conventionally
// increases with debits or with credits.
type AccountNature string

const (
	DebitNatured  AccountNature = "DEBIT_NATURED"
	CreditNatured AccountNature = "CREDIT_NATURED"
)

// Account represents an entry in the chart of accounts.
// Balance is a live running total, mutated only by the posting engine
// (and manual adjustment); accounts are deactivated, never deleted.
type Account struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"` // Unique numeric-style code, e.g. "1001"
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Nature      AccountNature   `json:"nature"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	Description string          `json:"description"`
	AuditFields
}
