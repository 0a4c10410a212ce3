package models

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

// AccountNature defines which side of an entry increases the account.
type AccountNature string

const (
	DebitNatured  AccountNature = "DEBIT_NATURED"
	CreditNatured AccountNature = "CREDIT_NATURED"
)

// Account represents one row of the chart of accounts.
type Account struct {
	AccountID   string          `db:"account_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	AccountType AccountType     `db:"account_type"`
	Nature      AccountNature   `db:"nature"`
	Balance     decimal.Decimal `db:"balance"` // Persisted running balance
	IsActive    bool            `db:"is_active"`
	Description string          `db:"description"`
	AuditFields
}
