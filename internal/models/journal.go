package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Validated EntryStatus = "VALIDATED"
	Posted    EntryStatus = "POSTED"
	Void      EntryStatus = "VOID"
)

// EntryType classifies a journal entry.
type EntryType string

const (
	Opening    EntryType = "OPENING"
	Operation  EntryType = "OPERATION"
	Adjustment EntryType = "ADJUSTMENT"
	Closing    EntryType = "CLOSING"
)

// LineSide marks a journal line as a debit or a credit.
type LineSide string

const (
	Debit  LineSide = "DEBIT"
	Credit LineSide = "CREDIT"
)

// JournalEntry represents a single, balanced financial event.
type JournalEntry struct {
	EntryID      string          `db:"entry_id"`
	EntryNumber  int64           `db:"entry_number"` // Sequential, unique
	EntryDate    time.Time       `db:"entry_date"`
	Description  string          `db:"description"`
	Reference    string          `db:"reference"`
	EntryType    EntryType       `db:"entry_type"`
	Status       EntryStatus     `db:"status"`
	TotalDebits  decimal.Decimal `db:"total_debits"`
	TotalCredits decimal.Decimal `db:"total_credits"`
	AuditFields
}

// JournalLine represents one debit or credit line of an entry.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Side        LineSide        `db:"side"`
	Amount      decimal.Decimal `db:"amount"` // Always positive
	Description string          `db:"description"`
	LineOrder   int             `db:"line_order"`
	AuditFields
}
