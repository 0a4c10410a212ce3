package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
//
// Draft entries have no effect on account balances. Posting applies the
// entry to the catalog and is final; Void is reserved for annulled entries
// and excluded from journal listings.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Validated EntryStatus = "VALIDATED"
	Posted    EntryStatus = "POSTED"
	Void      EntryStatus = "VOID"
)

// EntryType classifies a journal entry within the accounting cycle.
type EntryType string

const (
	Opening    EntryType = "OPENING"
	Operation  EntryType = "OPERATION"
	Adjustment EntryType = "ADJUSTMENT"
	Closing    EntryType = "CLOSING"
)

// LineSide indicates whether a journal line is a debit or a credit.
type LineSide string

const (
	Debit  LineSide = "DEBIT"
	Credit LineSide = "CREDIT"
)

// JournalEntry represents a single, balanced financial event in the journal.
// EntryNumber is the gapless sequential number of the entry in the book.
type JournalEntry struct {
	EntryID      string          `json:"entryID"`
	EntryNumber  int64           `json:"entryNumber"`
	EntryDate    time.Time       `json:"entryDate"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"` // External document (invoice, receipt), optional
	EntryType    EntryType       `json:"entryType"`
	Status       EntryStatus     `json:"status"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Lines        []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// IsBalanced reports whether the cached totals satisfy the double-entry law.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebits.Equal(e.TotalCredits)
}

// RecalculateTotals recomputes the cached totals from the lines.
func (e *JournalEntry) RecalculateTotals() {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range e.Lines {
		if line.Side == Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	e.TotalDebits = debits
	e.TotalCredits = credits
}

// JournalLine is a single debit or credit line within a journal entry.
// Amount is always positive; the side carries the sign.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Side        LineSide        `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"` // Optional, falls back to the entry description
	Order       int             `json:"order"`
	AuditFields
}

// EffectiveDescription returns the line description, falling back to the
// owning entry's description when the line has none.
func (l *JournalLine) EffectiveDescription(entryDescription string) string {
	if strings.TrimSpace(l.Description) != "" {
		return l.Description
	}
	return entryDescription
}
