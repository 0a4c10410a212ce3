package dto

import (
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit or credit line of an entry request.
type CreateJournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Side        domain.LineSide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to record a journal
// entry. Totals are derived from the lines, never taken from the client.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time                  `json:"entryDate" binding:"required"`
	Description string                     `json:"description" binding:"required"`
	Reference   string                     `json:"reference"`
	EntryType   domain.EntryType           `json:"entryType" binding:"required,oneof=OPENING OPERATION ADJUSTMENT CLOSING"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
	CreatedBy   string                     `json:"createdBy"`
}

// PostJournalEntryRequest carries the actor applying an entry to the ledger.
type PostJournalEntryRequest struct {
	PostedBy string `json:"postedBy"`
}

// JournalLineResponse mirrors domain.JournalLine.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Side        domain.LineSide `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Order       int             `json:"order"`
}

// JournalEntryResponse mirrors domain.JournalEntry.
type JournalEntryResponse struct {
	EntryID      string                `json:"entryID"`
	EntryNumber  int64                 `json:"entryNumber"`
	EntryDate    time.Time             `json:"entryDate"`
	Description  string                `json:"description"`
	Reference    string                `json:"reference"`
	EntryType    domain.EntryType      `json:"entryType"`
	Status       domain.EntryStatus    `json:"status"`
	TotalDebits  decimal.Decimal       `json:"totalDebits"`
	TotalCredits decimal.Decimal       `json:"totalCredits"`
	Lines        []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ToJournalLineResponse converts a domain line to its response DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Side:        line.Side,
		Amount:      line.Amount,
		Description: line.Description,
		Order:       line.Order,
	}
}

// ToJournalEntryResponse converts a domain entry, including its lines when
// they are loaded.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	res := JournalEntryResponse{
		EntryID:      entry.EntryID,
		EntryNumber:  entry.EntryNumber,
		EntryDate:    entry.EntryDate,
		Description:  entry.Description,
		Reference:    entry.Reference,
		EntryType:    entry.EntryType,
		Status:       entry.Status,
		TotalDebits:  entry.TotalDebits,
		TotalCredits: entry.TotalCredits,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.LastUpdatedAt,
	}
	if len(entry.Lines) > 0 {
		res.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			res.Lines[i] = ToJournalLineResponse(&entry.Lines[i])
		}
	}
	return res
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
