package mapping

import (
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Lines are mapped separately; they live in their own table.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		EntryNumber:  d.EntryNumber,
		EntryDate:    d.EntryDate,
		Description:  d.Description,
		Reference:    d.Reference,
		EntryType:    models.EntryType(d.EntryType),
		Status:       models.EntryStatus(d.Status),
		TotalDebits:  d.TotalDebits,
		TotalCredits: d.TotalCredits,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		EntryNumber:  m.EntryNumber,
		EntryDate:    m.EntryDate,
		Description:  m.Description,
		Reference:    m.Reference,
		EntryType:    domain.EntryType(m.EntryType),
		Status:       domain.EntryStatus(m.Status),
		TotalDebits:  m.TotalDebits,
		TotalCredits: m.TotalCredits,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Side:        models.LineSide(d.Side),
		Amount:      d.Amount,
		Description: d.Description,
		LineOrder:   d.Order,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Side:        domain.LineSide(m.Side),
		Amount:      m.Amount,
		Description: m.Description,
		Order:       m.LineOrder,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model lines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
