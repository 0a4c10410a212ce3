package repositories

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalRepositoryFacade defines persistence operations for journal entries
// and their lines.
type JournalRepositoryFacade interface {
	// SaveEntry persists a new draft entry and its lines, assigning the next
	// sequential entry number atomically. It returns the assigned number.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error)

	// PostEntry atomically applies the balance deltas to the referenced
	// accounts and transitions the entry to POSTED. Either every effect and
	// the status change apply, or none do.
	PostEntry(ctx context.Context, entryID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error

	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindEntryByNumber(ctx context.Context, entryNumber int64) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries returns the journal ordered by entry number, excluding VOID.
	ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error)
	FindEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)
	SearchEntriesByDescription(ctx context.Context, fragment string) ([]domain.JournalEntry, error)
}
