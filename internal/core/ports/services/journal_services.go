package services

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// GetEntryByNumber retrieves a specific entry by its sequential number.
	GetEntryByNumber(ctx context.Context, entryNumber int64) (*domain.JournalEntry, error)

	// ListEntries retrieves entries in reverse chronological order,
	// excluding voided ones.
	ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error)

	// ListEntriesByDateRange retrieves the libro diario for a period.
	ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)

	// SearchEntries retrieves entries whose description matches the query.
	SearchEntries(ctx context.Context, query string) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry records a new balanced entry in DRAFT status, assigning
	// the next sequential entry number.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// PostEntry applies an entry's lines to its account balances and
	// transitions it to POSTED. Atomic: either every balance moves and the
	// status changes, or nothing does.
	PostEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
