package repositories

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyRepositoryFacade defines persistence operations for customers,
// suppliers and their open documents (receivables and payables).
type PartyRepositoryFacade interface {
	SaveParty(ctx context.Context, party domain.Party) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	FindPartyByCode(ctx context.Context, kind domain.PartyKind, code string) (*domain.Party, error)
	ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool) ([]domain.Party, error)
	SearchPartiesByName(ctx context.Context, kind domain.PartyKind, name string) ([]domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) error
	DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error

	// SaveDocument inserts the document and increases the owning party's
	// running balance by the original amount in one transaction.
	SaveDocument(ctx context.Context, document domain.OpenDocument) error
	// ApplyDocumentPayment updates paid/remaining/status on the document and
	// decreases the party balance by amount, atomically. Returns the updated
	// document.
	ApplyDocumentPayment(ctx context.Context, documentID string, amount decimal.Decimal, userID string, now time.Time) (*domain.OpenDocument, error)

	FindDocumentByID(ctx context.Context, documentID string) (*domain.OpenDocument, error)
	FindDocumentByNumber(ctx context.Context, documentNumber string) (*domain.OpenDocument, error)
	ListDocumentsByParty(ctx context.Context, partyID string) ([]domain.OpenDocument, error)
	ListOpenDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error)
}
