package services

import (
	"context"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/dto"
)

// PartyReaderSvc defines read operations for customers and suppliers
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// GetPartyByCode retrieves a party of the given kind by its code.
	GetPartyByCode(ctx context.Context, kind domain.PartyKind, code string) (*domain.Party, error)

	// ListParties retrieves parties of a kind, optionally active only.
	ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool) ([]domain.Party, error)

	// SearchParties retrieves parties whose name matches the query.
	SearchParties(ctx context.Context, kind domain.PartyKind, query string) ([]domain.Party, error)

	// GetDocumentByID retrieves a specific document.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.OpenDocument, error)

	// GetDocumentByNumber retrieves a document by its unique number.
	GetDocumentByNumber(ctx context.Context, documentNumber string) (*domain.OpenDocument, error)

	// ListDocumentsByParty retrieves every document of a party.
	ListDocumentsByParty(ctx context.Context, partyID string) ([]domain.OpenDocument, error)

	// ListOpenDocuments retrieves pending and partially paid documents
	// for a party kind.
	ListOpenDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error)

	// ListOverdueDocuments retrieves open documents past their due date.
	ListOverdueDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error)

	// AgingSummary summarizes open documents for a party kind.
	AgingSummary(ctx context.Context, kind domain.PartyKind) (*domain.AgingSummary, error)
}

// PartyWriterSvc defines write operations for customers and suppliers
type PartyWriterSvc interface {
	// RegisterParty persists a new customer or supplier.
	RegisterParty(ctx context.Context, req dto.RegisterPartyRequest) (*domain.Party, error)

	// UpdateParty updates party details (excluding the balance).
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updatedBy string) (*domain.Party, error)

	// DeactivateParty marks a party as inactive.
	DeactivateParty(ctx context.Context, partyID string, requestedBy string) error

	// RegisterDocument records a new open document and increases the
	// party balance by its amount.
	RegisterDocument(ctx context.Context, partyID string, req dto.RegisterDocumentRequest) (*domain.OpenDocument, error)

	// ApplyPayment applies a full or partial payment to a document and
	// decreases the party balance accordingly.
	ApplyPayment(ctx context.Context, documentID string, req dto.ApplyPaymentRequest) (*domain.OpenDocument, error)
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
