package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrPartyInactive    = errors.New("party is inactive")
	ErrDocumentSettled  = errors.New("document is already settled")
	ErrPaymentTooLarge  = errors.New("payment exceeds the remaining amount")
	ErrDueBeforeIssue   = errors.New("due date precedes issue date")
	ErrUnknownPartyKind = errors.New("unknown party kind")
)

// partyService manages customers, suppliers and their open documents, the
// receivables and payables subsidiary ledger.
type partyService struct {
	partyRepo   portsrepo.PartyRepositoryFacade
	companyName string
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, companyName string) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo, companyName: companyName}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

func validPartyKind(kind domain.PartyKind) bool {
	return kind == domain.CustomerParty || kind == domain.SupplierParty
}

// RegisterParty creates a new customer or supplier master record.
func (s *partyService) RegisterParty(ctx context.Context, req dto.RegisterPartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !validPartyKind(req.Kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPartyKind, req.Kind)
	}
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
	}

	existing, err := s.partyRepo.FindPartyByCode(ctx, req.Kind, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check party code uniqueness", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check party code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s code %s", apperrors.ErrDuplicate, req.Kind, req.Code)
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        req.Kind,
		Code:        req.Code,
		Name:        req.Name,
		TaxID:       req.TaxID,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		Balance:     decimal.Zero,
		CreditDays:  req.CreditDays,
		IsActive:    true,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s code %s", apperrors.ErrDuplicate, req.Kind, req.Code)
		}
		logger.Error("Failed to save party", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	logger.Info("Party registered", slog.String("party_id", party.PartyID), slog.String("kind", string(party.Kind)))
	return &party, nil
}

// GetPartyByID retrieves a specific party.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

// GetPartyByCode retrieves a party of the given kind by its code.
func (s *partyService) GetPartyByCode(ctx context.Context, kind domain.PartyKind, code string) (*domain.Party, error) {
	if !validPartyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPartyKind, kind)
	}
	return s.partyRepo.FindPartyByCode(ctx, kind, code)
}

// ListParties retrieves parties of a kind.
func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool) ([]domain.Party, error) {
	if !validPartyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPartyKind, kind)
	}
	return s.partyRepo.ListParties(ctx, kind, activeOnly)
}

// SearchParties retrieves parties whose name contains the query.
func (s *partyService) SearchParties(ctx context.Context, kind domain.PartyKind, query string) ([]domain.Party, error) {
	if !validPartyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPartyKind, kind)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	return s.partyRepo.SearchPartiesByName(ctx, kind, query)
}

// UpdateParty updates party details. The balance never changes here; it
// only moves through documents and payments.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updatedBy string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
		}
		party.Name = *req.Name
	}
	if req.TaxID != nil {
		party.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		party.CreditLimit = *req.CreditLimit
	}
	if req.CreditDays != nil {
		party.CreditDays = *req.CreditDays
	}
	if req.Notes != nil {
		party.Notes = *req.Notes
	}

	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = updatedBy

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("party_id", partyID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}
	return party, nil
}

// DeactivateParty marks a party as inactive.
func (s *partyService) DeactivateParty(ctx context.Context, partyID string, requestedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return err
	}

	if err := s.partyRepo.DeactivateParty(ctx, partyID, requestedBy, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate party", slog.String("party_id", partyID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate party: %w", err)
	}

	logger.Info("Party deactivated", slog.String("party_id", partyID))
	return nil
}

// RegisterDocument records a new open document against a party. The party
// balance grows by the original amount in the same transaction. When no
// due date is supplied the party's credit days decide it.
func (s *partyService) RegisterDocument(ctx context.Context, partyID string, req dto.RegisterDocumentRequest) (*domain.OpenDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: document amount must be positive", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrPartyInactive, partyID)
	}

	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = req.IssueDate.AddDate(0, 0, party.CreditDays)
	}
	if dueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w", ErrDueBeforeIssue)
	}

	existing, err := s.partyRepo.FindDocumentByNumber(ctx, req.DocumentNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check document number uniqueness", slog.String("document_number", req.DocumentNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check document number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrDuplicate, req.DocumentNumber)
	}

	now := time.Now().UTC()
	document := domain.OpenDocument{
		DocumentID:      uuid.NewString(),
		PartyID:         partyID,
		DocumentNumber:  req.DocumentNumber,
		IssueDate:       req.IssueDate,
		DueDate:         dueDate,
		OriginalAmount:  req.Amount,
		PaidAmount:      decimal.Zero,
		RemainingAmount: req.Amount,
		Status:          domain.DocumentPending,
		Description:     req.Description,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.partyRepo.SaveDocument(ctx, document); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: document %s", apperrors.ErrDuplicate, req.DocumentNumber)
		}
		logger.Error("Failed to save document", slog.String("document_number", req.DocumentNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	logger.Info("Document registered",
		slog.String("document_id", document.DocumentID),
		slog.String("party_id", partyID),
		slog.String("amount", req.Amount.String()),
	)
	return &document, nil
}

// ApplyPayment applies a full or partial payment to a document. The
// document's paid/remaining amounts, its status and the party balance move
// together atomically in the repository.
func (s *partyService) ApplyPayment(ctx context.Context, documentID string, req dto.ApplyPaymentRequest) (*domain.OpenDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	document, err := s.partyRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document.Status == domain.DocumentPaid || document.Status == domain.DocumentVoided {
		return nil, fmt.Errorf("%w: %s", ErrDocumentSettled, documentID)
	}
	if req.Amount.GreaterThan(document.RemainingAmount) {
		return nil, fmt.Errorf("%w: payment %s, remaining %s", ErrPaymentTooLarge, req.Amount.String(), document.RemainingAmount.String())
	}

	updated, err := s.partyRepo.ApplyDocumentPayment(ctx, documentID, req.Amount, req.AppliedBy, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to apply payment", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}

	logger.Info("Payment applied",
		slog.String("document_id", documentID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// GetDocumentByID retrieves a specific document.
func (s *partyService) GetDocumentByID(ctx context.Context, documentID string) (*domain.OpenDocument, error) {
	return s.partyRepo.FindDocumentByID(ctx, documentID)
}

// GetDocumentByNumber retrieves a document by its unique number.
func (s *partyService) GetDocumentByNumber(ctx context.Context, documentNumber string) (*domain.OpenDocument, error) {
	return s.partyRepo.FindDocumentByNumber(ctx, documentNumber)
}

// ListDocumentsByParty retrieves every document of a party.
func (s *partyService) ListDocumentsByParty(ctx context.Context, partyID string) ([]domain.OpenDocument, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.partyRepo.ListDocumentsByParty(ctx, partyID)
}

// ListOpenDocuments retrieves pending and partially paid documents for a
// party kind.
func (s *partyService) ListOpenDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error) {
	if !validPartyKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPartyKind, kind)
	}
	return s.partyRepo.ListOpenDocuments(ctx, kind)
}

// ListOverdueDocuments retrieves open documents past their due date.
func (s *partyService) ListOverdueDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error) {
	open, err := s.ListOpenDocuments(ctx, kind)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	overdue := make([]domain.OpenDocument, 0)
	for _, doc := range open {
		if doc.IsOverdue(now) {
			overdue = append(overdue, doc)
		}
	}
	return overdue, nil
}

// AgingSummary totals open and overdue documents for a party kind.
func (s *partyService) AgingSummary(ctx context.Context, kind domain.PartyKind) (*domain.AgingSummary, error) {
	open, err := s.ListOpenDocuments(ctx, kind)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &domain.AgingSummary{
		CompanyName:   s.companyName,
		AsOfDate:      now,
		Kind:          kind,
		OpenDocuments: open,
		TotalOpen:     decimal.Zero,
		TotalOverdue:  decimal.Zero,
	}
	for i := range open {
		doc := &open[i]
		summary.TotalOpen = summary.TotalOpen.Add(doc.RemainingAmount)
		if doc.IsOverdue(now) {
			summary.TotalOverdue = summary.TotalOverdue.Add(doc.RemainingAmount)
			summary.OverdueCount++
		}
	}
	return summary, nil
}
