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
	"github.com/SergioDaniel16/mipymes/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryUnbalanced    = errors.New("journal entry does not balance")
	ErrEntryMinLines      = errors.New("journal entry must have at least two lines")
	ErrEntryMinAccounts   = errors.New("journal entry must affect at least two different accounts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDescriptionMissing = errors.New("journal entry description is required")
	ErrAlreadyPosted      = errors.New("journal entry is already posted")
	ErrEntryVoided        = errors.New("journal entry is void")
)

// journalService provides the journal entry engine: recording balanced
// entries and posting them to the chart of accounts.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry records a new journal entry in DRAFT status after validating
// the double-entry law. The repository assigns the sequential entry number.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) < 2 {
		return nil, ErrEntryMinLines
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionMissing
	}

	// The entry must touch at least two different accounts.
	accountSet := make(map[string]bool)
	for _, lineReq := range req.Lines {
		accountSet[lineReq.AccountID] = true
	}
	if len(accountSet) < 2 {
		return nil, ErrEntryMinAccounts
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     req.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: req.CreatedBy,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		if lineReq.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, lineReq.AccountID)
		}
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Side:        lineReq.Side,
			Amount:      lineReq.Amount,
			Description: lineReq.Description,
			Order:       i + 1,
			AuditFields: audit,
		}
		accountIDs = append(accountIDs, lineReq.AccountID)
	}

	totalDebits, totalCredits, err := accounting.ValidateEntryBalance(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryUnbalanced, err.Error())
	}

	// All referenced accounts must exist and be active.
	uniqueIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for entry creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	entry := domain.JournalEntry{
		EntryID:      entryID,
		EntryDate:    req.EntryDate,
		Description:  req.Description,
		Reference:    req.Reference,
		EntryType:    req.EntryType,
		Status:       domain.Draft,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Lines:        lines,
		AuditFields:  audit,
	}

	entryNumber, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	entry.EntryNumber = entryNumber

	logger.Info("Journal entry recorded",
		slog.String("entry_id", entryID),
		slog.Int64("entry_number", entryNumber),
		slog.String("total", totalDebits.String()),
	)
	return &entry, nil
}

// PostEntry applies a draft or validated entry to the chart of accounts and
// transitions it to POSTED. The balance deltas for all lines are computed
// here and applied atomically by the repository; a failure leaves every
// balance and the entry status untouched.
func (s *journalService) PostEntry(ctx context.Context, entryID string, postedBy string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	switch entry.Status {
	case domain.Posted:
		return nil, fmt.Errorf("%w: entry %d", ErrAlreadyPosted, entry.EntryNumber)
	case domain.Void:
		return nil, fmt.Errorf("%w: entry %d", ErrEntryVoided, entry.EntryNumber)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	entry.Lines = lines

	// Posting re-checks balance; a stored draft could have been tampered
	// with outside the service.
	if _, _, err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryUnbalanced, err.Error())
	}

	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	// Net balance change per account, signed by account type and line side.
	// Accounts must still exist and be active at posting time; one could
	// have been deactivated since the draft was created.
	balanceChanges := make(map[string]decimal.Decimal)
	for _, line := range lines {
		acc, found := accountsMap[line.AccountID]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, line.AccountID)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, line.AccountID)
		}
		signed, err := accounting.SignedEffect(line, acc.AccountType)
		if err != nil {
			logger.Error("Error calculating signed effect", slog.String("line_id", line.LineID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		if current, ok := balanceChanges[line.AccountID]; ok {
			balanceChanges[line.AccountID] = current.Add(signed)
		} else {
			balanceChanges[line.AccountID] = signed
		}
	}

	now := time.Now().UTC()
	if err := s.journalRepo.PostEntry(ctx, entryID, balanceChanges, postedBy, now); err != nil {
		logger.Error("Failed to post journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post journal entry: %w", err)
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = postedBy

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.Int64("entry_number", entry.EntryNumber),
		slog.Int("accounts_affected", len(balanceChanges)),
	)
	return entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// GetEntryByNumber retrieves an entry by its sequential number, with lines.
func (s *journalService) GetEntryByNumber(ctx context.Context, entryNumber int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByNumber(ctx, entryNumber)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entry.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves the journal page by page, newest first, excluding
// voided entries.
func (s *journalService) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListEntries(ctx, limit, offset)
}

// ListEntriesByDateRange retrieves the libro diario for a period.
func (s *journalService) ListEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	return s.journalRepo.FindEntriesByDateRange(ctx, from, to)
}

// SearchEntries retrieves entries whose description contains the query.
func (s *journalService) SearchEntries(ctx context.Context, query string) ([]domain.JournalEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	return s.journalRepo.SearchEntriesByDescription(ctx, query)
}

// uniqueStrings returns the distinct values of a slice, preserving order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
