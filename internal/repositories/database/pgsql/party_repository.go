package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	"github.com/SergioDaniel16/mipymes/internal/models"
	"github.com/SergioDaniel16/mipymes/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const partyColumns = `party_id, kind, code, name, tax_id, phone, email, address, credit_limit, balance, credit_days, is_active, notes, created_at, created_by, last_updated_at, last_updated_by`

const documentColumns = `document_id, party_id, document_number, issue_date, due_date, original_amount, paid_amount, remaining_amount, status, description, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for customers, suppliers
// and their open documents.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Kind,
		&m.Code,
		&m.Name,
		&m.TaxID,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.CreditLimit,
		&m.Balance,
		&m.CreditDays,
		&m.IsActive,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectParties(rows pgx.Rows) ([]domain.Party, error) {
	defer rows.Close()
	parties := []domain.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, mapping.ToDomainParty(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}
	return parties, nil
}

func scanDocument(row pgx.Row) (models.OpenDocument, error) {
	var m models.OpenDocument
	err := row.Scan(
		&m.DocumentID,
		&m.PartyID,
		&m.DocumentNumber,
		&m.IssueDate,
		&m.DueDate,
		&m.OriginalAmount,
		&m.PaidAmount,
		&m.RemainingAmount,
		&m.Status,
		&m.Description,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectDocuments(rows pgx.Rows) ([]domain.OpenDocument, error) {
	defer rows.Close()
	documents := []domain.OpenDocument{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, mapping.ToDomainOpenDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return documents, nil
}

// SaveParty inserts a new customer or supplier.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Kind,
		m.Code,
		m.Name,
		m.TaxID,
		m.Phone,
		m.Email,
		m.Address,
		m.CreditLimit,
		m.Balance,
		m.CreditDays,
		m.IsActive,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s code %s already registered", apperrors.ErrDuplicate, m.Kind, m.Code)
		}
		return fmt.Errorf("failed to insert party %s: %w", m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// FindPartyByCode retrieves a party by code. Codes are unique within a kind,
// so a customer and a supplier may share one.
func (r *PgxPartyRepository) FindPartyByCode(ctx context.Context, kind domain.PartyKind, code string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE kind = $1 AND code = $2;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, string(kind), code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s with code %s: %w", kind, code, err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// ListParties lists parties of a kind ordered by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE kind = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	return collectParties(rows)
}

// SearchPartiesByName retrieves active parties of a kind whose name matches,
// case insensitively.
func (r *PgxPartyRepository) SearchPartiesByName(ctx context.Context, kind domain.PartyKind, name string) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE kind = $1 AND is_active = TRUE AND name ILIKE '%' || $2 || '%'
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), name)
	if err != nil {
		return nil, fmt.Errorf("failed to search parties: %w", err)
	}
	return collectParties(rows)
}

// UpdateParty updates master data of a party. The running balance is managed
// exclusively by SaveDocument and ApplyDocumentPayment.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET code = $2, name = $3, tax_id = $4, phone = $5, email = $6, address = $7, credit_limit = $8, credit_days = $9, is_active = $10, notes = $11, last_updated_at = $12, last_updated_by = $13
		WHERE party_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Code,
		m.Name,
		m.TaxID,
		m.Phone,
		m.Email,
		m.Address,
		m.CreditLimit,
		m.CreditDays,
		m.IsActive,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s code %s already registered", apperrors.ErrDuplicate, m.Kind, m.Code)
		}
		return fmt.Errorf("failed to update party %s: %w", m.PartyID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateParty marks a party inactive, keeping its document history.
func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE party_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, partyID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveDocument inserts the document and adds its original amount to the
// owning party's running balance in one transaction.
func (r *PgxPartyRepository) SaveDocument(ctx context.Context, document domain.OpenDocument) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOpenDocument(document)
	insertQuery := `
		INSERT INTO open_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.DocumentID,
		m.PartyID,
		m.DocumentNumber,
		m.IssueDate,
		m.DueDate,
		m.OriginalAmount,
		m.PaidAmount,
		m.RemainingAmount,
		m.Status,
		m.Description,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: document number %s already registered", apperrors.ErrDuplicate, m.DocumentNumber)
		}
		return fmt.Errorf("failed to insert document %s: %w", m.DocumentID, err)
	}

	balanceQuery := `
		UPDATE parties
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	ct, err := tx.Exec(ctx, balanceQuery, m.PartyID, m.OriginalAmount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance of party %s: %w", m.PartyID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ApplyDocumentPayment locks the document row, applies the payment to its
// paid/remaining amounts and status, and decreases the party balance, all in
// one transaction.
func (r *PgxPartyRepository) ApplyDocumentPayment(ctx context.Context, documentID string, amount decimal.Decimal, userID string, now time.Time) (*domain.OpenDocument, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + documentColumns + ` FROM open_documents WHERE document_id = $1 FOR UPDATE;`
	m, err := scanDocument(tx.QueryRow(ctx, lockQuery, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock document %s: %w", documentID, err)
	}

	doc := mapping.ToDomainOpenDocument(m)
	if doc.Status == domain.DocumentPaid || doc.Status == domain.DocumentVoided {
		return nil, fmt.Errorf("%w: document %s is %s", apperrors.ErrConflict, documentID, doc.Status)
	}
	if amount.GreaterThan(doc.RemainingAmount) {
		return nil, fmt.Errorf("%w: payment %s exceeds remaining %s", apperrors.ErrValidation, amount, doc.RemainingAmount)
	}
	doc.ApplyPayment(amount)
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = userID

	updateQuery := `
		UPDATE open_documents
		SET paid_amount = $2, remaining_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		documentID,
		doc.PaidAmount,
		doc.RemainingAmount,
		string(doc.Status),
		now,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}

	balanceQuery := `
		UPDATE parties
		SET balance = balance - $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	if _, err := tx.Exec(ctx, balanceQuery, doc.PartyID, amount, now, userID); err != nil {
		return nil, fmt.Errorf("failed to update balance of party %s: %w", doc.PartyID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (r *PgxPartyRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.OpenDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM open_documents WHERE document_id = $1;`

	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	d := mapping.ToDomainOpenDocument(m)
	return &d, nil
}

// FindDocumentByNumber retrieves a document by its unique number.
func (r *PgxPartyRepository) FindDocumentByNumber(ctx context.Context, documentNumber string) (*domain.OpenDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM open_documents WHERE document_number = $1;`

	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document number %s: %w", documentNumber, err)
	}
	d := mapping.ToDomainOpenDocument(m)
	return &d, nil
}

// ListDocumentsByParty returns every document of a party, newest first.
func (r *PgxPartyRepository) ListDocumentsByParty(ctx context.Context, partyID string) ([]domain.OpenDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM open_documents
		WHERE party_id = $1
		ORDER BY issue_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for party %s: %w", partyID, err)
	}
	return collectDocuments(rows)
}

// ListOpenDocuments returns pending and partially paid documents of a kind,
// oldest due date first.
func (r *PgxPartyRepository) ListOpenDocuments(ctx context.Context, kind domain.PartyKind) ([]domain.OpenDocument, error) {
	query := `
		SELECT d.document_id, d.party_id, d.document_number, d.issue_date, d.due_date, d.original_amount, d.paid_amount, d.remaining_amount, d.status, d.description, d.notes, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
		FROM open_documents d
		JOIN parties p ON p.party_id = d.party_id
		WHERE p.kind = $1 AND d.status IN ($2, $3)
		ORDER BY d.due_date, d.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), domain.DocumentPending, domain.DocumentPartial)
	if err != nil {
		return nil, fmt.Errorf("failed to query open documents: %w", err)
	}
	return collectDocuments(rows)
}
