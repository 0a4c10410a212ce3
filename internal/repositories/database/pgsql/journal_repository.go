package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

const entryColumns = `entry_id, entry_number, entry_date, description, reference, entry_type, status, total_debits, total_credits, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, side, amount, description, line_order, created_at, created_by, last_updated_at, last_updated_by`

// maxNumberingAttempts bounds the retry loop for sequential entry number
// assignment under concurrent inserts.
const maxNumberingAttempts = 3

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal data.
// It needs the account repository to lock and update balances when posting.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.EntryType,
		&m.Status,
		&m.TotalDebits,
		&m.TotalCredits,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()
	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

// SaveEntry persists a new draft entry and its lines. The sequential entry
// number is taken as MAX(entry_number)+1 inside the insert transaction; the
// unique index on entry_number turns a concurrent duplicate into a 23505,
// which is retried a bounded number of times.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error) {
	var lastErr error
	for attempt := 0; attempt < maxNumberingAttempts; attempt++ {
		number, err := r.saveEntryOnce(ctx, entry, lines)
		if err == nil {
			return number, nil
		}
		lastErr = err
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
			return 0, err
		}
		// Lost the race for the next number, take a fresh one.
	}
	return 0, fmt.Errorf("failed to assign entry number after %d attempts: %w", maxNumberingAttempts, lastErr)
}

func (r *PgxJournalRepository) saveEntryOnce(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, (SELECT COALESCE(MAX(entry_number), 0) + 1 FROM journal_entries), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING entry_number;
	`
	var entryNumber int64
	err = tx.QueryRow(ctx, entryQuery,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.EntryType,
		m.Status,
		m.TotalDebits,
		m.TotalCredits,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&entryNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountID,
			ml.Side,
			ml.Amount,
			ml.Description,
			ml.LineOrder,
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close journal line batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryNumber, nil
}

// PostEntry applies the balance deltas and the DRAFT/VALIDATED -> POSTED
// transition in one transaction. Account rows are locked first, so two
// concurrent posts serialize and neither sees stale balances.
func (r *PgxJournalRepository) PostEntry(ctx context.Context, entryID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The status check is part of the UPDATE so a concurrent post of the
	// same entry loses cleanly instead of double-applying.
	statusQuery := `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status IN ($5, $6);
	`
	ct, err := tx.Exec(ctx, statusQuery,
		entryID,
		models.Posted,
		now,
		userID,
		models.Draft,
		models.Validated,
	)
	if err != nil {
		return fmt.Errorf("failed to update status for entry %s: %w", entryID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not in a postable status", apperrors.ErrConflict, entryID)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	// Stable lock order across concurrent posts avoids deadlocks.
	sort.Strings(accountIDs)
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for posting: %w", err)
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry header by ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	d := mapping.ToDomainJournalEntry(m)
	return &d, nil
}

// FindEntryByNumber retrieves an entry header by its sequential number.
func (r *PgxJournalRepository) FindEntryByNumber(ctx context.Context, entryNumber int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_number = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry number %d: %w", entryNumber, err)
	}
	d := mapping.ToDomainJournalEntry(m)
	return &d, nil
}

// FindLinesByEntryID retrieves an entry's lines in their recorded order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_order;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.Side,
			&m.Amount,
			&m.Description,
			&m.LineOrder,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}

// ListEntries returns a page of the journal, newest first, excluding VOID.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE status <> $1
		ORDER BY entry_number DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, models.Void, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	return collectEntries(rows)
}

// FindEntriesByDateRange returns the libro diario for a period in entry
// number order, excluding VOID.
func (r *PgxJournalRepository) FindEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE status <> $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_number;
	`
	rows, err := r.Pool.Query(ctx, query, models.Void, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries by date range: %w", err)
	}
	return collectEntries(rows)
}

// SearchEntriesByDescription returns entries whose description matches,
// case insensitively, excluding VOID.
func (r *PgxJournalRepository) SearchEntriesByDescription(ctx context.Context, fragment string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE status <> $1 AND description ILIKE '%' || $2 || '%'
		ORDER BY entry_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, models.Void, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search journal entries: %w", err)
	}
	return collectEntries(rows)
}
