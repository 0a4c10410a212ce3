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

const bankAccountColumns = `bank_account_id, name, bank_name, account_number, account_type, books_balance, bank_balance, is_active, description, created_at, created_by, last_updated_at, last_updated_by`

const bankMovementColumns = `movement_id, bank_account_id, movement_type, movement_date, amount, description, document_number, beneficiary, status, reconciled_at, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for the bank auxiliary ledger.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBankRepository implements portsrepo.BankRepositoryFacade
var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.BankAccountID,
		&m.Name,
		&m.BankName,
		&m.AccountNumber,
		&m.AccountType,
		&m.BooksBalance,
		&m.BankBalance,
		&m.IsActive,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanBankMovement(row pgx.Row) (models.BankMovement, error) {
	var m models.BankMovement
	err := row.Scan(
		&m.MovementID,
		&m.BankAccountID,
		&m.MovementType,
		&m.MovementDate,
		&m.Amount,
		&m.Description,
		&m.DocumentNumber,
		&m.Beneficiary,
		&m.Status,
		&m.ReconciledAt,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectBankMovements(rows pgx.Rows) ([]domain.BankMovement, error) {
	defer rows.Close()
	movements := []domain.BankMovement{}
	for rows.Next() {
		m, err := scanBankMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank movement row: %w", err)
		}
		movements = append(movements, mapping.ToDomainBankMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank movement rows: %w", err)
	}
	return movements, nil
}

// SaveBankAccount inserts a new bank account.
func (r *PgxBankRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.Name,
		m.BankName,
		m.AccountNumber,
		m.AccountType,
		m.BooksBalance,
		m.BankBalance,
		m.IsActive,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bank account number %s already registered", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to insert bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by ID.
func (r *PgxBankRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`

	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}
	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// ListBankAccounts lists bank accounts ordered by name.
func (r *PgxBankRepository) ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return accounts, nil
}

// UpdateBankAccount updates descriptive fields of a bank account. Balances
// are managed exclusively by RegisterMovement and UpdateBankStatementBalance.
func (r *PgxBankRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		UPDATE bank_accounts
		SET name = $2, bank_name = $3, account_number = $4, account_type = $5, is_active = $6, description = $7, last_updated_at = $8, last_updated_by = $9
		WHERE bank_account_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.Name,
		m.BankName,
		m.AccountNumber,
		m.AccountType,
		m.IsActive,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bank account number %s already registered", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to update bank account %s: %w", m.BankAccountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateBankStatementBalance records the bank-side balance from the latest
// statement.
func (r *PgxBankRepository) UpdateBankStatementBalance(ctx context.Context, bankAccountID string, bankBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE bank_accounts
		SET bank_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, bankAccountID, bankBalance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update statement balance for bank account %s: %w", bankAccountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RegisterMovement inserts the movement and applies its signed amount to the
// account's books balance in one transaction. The account row is locked
// first so concurrent movements serialize.
func (r *PgxBankRepository) RegisterMovement(ctx context.Context, movement domain.BankMovement) (*domain.BankAccount, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`
	if _, err := scanBankAccount(tx.QueryRow(ctx, lockQuery, movement.BankAccountID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bank account %s: %w", movement.BankAccountID, err)
	}

	m := mapping.ToModelBankMovement(movement)
	insertQuery := `
		INSERT INTO bank_movements (` + bankMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.MovementID,
		m.BankAccountID,
		m.MovementType,
		m.MovementDate,
		m.Amount,
		m.Description,
		m.DocumentNumber,
		m.Beneficiary,
		m.Status,
		m.ReconciledAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bank movement %s: %w", m.MovementID, err)
	}

	balanceQuery := `
		UPDATE bank_accounts
		SET books_balance = books_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1
		RETURNING ` + bankAccountColumns + `;
	`
	ma, err := scanBankAccount(tx.QueryRow(ctx, balanceQuery,
		movement.BankAccountID,
		movement.SignedAmount(),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to apply movement to books balance of bank account %s: %w", movement.BankAccountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainBankAccount(ma)
	return &d, nil
}

// ReconcileMovement transitions a movement from PENDING to RECONCILED.
// Reconciling twice is a conflict.
func (r *PgxBankRepository) ReconcileMovement(ctx context.Context, movementID string, reconciledAt time.Time, userID string, now time.Time) (*domain.BankMovement, error) {
	query := `
		UPDATE bank_movements
		SET status = $2, reconciled_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE movement_id = $1 AND status = $6
		RETURNING ` + bankMovementColumns + `;
	`
	m, err := scanBankMovement(r.Pool.QueryRow(ctx, query,
		movementID,
		domain.MovementReconciled,
		reconciledAt,
		now,
		userID,
		domain.MovementPending,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing movement from one in the wrong status.
			var status models.BankMovementStatus
			statusErr := r.Pool.QueryRow(ctx, `SELECT status FROM bank_movements WHERE movement_id = $1;`, movementID).Scan(&status)
			if errors.Is(statusErr, pgx.ErrNoRows) {
				return nil, apperrors.ErrNotFound
			}
			if statusErr != nil {
				return nil, fmt.Errorf("failed to check status of bank movement %s: %w", movementID, statusErr)
			}
			return nil, fmt.Errorf("%w: movement %s is %s", apperrors.ErrConflict, movementID, status)
		}
		return nil, fmt.Errorf("failed to reconcile bank movement %s: %w", movementID, err)
	}
	d := mapping.ToDomainBankMovement(m)
	return &d, nil
}

// FindMovementsByAccount returns a page of an account's movements, newest
// first.
func (r *PgxBankRepository) FindMovementsByAccount(ctx context.Context, bankAccountID string, limit, offset int) ([]domain.BankMovement, error) {
	query := `
		SELECT ` + bankMovementColumns + `
		FROM bank_movements
		WHERE bank_account_id = $1
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, bankAccountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for bank account %s: %w", bankAccountID, err)
	}
	return collectBankMovements(rows)
}

// FindMovementsByDateRange returns an account's movements within a period in
// chronological order.
func (r *PgxBankRepository) FindMovementsByDateRange(ctx context.Context, bankAccountID string, from, to time.Time) ([]domain.BankMovement, error) {
	query := `
		SELECT ` + bankMovementColumns + `
		FROM bank_movements
		WHERE bank_account_id = $1 AND movement_date >= $2 AND movement_date <= $3
		ORDER BY movement_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, bankAccountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements by date range for bank account %s: %w", bankAccountID, err)
	}
	return collectBankMovements(rows)
}

// FindOutstandingChecks returns issued checks still pending reconciliation,
// oldest first.
func (r *PgxBankRepository) FindOutstandingChecks(ctx context.Context, bankAccountID string) ([]domain.BankMovement, error) {
	query := `
		SELECT ` + bankMovementColumns + `
		FROM bank_movements
		WHERE bank_account_id = $1 AND movement_type = $2 AND status = $3
		ORDER BY movement_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, bankAccountID, domain.CheckIssued, domain.MovementPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding checks for bank account %s: %w", bankAccountID, err)
	}
	return collectBankMovements(rows)
}

// FindRecentMovements returns the latest movements across all accounts.
func (r *PgxBankRepository) FindRecentMovements(ctx context.Context, limit int) ([]domain.BankMovement, error) {
	query := `
		SELECT ` + bankMovementColumns + `
		FROM bank_movements
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent bank movements: %w", err)
	}
	return collectBankMovements(rows)
}
