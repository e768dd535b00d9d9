// Package transaction implements the Transaction repository using PostgreSQL.
// It owns the active/trashed partition of a user's transactions: every read
// filters on deleted_at nullability and every write is scoped by user_id.
package transaction

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/financanvas/backend/internal/adapter/postgres"
	"github.com/financanvas/backend/internal/domain"
)

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// joinedColumns is the column list shared by every query that returns a
// transaction with its resolved category.
const joinedColumns = `t.id, t.description, t.amount, t.type, t.date,
       t.category_id, t.user_id, t.deleted_at, t.created_at, t.updated_at,
       c.id, c.name, c.user_id, c.created_at`

const insertSQL = `
INSERT INTO transactions (id, description, amount, type, date, category_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateSQL = `
UPDATE transactions
SET description = $3, amount = $4, type = $5, date = $6, category_id = $7, updated_at = $8
WHERE id = $1 AND user_id = $2`

const softDeleteSQL = `
UPDATE transactions
SET deleted_at = $3, updated_at = $3
WHERE id = $1 AND user_id = $2`

const restoreSQL = `
UPDATE transactions
SET deleted_at = NULL, updated_at = $3
WHERE id = $1 AND user_id = $2`

// ListFilter selects which transactions a listing returns. The zero value
// lists active transactions ordered by date descending.
type ListFilter struct {
	// Trashed switches the listing to the trash (deleted_at IS NOT NULL,
	// ordered by deleted_at descending).
	Trashed bool

	// From/To bound the transaction date (inclusive). Only honored for
	// active listings; the trash is never windowed.
	From *time.Time
	To   *time.Time
}

// Create inserts a new transaction and returns it with its category resolved.
func (r *Repo) Create(ctx context.Context, t *domain.Transaction) (*domain.TransactionWithCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		t.ID, t.Description, t.Amount, t.Type.String(), t.Date,
		t.CategoryID, t.UserID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", t.ID)
	}

	return r.GetByID(ctx, t.UserID, t.ID)
}

// Update modifies the mutable fields of a transaction, scoped to rows owned
// by userID, and returns the updated row with its category. A transaction
// that does not exist or is not owned by the caller yields ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, t *domain.Transaction) (*domain.TransactionWithCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, updateSQL,
		id, userID, t.Description, t.Amount, t.Type.String(), t.Date,
		t.CategoryID, time.Now().UTC(),
	)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return r.GetByID(ctx, userID, id)
}

// GetByID returns one transaction with its category, scoped by user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	getSQL := `
SELECT ` + joinedColumns + `
FROM transactions t
JOIN categories c ON t.category_id = c.id
WHERE t.id = $1 AND t.user_id = $2`

	row := q.QueryRow(ctx, getSQL, id, userID)
	tc, err := scanJoined(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return tc, nil
}

// List returns the user's transactions selected by filter, each with its
// resolved category.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f ListFilter) ([]*domain.TransactionWithCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(
		"t.id", "t.description", "t.amount", "t.type", "t.date",
		"t.category_id", "t.user_id", "t.deleted_at", "t.created_at", "t.updated_at",
		"c.id", "c.name", "c.user_id", "c.created_at",
	).
		From("transactions t").
		Join("categories c ON t.category_id = c.id").
		Where(sq.Eq{"t.user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if f.Trashed {
		b = b.Where("t.deleted_at IS NOT NULL").OrderBy("t.deleted_at DESC")
	} else {
		b = b.Where("t.deleted_at IS NULL").OrderBy("t.date DESC")
		if f.From != nil {
			b = b.Where(sq.GtOrEq{"t.date": *f.From})
		}
		if f.To != nil {
			b = b.Where(sq.LtOrEq{"t.date": *f.To})
		}
	}

	listSQL, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transaction list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", userID)
	}
	defer rows.Close()

	var result []*domain.TransactionWithCategory
	for rows.Next() {
		tc, err := scanJoined(rows)
		if err != nil {
			return nil, postgres.MapError(err, "transaction", userID)
		}
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "transaction", userID)
	}

	return result, nil
}

// SoftDelete stamps deleted_at on the transaction, scoped to rows owned by
// userID. Zero affected rows (missing, not owned, either way) is a silent
// no-op: the caller cannot distinguish those cases and that is the contract.
func (r *Repo) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, softDeleteSQL, id, userID, time.Now().UTC()); err != nil {
		return postgres.MapError(err, "transaction", id)
	}

	return nil
}

// Restore clears deleted_at, same scoping and same silent no-op behavior
// as SoftDelete. Restoring an active transaction changes nothing.
func (r *Repo) Restore(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, restoreSQL, id, userID, time.Now().UTC()); err != nil {
		return postgres.MapError(err, "transaction", id)
	}

	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJoined(row rowScanner) (*domain.TransactionWithCategory, error) {
	var (
		tc      domain.TransactionWithCategory
		typeStr string
	)

	err := row.Scan(
		&tc.ID, &tc.Description, &tc.Amount, &typeStr, &tc.Date,
		&tc.CategoryID, &tc.UserID, &tc.DeletedAt, &tc.CreatedAt, &tc.UpdatedAt,
		&tc.Category.ID, &tc.Category.Name, &tc.Category.UserID, &tc.Category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tc.Type = domain.TransactionType(typeStr)
	return &tc, nil
}
