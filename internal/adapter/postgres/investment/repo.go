// Package investment implements the Investment repository using PostgreSQL.
// Unlike transactions, investments have no trash: deletes are hard, and a
// scoped update or delete that hits zero rows reports ErrNotFound.
package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/financanvas/backend/internal/adapter/postgres"
	"github.com/financanvas/backend/internal/domain"
)

// Repo provides investment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new investment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const investmentColumns = `id, asset, quantity, purchase_price, purchase_date, user_id, created_at, updated_at`

const listByUserSQL = `
SELECT ` + investmentColumns + `
FROM investments
WHERE user_id = $1
ORDER BY purchase_date DESC`

const createSQL = `
INSERT INTO investments (id, asset, quantity, purchase_price, purchase_date, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + investmentColumns

const updateSQL = `
UPDATE investments
SET asset = $3, quantity = $4, purchase_price = $5, purchase_date = $6, updated_at = $7
WHERE id = $1 AND user_id = $2
RETURNING ` + investmentColumns

const deleteSQL = `
DELETE FROM investments WHERE id = $1 AND user_id = $2`

// ListByUser returns all investments of a user, newest purchase first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "investment", userID)
	}
	defer rows.Close()

	var result []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "investment", userID)
		}
		result = append(result, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "investment", userID)
	}

	return result, nil
}

// Create inserts a new investment and returns the persisted row.
func (r *Repo) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanInvestment(q.QueryRow(ctx, createSQL,
		inv.ID, inv.Asset, inv.Quantity, inv.PurchasePrice, inv.PurchaseDate,
		inv.UserID, inv.CreatedAt, inv.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "investment", inv.ID)
	}
	return created, nil
}

// Update modifies an investment scoped by user. Zero matched rows —
// missing or not owned — surfaces as ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, inv *domain.Investment) (*domain.Investment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanInvestment(q.QueryRow(ctx, updateSQL,
		id, userID, inv.Asset, inv.Quantity, inv.PurchasePrice, inv.PurchaseDate,
		time.Now().UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "investment", id)
	}
	return updated, nil
}

// Delete removes an investment scoped by user. Zero affected rows
// surfaces as ErrNotFound.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "investment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("investment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row rowScanner) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(
		&inv.ID, &inv.Asset, &inv.Quantity, &inv.PurchasePrice, &inv.PurchaseDate,
		&inv.UserID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
