// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/financanvas/backend/internal/adapter/postgres"
	"github.com/financanvas/backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByUserSQL = `
SELECT id, name, user_id, created_at
FROM categories
WHERE user_id = $1
ORDER BY name ASC`

const createSQL = `
INSERT INTO categories (id, name, user_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, user_id, created_at`

// ListByUser returns all categories of a user ordered by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "category", userID)
	}
	defer rows.Close()

	var result []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "category", userID)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "category", userID)
	}

	return result, nil
}

// Create inserts a new category and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Category
	err := q.QueryRow(ctx, createSQL, c.ID, c.Name, c.UserID, c.CreatedAt).Scan(
		&created.ID, &created.Name, &created.UserID, &created.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}

	return &created, nil
}
