// Package transaction implements the transaction lifecycle: create, update,
// active and trash listings, soft delete and restore.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/adapter/postgres/transaction"
	"github.com/financanvas/backend/internal/domain"
)

type transactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.TransactionWithCategory, error)
	Update(ctx context.Context, userID, id uuid.UUID, tx *domain.Transaction) (*domain.TransactionWithCategory, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error)
	List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*domain.TransactionWithCategory, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	Restore(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides transaction management operations. Every operation takes
// the acting user's ID explicitly; ownership is enforced in the repository by
// scoping every statement to that ID.
type Service struct {
	transactions transactionRepo
	log          *slog.Logger
}

// NewService creates a new transaction service.
func NewService(log *slog.Logger, transactions transactionRepo) *Service {
	return &Service{
		transactions: transactions,
		log:          log.With("service", "transaction"),
	}
}
