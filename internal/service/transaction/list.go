package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/adapter/postgres/transaction"
	"github.com/financanvas/backend/internal/domain"
)

// ListActive returns the user's active transactions, newest date first.
func (s *Service) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.TransactionWithCategory, error) {
	list, err := s.transactions.List(ctx, userID, transaction.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

// ListTrashed returns the user's soft-deleted transactions, most recently
// trashed first.
func (s *Service) ListTrashed(ctx context.Context, userID uuid.UUID) ([]*domain.TransactionWithCategory, error) {
	list, err := s.transactions.List(ctx, userID, transaction.ListFilter{Trashed: true})
	if err != nil {
		return nil, fmt.Errorf("list trashed transactions: %w", err)
	}
	return list, nil
}

// Get returns a single active transaction the user owns.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	tx, err := s.transactions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}
