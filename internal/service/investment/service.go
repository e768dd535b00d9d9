// Package investment implements investment portfolio operations.
package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

type investmentRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	Update(ctx context.Context, userID, id uuid.UUID, inv *domain.Investment) (*domain.Investment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides investment management operations. Unlike transactions,
// investments have no trash: update and delete report ErrNotFound when the
// row is missing or not owned.
type Service struct {
	investments investmentRepo
	log         *slog.Logger
}

// NewService creates a new investment service.
func NewService(log *slog.Logger, investments investmentRepo) *Service {
	return &Service{
		investments: investments,
		log:         log.With("service", "investment"),
	}
}

// List returns all of the user's investments, newest purchase first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	list, err := s.investments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return list, nil
}
