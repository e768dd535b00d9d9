// Package category implements category listing and creation.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

type categoryRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		categories: categories,
		log:        log.With("service", "category"),
	}
}

// List returns the user's categories ordered by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	list, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// CreateInput holds the parameters for creating a category.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > 100 {
		return domain.NewValidationError("name", "max 100 characters")
	}
	return nil
}

// Create adds a new category for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
