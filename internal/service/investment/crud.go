package investment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

// Create records a new investment for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Investment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.investments.Create(ctx, &domain.Investment{
		ID:            uuid.New(),
		Asset:         strings.TrimSpace(input.Asset),
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create investment: %w", err)
	}

	s.log.InfoContext(ctx, "investment created",
		slog.String("user_id", userID.String()),
		slog.String("investment_id", created.ID.String()),
		slog.String("asset", created.Asset),
	)

	return created, nil
}

// Update replaces the fields of an investment the user owns. A missing or
// unowned investment yields ErrNotFound.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Investment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.investments.Update(ctx, userID, input.ID, &domain.Investment{
		Asset:         strings.TrimSpace(input.Asset),
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("update investment: %w", err)
	}

	s.log.InfoContext(ctx, "investment updated",
		slog.String("user_id", userID.String()),
		slog.String("investment_id", input.ID.String()),
	)

	return updated, nil
}

// Delete removes an investment the user owns. A missing or unowned
// investment yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.investments.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}

	s.log.InfoContext(ctx, "investment deleted",
		slog.String("user_id", userID.String()),
		slog.String("investment_id", id.String()),
	)

	return nil
}
