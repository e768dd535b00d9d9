package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

// Update replaces the mutable fields of a transaction the user owns. A
// transaction that does not exist or belongs to another user yields
// ErrNotFound.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.TransactionWithCategory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.transactions.Update(ctx, userID, input.ID, &domain.Transaction{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		CategoryID:  input.CategoryID,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction updated",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", input.ID.String()),
	)

	return updated, nil
}
