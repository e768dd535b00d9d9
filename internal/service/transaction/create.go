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

// Create records a new transaction for the user and returns it with the
// category joined in.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.TransactionWithCategory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.transactions.Create(ctx, &domain.Transaction{
		ID:          uuid.New(),
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		CategoryID:  input.CategoryID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction created",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}
