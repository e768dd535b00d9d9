package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

// SoftDelete moves a transaction to the trash. Deleting a transaction that is
// already trashed, does not exist or belongs to another user succeeds without
// touching anything; the response never reveals whether a row was hit.
func (s *Service) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.transactions.SoftDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("soft delete transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction trashed",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", id.String()),
	)

	return nil
}

// Restore moves a trashed transaction back to the active set, keeping all
// other fields as they were. Same silent contract as SoftDelete.
func (s *Service) Restore(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.transactions.Restore(ctx, userID, id); err != nil {
		return fmt.Errorf("restore transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction restored",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", id.String()),
	)

	return nil
}
