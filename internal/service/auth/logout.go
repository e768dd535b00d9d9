package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Logout revokes every refresh token the user holds. The access token stays
// valid until it expires; only the ability to mint new ones is cut off.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}

	s.log.Info("user logged out", "user_id", userID)

	return nil
}
