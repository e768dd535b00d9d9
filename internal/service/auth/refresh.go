package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/financanvas/backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a fresh token pair.
//
// The presented token is rotated: the stored row is revoked and a new one is
// issued in the same transaction, so a stolen token can be replayed at most
// until its legitimate holder refreshes. Unknown, revoked and expired tokens
// all collapse into ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, s.jwt.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if stored.IsRevoked() || stored.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.RevokeByID(ctx, stored.ID); err != nil {
			return fmt.Errorf("revoke refresh token: %w", err)
		}

		result, err = s.issueTokens(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tokens refreshed", "user_id", user.ID)

	return result, nil
}
