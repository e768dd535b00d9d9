package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/financanvas/backend/internal/domain"
)

// Register creates a new user account and signs it in.
//
// The operation is performed in the following steps:
//  1. Validate input.
//  2. Hash the password with bcrypt.
//  3. Create the user (the unique email index rejects duplicates).
//  4. Issue access and refresh tokens.
//
// Steps 3 and 4 run in one transaction so a token row is never left behind
// for a user that was not created.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(ctx, created)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID)

	return result, nil
}
