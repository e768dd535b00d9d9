// Package user implements profile operations for the authenticated user.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, avatarURL *string) (*domain.User, error)
}

// Service provides user profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// GetMe returns the authenticated user's profile.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateProfileInput holds the parameters for updating the user's profile.
// An empty AvatarURL clears the stored avatar.
type UpdateProfileInput struct {
	Name      string
	AvatarURL string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if len(strings.TrimSpace(i.Name)) < 3 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be at least 3 characters"})
	}

	if avatar := strings.TrimSpace(i.AvatarURL); avatar != "" {
		u, err := url.Parse(avatar)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "must be a valid http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfile changes the user's display name and avatar. Sending an empty
// avatar URL stores NULL.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var avatarURL *string
	if avatar := strings.TrimSpace(input.AvatarURL); avatar != "" {
		avatarURL = &avatar
	}

	updated, err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(input.Name), avatarURL)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return updated, nil
}
