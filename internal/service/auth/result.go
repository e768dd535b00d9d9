package auth

import "github.com/financanvas/backend/internal/domain"

// AuthResult is returned by register, login and refresh. It carries the
// signed access token, the raw refresh token (the hash never leaves the
// service) and the authenticated user.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
