package services

import (
	"context"
	"time"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// TokenSvcFacade issues and validates the JWT access tokens and rotating
// refresh tokens used by the API.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// IssueRefreshToken generates a new refresh token, stores its hash on the
	// user record and returns the raw token with its expiry time.
	IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks the raw token against the stored hash and
	// expiry, returning the user on success or apperrors.ErrUnauthorized.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}
