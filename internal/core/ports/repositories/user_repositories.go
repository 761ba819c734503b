package repositories

import (
	"context"
	"time"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash of the user's current refresh token.
	// A nil expiry clears the token (logout / rotation).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error
}
