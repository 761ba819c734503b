package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// UserSvcFacade manages account holders and the signup/verification flow.
type UserSvcFacade interface {
	// RegisterUser creates an unverified user. Duplicate phone numbers fail
	// with apperrors.ErrDuplicate.
	RegisterUser(ctx context.Context, fullName, phoneNumber, email, password string) (*domain.User, error)

	// VerifyOTP marks the user verified. OTP delivery is mocked: any
	// six-digit code is accepted.
	VerifyOTP(ctx context.Context, userID string, code string) (*domain.User, error)

	// Authenticate checks phone number + password and returns the user, or
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, phoneNumber, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile applies the provided fields; nil pointers are left as-is.
	UpdateProfile(ctx context.Context, userID string, fullName, email, avatarURL *string) (*domain.User, error)
}
