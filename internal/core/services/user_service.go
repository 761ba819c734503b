package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, fullName, phoneNumber, email, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByPhone(ctx, phoneNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("phone_number", phoneNumber))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("phone number already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		FullName:      fullName,
		PhoneNumber:   phoneNumber,
		Email:         email,
		PasswordHash:  hash,
		IsVerified:    false,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// isSixDigitCode reports whether code is exactly six decimal digits.
func isSixDigitCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (s *userService) VerifyOTP(ctx context.Context, userID string, code string) (*domain.User, error) {
	// OTP delivery is mocked: any six-digit code verifies the account.
	if !isSixDigitCode(code) {
		return nil, fmt.Errorf("OTP must be a six-digit code: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsVerified {
		return user, nil
	}

	user.IsVerified = true
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to mark user verified", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User verified", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, phoneNumber, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so callers can't probe for numbers.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	if !user.IsVerified {
		return nil, fmt.Errorf("account not verified: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, fullName, email, avatarURL *string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if fullName != nil {
		user.FullName = *fullName
		updated = true
	}
	if email != nil {
		user.Email = *email
		updated = true
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
		updated = true
	}
	if !updated {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user profile", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Profile updated", slog.String("user_id", userID))
	return user, nil
}
