package dto

import (
	"time"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// UserResponse defines the data returned for a user. Credential fields are
// never exposed.
type UserResponse struct {
	UserID        string    `json:"userID"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Email         string    `json:"email"`
	IsVerified    bool      `json:"isVerified"`
	AvatarURL     string    `json:"avatarUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// UpdateUserRequest defines the profile fields a user may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateUserRequest struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		Email:         u.Email,
		IsVerified:    u.IsVerified,
		AvatarURL:     u.AvatarURL,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}
