package mapping

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		FullName:               d.FullName,
		PhoneNumber:            d.PhoneNumber,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		IsVerified:             d.IsVerified,
		AvatarURL:              d.AvatarURL,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		CreatedAt:              d.CreatedAt,
		LastUpdatedAt:          d.LastUpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		FullName:               m.FullName,
		PhoneNumber:            m.PhoneNumber,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		IsVerified:             m.IsVerified,
		AvatarURL:              m.AvatarURL,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		CreatedAt:              m.CreatedAt,
		LastUpdatedAt:          m.LastUpdatedAt,
	}
}
