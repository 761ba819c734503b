package models

import "time"

// User is the account holder row as stored in the users table.
type User struct {
	UserID                 string     `db:"user_id"`
	FullName               string     `db:"full_name"`
	PhoneNumber            string     `db:"phone_number"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	IsVerified             bool       `db:"is_verified"`
	AvatarURL              string     `db:"avatar_url"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `db:"created_at"`
	LastUpdatedAt          time.Time  `db:"last_updated_at"`
}
