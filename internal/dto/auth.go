package dto

import "time"

// RegisterUserRequest defines the data needed to sign up.
type RegisterUserRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

// VerifyOTPRequest carries the one-time code entered during signup.
type VerifyOTPRequest struct {
	UserID string `json:"userID" binding:"required"`
	Code   string `json:"code" binding:"required,len=6,numeric"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to exchange for new tokens.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse is returned after login, OTP verification or token refresh.
type AuthResponse struct {
	User               UserResponse `json:"user"`
	AccessToken        string       `json:"accessToken"`
	AccessTokenExpiry  time.Time    `json:"accessTokenExpiry"`
	RefreshToken       string       `json:"refreshToken"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
}
