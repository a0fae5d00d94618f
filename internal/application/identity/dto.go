package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/identity"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	FullName  *string               `json:"full_name" binding:"omitempty,min=1,max=200"`
	Bio       *string               `json:"bio" binding:"omitempty,max=1000"`
	AvatarURL *string               `json:"avatar_url" binding:"omitempty,url,max=500"`
	Address   *ShippingAddressInput `json:"address"`
}

// ShippingAddressInput carries the user's default shipping address
type ShippingAddressInput struct {
	Street  string `json:"street" binding:"required,min=1,max=200"`
	City    string `json:"city" binding:"required,min=1,max=100"`
	State   string `json:"state" binding:"required,min=1,max=100"`
	Country string `json:"country" binding:"required,min=1,max=100"`
}

// ChangeEmailRequest represents a sign-in email change
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserInfo represents the authenticated user in auth responses
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// AuthResponse represents the result of a register, login, or refresh
type AuthResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// ProfileResponse represents an account in API responses
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Bio        string    `json:"bio,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Address    string    `json:"address,omitempty"`
	TotalSales int64     `json:"total_sales"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserInfo converts a domain user to the auth response shape
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role.String(),
	}
}

// ToProfileResponse converts a domain user to a profile response
func ToProfileResponse(u *identity.User) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       u.Role.String(),
		Status:     string(u.Status),
		Bio:        u.Bio,
		AvatarURL:  u.AvatarURL,
		Address:    u.ShippingAddress.FullAddress(),
		TotalSales: u.TotalSales,
		CreatedAt:  u.CreatedAt,
	}
}
