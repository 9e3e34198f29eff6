package dto

import (
	"time"

	"github.com/SscSPs/zcred_app/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,max=128"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UserResponse defines the user fields exposed over the API.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
	}
}

// ProfileResponse backs the profile display.
type ProfileResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
	MemberSince time.Time `json:"memberSince"`
}

// ToProfileResponse converts a domain.Profile to its API shape.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		Username:    p.Username,
		Name:        p.Name,
		Email:       p.Email,
		IsAdmin:     p.IsAdmin,
		MemberSince: p.MemberSince,
	}
}

// ResetPasswordRequest is the admin password reset payload. Leave NewPassword
// empty to have the server generate one.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ResetPasswordResponse reports the reset. GeneratedPassword is only set
// when the server generated the password.
type ResetPasswordResponse struct {
	UserID            string `json:"userID"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}
