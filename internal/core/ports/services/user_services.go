package services

import (
	"context"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetProfile returns the profile read model for a user.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username/password pair.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// PasswordResetSvc defines the admin password reset operation
type PasswordResetSvc interface {
	// ResetPassword sets a new password for targetUserID. An empty newPassword
	// asks for a generated one, which is returned; otherwise the returned string is empty.
	ResetPassword(ctx context.Context, targetUserID, newPassword, adminUserID string) (string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	PasswordResetSvc
}
