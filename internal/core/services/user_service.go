package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/zcred_app/internal/apperrors"
	"github.com/SscSPs/zcred_app/internal/core/domain"
	portsrepo "github.com/SscSPs/zcred_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{AdminChecker: userRepo},
		userRepo:    userRepo,
		now:         time.Now,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if err := utils.ValidatePasswordPolicy(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, user.Username)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.ToProfile()
	return &profile, nil
}

// AuthenticateUser returns ErrUnauthorized for both unknown users and wrong passwords.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, targetUserID, newPassword, adminUserID string) (string, error) {
	if err := s.AuthorizeAdmin(ctx, adminUserID); err != nil {
		return "", err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return "", fmt.Errorf("failed to load user %s: %w", targetUserID, err)
	}

	var generated string
	if newPassword == "" {
		var err error
		if generated, err = utils.GeneratePassword(); err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		newPassword = generated
	} else if err := utils.ValidatePasswordPolicy(newPassword); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, targetUserID, hash, s.now(), adminUserID); err != nil {
		s.LogError(ctx, err, "Failed to store reset password", slog.String("target_user_id", targetUserID))
		return "", fmt.Errorf("failed to reset password: %w", err)
	}

	s.LogInfo(ctx, "Password reset",
		slog.String("target_user_id", targetUserID),
		slog.String("admin_user_id", adminUserID),
		slog.Bool("generated", generated != ""))
	return generated, nil
}
