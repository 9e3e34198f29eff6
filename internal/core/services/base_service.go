package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/zcred_app/internal/apperrors"
	portsrepo "github.com/SscSPs/zcred_app/internal/core/ports/repositories"
	"github.com/SscSPs/zcred_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// AdminChecker resolves the acting user for admin-only operations.
	AdminChecker portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeAdmin returns apperrors.ErrForbidden unless userID names an existing admin.
func (s *BaseService) AuthorizeAdmin(ctx context.Context, userID string) error {
	if s.AdminChecker == nil {
		return fmt.Errorf("%w: no admin checker configured", apperrors.ErrForbidden)
	}
	if userID == "" {
		return fmt.Errorf("%w: missing acting user", apperrors.ErrForbidden)
	}
	user, err := s.AdminChecker.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s does not exist", apperrors.ErrForbidden, userID)
		}
		return fmt.Errorf("failed to load acting user %s: %w", userID, err)
	}
	if !user.IsAdmin {
		s.LogInfo(ctx, "Rejected admin action from non-admin user", slog.String("user_id", userID))
		return fmt.Errorf("%w: user %s is not an admin", apperrors.ErrForbidden, userID)
	}
	return nil
}
