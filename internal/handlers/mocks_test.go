package handlers_test

import (
	"context"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) GetLatestRate(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockConversionService) CachedRate() *domain.CachedRate {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.CachedRate)
}

func (m *MockConversionService) ListConversionRates(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.ConversionRate, error) {
	args := m.Called(ctx, limit, offset, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRate), args.Error(1)
}

func (m *MockConversionService) PublishConversionRate(ctx context.Context, req dto.CreateConversionRateRequest, adminUserID string) (*domain.ConversionRate, error) {
	args := m.Called(ctx, req, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionRate), args.Error(1)
}

func (m *MockConversionService) QuoteDeposit(ctx context.Context, pkrAmount string) (*domain.Quote, error) {
	args := m.Called(ctx, pkrAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockConversionService) QuoteWithdrawal(ctx context.Context, zcAmount string) (*domain.Quote, error) {
	args := m.Called(ctx, zcAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ResetPassword(ctx context.Context, targetUserID, newPassword, adminUserID string) (string, error) {
	args := m.Called(ctx, targetUserID, newPassword, adminUserID)
	return args.String(0), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)
