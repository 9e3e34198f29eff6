package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock ConversionRateRepository ---
type MockConversionRateRepository struct {
	mock.Mock
}

func (m *MockConversionRateRepository) FindLatestConversionRate(ctx context.Context) (*domain.ConversionRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionRate), args.Error(1)
}

func (m *MockConversionRateRepository) ListConversionRates(ctx context.Context, limit, offset int) ([]domain.ConversionRate, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRate), args.Error(1)
}

func (m *MockConversionRateRepository) SaveConversionRate(ctx context.Context, rate domain.ConversionRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

var (
	adminUser   = &domain.User{UserID: "admin-1", Username: "admin", IsAdmin: true}
	regularUser = &domain.User{UserID: "user-1", Username: "ayesha"}
)
