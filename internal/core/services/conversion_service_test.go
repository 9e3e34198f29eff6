package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/zcred_app/internal/apperrors"
	"github.com/SscSPs/zcred_app/internal/core/domain"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/core/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockConversionRateRepository
	mockUserRepo *MockUserRepository
	service      portssvc.ConversionSvcFacade
	ctx          context.Context
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockConversionRateRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewConversionService(suite.mockRateRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

func (suite *ConversionServiceTestSuite) expectLatest(r string) {
	suite.mockRateRepo.On("FindLatestConversionRate", mock.Anything).
		Return(&domain.ConversionRate{ConversionRateID: "r1", Rate: decimal.RequireFromString(r)}, nil).Once()
}

func (suite *ConversionServiceTestSuite) TestGetLatestRate_CachesRepositoryValue() {
	suite.expectLatest("280")

	first := suite.service.GetLatestRate(suite.ctx)
	second := suite.service.GetLatestRate(suite.ctx)

	suite.True(decimal.NewFromInt(280).Equal(first))
	suite.True(first.Equal(second))
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindLatestConversionRate", 1)

	cached := suite.service.CachedRate()
	suite.Require().NotNil(cached)
	suite.True(first.Equal(cached.Rate))
}

func (suite *ConversionServiceTestSuite) TestCachedRate_NilBeforeFirstFetch() {
	suite.Nil(suite.service.CachedRate())
}

func (suite *ConversionServiceTestSuite) TestGetLatestRate_NoRowsFallsBack() {
	suite.mockRateRepo.On("FindLatestConversionRate", mock.Anything).
		Return(nil, apperrors.ErrNotFound)

	suite.True(decimal.NewFromInt(1).Equal(suite.service.GetLatestRate(suite.ctx)))
	suite.True(decimal.NewFromInt(1).Equal(suite.service.GetLatestRate(suite.ctx)))
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindLatestConversionRate", 2)
}

func (suite *ConversionServiceTestSuite) TestGetLatestRate_ConfiguredFallback() {
	svc := services.NewConversionService(suite.mockRateRepo, suite.mockUserRepo,
		services.WithFallbackRate(decimal.NewFromInt(250)))
	suite.mockRateRepo.On("FindLatestConversionRate", mock.Anything).
		Return(nil, errors.New("db down"))

	suite.True(decimal.NewFromInt(250).Equal(svc.GetLatestRate(suite.ctx)))
}

func (suite *ConversionServiceTestSuite) TestQuoteDeposit() {
	suite.expectLatest("280")

	quote, err := suite.service.QuoteDeposit(suite.ctx, "560")

	suite.Require().NoError(err)
	suite.Equal(domain.UnitPKR, quote.From)
	suite.Equal(domain.UnitZC, quote.To())
	suite.Equal("2", quote.Converted.String())
	suite.True(quote.MeetsMinimum)
	suite.Equal("120", quote.Minimum.String())
}

func (suite *ConversionServiceTestSuite) TestQuoteDeposit_BelowMinimum() {
	suite.expectLatest("280")

	quote, err := suite.service.QuoteDeposit(suite.ctx, "119.99")

	suite.Require().NoError(err)
	suite.False(quote.MeetsMinimum)
}

func (suite *ConversionServiceTestSuite) TestQuoteWithdrawal() {
	suite.expectLatest("280")

	quote, err := suite.service.QuoteWithdrawal(suite.ctx, "150")

	suite.Require().NoError(err)
	suite.Equal(domain.UnitZC, quote.From)
	suite.Equal("42000", quote.Converted.String())
	suite.True(quote.MeetsMinimum)
}

func (suite *ConversionServiceTestSuite) TestQuote_RejectsMalformedAmount() {
	for _, amount := range []string{"", "abc", "1.234", "-5"} {
		_, err := suite.service.QuoteWithdrawal(suite.ctx, amount)
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestConversionRate", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestPublishConversionRate() {
	effective := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRateRepo.On("SaveConversionRate", mock.Anything, mock.MatchedBy(func(r domain.ConversionRate) bool {
		return r.Rate.Equal(decimal.NewFromInt(285)) &&
			r.EffectiveDate.Equal(effective) &&
			r.CreatedBy == adminUser.UserID &&
			r.ConversionRateID != ""
	})).Return(nil)

	got, err := suite.service.PublishConversionRate(suite.ctx, dto.CreateConversionRateRequest{
		Rate:          decimal.NewFromInt(285),
		EffectiveDate: &effective,
	}, adminUser.UserID)

	suite.Require().NoError(err)
	suite.Equal(effective, got.EffectiveDate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestPublishConversionRate_DefaultsEffectiveDateToNow() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRateRepo.On("SaveConversionRate", mock.Anything, mock.Anything).Return(nil)

	before := time.Now()
	got, err := suite.service.PublishConversionRate(suite.ctx, dto.CreateConversionRateRequest{
		Rate: decimal.NewFromInt(285),
	}, adminUser.UserID)

	suite.Require().NoError(err)
	suite.False(got.EffectiveDate.Before(before))
	suite.Equal(got.CreatedAt, got.EffectiveDate)
}

func (suite *ConversionServiceTestSuite) TestPublishConversionRate_RejectsNonPositive() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)

	_, err := suite.service.PublishConversionRate(suite.ctx, dto.CreateConversionRateRequest{
		Rate: decimal.Zero,
	}, adminUser.UserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveConversionRate", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestPublishConversionRate_NonAdminForbidden() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)

	_, err := suite.service.PublishConversionRate(suite.ctx, dto.CreateConversionRateRequest{
		Rate: decimal.NewFromInt(285),
	}, regularUser.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ConversionServiceTestSuite) TestListConversionRates() {
	rates := []domain.ConversionRate{{ConversionRateID: "r2"}, {ConversionRateID: "r1"}}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRateRepo.On("ListConversionRates", mock.Anything, 20, 0).Return(rates, nil)

	got, err := suite.service.ListConversionRates(suite.ctx, 20, 0, adminUser.UserID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func (suite *ConversionServiceTestSuite) TestListConversionRates_UnknownUserForbidden() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ListConversionRates(suite.ctx, 20, 0, "ghost")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}
