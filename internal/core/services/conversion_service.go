package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/zcred_app/internal/apperrors"
	"github.com/SscSPs/zcred_app/internal/core/domain"
	portsrepo "github.com/SscSPs/zcred_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/utils/currency"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// conversionService serves the PKR/ZC rate and turns entered amounts into quotes.
type conversionService struct {
	BaseService
	rateRepo  portsrepo.ConversionRateRepositoryFacade
	rateCache *RateCache
	now       func() time.Time
}

// NewConversionService wires a rate repository behind a RateCache.
func NewConversionService(rateRepo portsrepo.ConversionRateRepositoryFacade, userReader portsrepo.UserReader, cacheOptions ...RateCacheOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		BaseService: BaseService{AdminChecker: userReader},
		rateRepo:    rateRepo,
		now:         time.Now,
	}
	svc.rateCache = NewRateCache(svc.fetchLatestRate, cacheOptions...)
	return svc
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) fetchLatestRate(ctx context.Context) (decimal.Decimal, error) {
	latest, err := s.rateRepo.FindLatestConversionRate(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load latest conversion rate: %w", err)
	}
	return latest.Rate, nil
}

// GetLatestRate returns the current PKR per ZC rate, or the fallback if it cannot be loaded.
func (s *conversionService) GetLatestRate(ctx context.Context) decimal.Decimal {
	return s.rateCache.GetLatestConversionRate(ctx)
}

// CachedRate reports what the rate cache currently holds, or nil before the first successful fetch.
func (s *conversionService) CachedRate() *domain.CachedRate {
	rate, fetchedAt, ok := s.rateCache.Snapshot()
	if !ok {
		return nil
	}
	return &domain.CachedRate{Rate: rate, FetchedAt: fetchedAt}
}

func (s *conversionService) ListConversionRates(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.ConversionRate, error) {
	if err := s.AuthorizeAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	rates, err := s.rateRepo.ListConversionRates(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list conversion rates",
			slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list conversion rates: %w", err)
	}
	return rates, nil
}

func (s *conversionService) PublishConversionRate(ctx context.Context, req dto.CreateConversionRateRequest, adminUserID string) (*domain.ConversionRate, error) {
	if err := s.AuthorizeAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: conversion rate must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	effective := now
	if req.EffectiveDate != nil {
		effective = *req.EffectiveDate
	}

	rate := domain.ConversionRate{
		ConversionRateID: uuid.NewString(),
		Rate:             req.Rate,
		EffectiveDate:    effective,
		AuditFields:      domain.NewAuditFields(adminUserID, now),
	}
	if err := s.rateRepo.SaveConversionRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save conversion rate", slog.String("rate", req.Rate.String()))
		return nil, fmt.Errorf("failed to publish conversion rate: %w", err)
	}

	// The cache is not invalidated; readers pick the new rate up once the cached one goes stale.
	s.LogInfo(ctx, "Conversion rate published",
		slog.String("conversion_rate_id", rate.ConversionRateID),
		slog.String("rate", rate.Rate.String()),
		slog.Time("effective_date", rate.EffectiveDate),
		slog.String("admin_user_id", adminUserID))
	return &rate, nil
}

func (s *conversionService) QuoteDeposit(ctx context.Context, pkrAmount string) (*domain.Quote, error) {
	amount, err := parseQuoteAmount(pkrAmount)
	if err != nil {
		return nil, err
	}
	rate := s.GetLatestRate(ctx)
	return &domain.Quote{
		From:         domain.UnitPKR,
		Amount:       amount,
		Converted:    currency.ConvertPkrToZc(amount, rate),
		Rate:         rate,
		Minimum:      decimal.NewFromInt(currency.MinDepositPKR),
		MeetsMinimum: currency.ValidateDepositAmount(amount),
	}, nil
}

func (s *conversionService) QuoteWithdrawal(ctx context.Context, zcAmount string) (*domain.Quote, error) {
	amount, err := parseQuoteAmount(zcAmount)
	if err != nil {
		return nil, err
	}
	rate := s.GetLatestRate(ctx)
	return &domain.Quote{
		From:         domain.UnitZC,
		Amount:       amount,
		Converted:    currency.ConvertZcToPkr(amount, rate),
		Rate:         rate,
		Minimum:      decimal.NewFromInt(currency.MinWithdrawalZC),
		MeetsMinimum: currency.ValidateWithdrawalAmount(amount),
	}, nil
}

func parseQuoteAmount(text string) (decimal.Decimal, error) {
	if !currency.ValidateZcredInput(text) {
		return decimal.Zero, fmt.Errorf("%w: amount %q must be a non-negative number with at most 2 decimals", apperrors.ErrValidation, text)
	}
	return currency.ParseZcreds(text), nil
}
