package services

import (
	"context"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionRateReaderSvc defines read operations for conversion rates
type ConversionRateReaderSvc interface {
	// GetLatestRate returns the current PKR per ZC rate. It never fails; when
	// the rate cannot be loaded the configured fallback is returned.
	GetLatestRate(ctx context.Context) decimal.Decimal

	// CachedRate reports the rate held in memory, nil if none has been fetched yet.
	CachedRate() *domain.CachedRate

	// ListConversionRates lists published rates, newest first. Admin only.
	ListConversionRates(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.ConversionRate, error)
}

// ConversionRateWriterSvc defines write operations for conversion rates
type ConversionRateWriterSvc interface {
	// PublishConversionRate stores a new rate record. Admin only.
	PublishConversionRate(ctx context.Context, req dto.CreateConversionRateRequest, adminUserID string) (*domain.ConversionRate, error)
}

// QuoteSvc converts user-entered amounts and applies the minimum-amount policy
type QuoteSvc interface {
	// QuoteDeposit converts a PKR amount to ZC.
	QuoteDeposit(ctx context.Context, pkrAmount string) (*domain.Quote, error)

	// QuoteWithdrawal converts a ZC amount to PKR.
	QuoteWithdrawal(ctx context.Context, zcAmount string) (*domain.Quote, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionRateReaderSvc
	ConversionRateWriterSvc
	QuoteSvc
}
