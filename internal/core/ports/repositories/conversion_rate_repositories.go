package repositories

import (
	"context"

	"github.com/SscSPs/zcred_app/internal/core/domain"
)

// ConversionRateReader defines read operations for conversion rate data
type ConversionRateReader interface {
	// FindLatestConversionRate retrieves the record with the newest effective date.
	FindLatestConversionRate(ctx context.Context) (*domain.ConversionRate, error)

	// ListConversionRates retrieves a page of records, newest first.
	ListConversionRates(ctx context.Context, limit, offset int) ([]domain.ConversionRate, error)
}

// ConversionRateWriter defines write operations for conversion rate data
type ConversionRateWriter interface {
	// SaveConversionRate persists a new conversion rate record.
	SaveConversionRate(ctx context.Context, rate domain.ConversionRate) error
}

// ConversionRateRepositoryFacade combines all conversion rate repository interfaces
type ConversionRateRepositoryFacade interface {
	ConversionRateReader
	ConversionRateWriter
}
