package mapping

import (
	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/models"
)

// ToModelConversionRate converts a domain ConversionRate to a model ConversionRate
func ToModelConversionRate(d domain.ConversionRate) models.ConversionRate {
	return models.ConversionRate{
		ConversionRateID: d.ConversionRateID,
		Rate:             d.Rate,
		EffectiveDate:    d.EffectiveDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConversionRate converts a model ConversionRate to a domain ConversionRate
func ToDomainConversionRate(m models.ConversionRate) domain.ConversionRate {
	return domain.ConversionRate{
		ConversionRateID: m.ConversionRateID,
		Rate:             m.Rate,
		EffectiveDate:    m.EffectiveDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConversionRateSlice converts a slice of model rates to domain rates
func ToDomainConversionRateSlice(ms []models.ConversionRate) []domain.ConversionRate {
	ds := make([]domain.ConversionRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConversionRate(m)
	}
	return ds
}
