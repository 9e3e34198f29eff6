package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserMapping(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d := domain.User{
		UserID:       "u1",
		Username:     "ayesha",
		PasswordHash: "hash",
		Name:         "Ayesha",
		Email:        "ayesha@example.com",
		IsAdmin:      true,
		AuditFields:  domain.NewAuditFields("admin", now),
	}

	m := ToModelUser(d)
	assert.Equal(t, "ayesha", m.Username)
	assert.Equal(t, now, m.CreatedAt)
	assert.True(t, m.IsAdmin)
	assert.Equal(t, d, ToDomainUser(m))
}

func TestConversionRateSliceMapping(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d := domain.ConversionRate{
		ConversionRateID: "r1",
		Rate:             decimal.RequireFromString("280.5"),
		EffectiveDate:    now,
		AuditFields:      domain.NewAuditFields("admin", now),
	}

	out := ToDomainConversionRateSlice([]models.ConversionRate{ToModelConversionRate(d)})
	assert.Len(t, out, 1)
	assert.True(t, d.Rate.Equal(out[0].Rate))
	assert.Equal(t, "admin", out[0].LastUpdatedBy)
}
