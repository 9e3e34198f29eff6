package pgsql

import (
	"context"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	portsrepo "github.com/SscSPs/zcred_app/internal/core/ports/repositories"
	"github.com/SscSPs/zcred_app/internal/models"
	"github.com/SscSPs/zcred_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const conversionRateColumns = `conversion_rate_id, rate, effective_date,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxConversionRateRepository stores published PKR/ZC rates in postgres.
type PgxConversionRateRepository struct {
	BaseRepository
}

func newPgxConversionRateRepository(db *pgxpool.Pool) *PgxConversionRateRepository {
	return &PgxConversionRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ConversionRateRepositoryFacade = (*PgxConversionRateRepository)(nil)

// SaveConversionRate inserts a new rate record. Records are never updated in place.
func (r *PgxConversionRateRepository) SaveConversionRate(ctx context.Context, rate domain.ConversionRate) error {
	m := mapping.ToModelConversionRate(rate)
	query := `
		INSERT INTO conversion_rate (` + conversionRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConversionRateID, m.Rate, m.EffectiveDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to save conversion rate")
	}
	return nil
}

// FindLatestConversionRate returns the record with the newest effective date.
func (r *PgxConversionRateRepository) FindLatestConversionRate(ctx context.Context) (*domain.ConversionRate, error) {
	query := `
		SELECT ` + conversionRateColumns + `
		FROM conversion_rate
		ORDER BY effective_date DESC, created_at DESC
		LIMIT 1;
	`
	var m models.ConversionRate
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ConversionRateID, &m.Rate, &m.EffectiveDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "conversion rate")
	}
	d := mapping.ToDomainConversionRate(m)
	return &d, nil
}

// ListConversionRates returns a page of rate history, newest first.
func (r *PgxConversionRateRepository) ListConversionRates(ctx context.Context, limit, offset int) ([]domain.ConversionRate, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + conversionRateColumns + `
		FROM conversion_rate
		ORDER BY effective_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to list conversion rates")
	}
	defer rows.Close()

	ms := []models.ConversionRate{}
	for rows.Next() {
		var m models.ConversionRate
		if err := rows.Scan(
			&m.ConversionRateID, &m.Rate, &m.EffectiveDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, translateError(err, "failed to scan conversion rate")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating conversion rates")
	}
	return mapping.ToDomainConversionRateSlice(ms), nil
}
