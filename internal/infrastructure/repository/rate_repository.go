package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type rateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new instance of rateRepository
func NewRateRepository(db *sql.DB) domain.RateRepository {
	return &rateRepository{
		db: db,
	}
}

// ListOverrides implements domain.RateRepository
func (r *rateRepository) ListOverrides(propertyID int, from, to time.Time) ([]domain.RateOverride, error) {
	query := `
		SELECT
			property_id,
			room_category_id,
			rate_date,
			price,
			available_count,
			is_closed,
			enable_breakfast
		FROM
			rate_override
		WHERE
			property_id = $1
			AND rate_date >= $2
			AND rate_date < $3
		ORDER BY
			rate_date, room_category_id;`

	rows, err := r.db.Query(query, propertyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying rate overrides: %w", err)
	}
	defer rows.Close()

	var overrides []domain.RateOverride
	for rows.Next() {
		var o domain.RateOverride
		var available sql.NullInt64
		err := rows.Scan(
			&o.PropertyID,
			&o.CategoryID,
			&o.Date,
			&o.Price,
			&available,
			&o.IsClosed,
			&o.EnableBreakfast,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning rate override row: %w", err)
		}
		// NULL available_count means no cap beyond the physical room count
		if available.Valid {
			n := int(available.Int64)
			o.Available = &n
		}
		overrides = append(overrides, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate override rows: %w", err)
	}

	return overrides, nil
}

// UpsertOverride implements domain.RateRepository
func (r *rateRepository) UpsertOverride(o domain.RateOverride) error {
	var available sql.NullInt64
	if o.Available != nil {
		available = sql.NullInt64{Int64: int64(*o.Available), Valid: true}
	}

	query := `
		INSERT INTO rate_override (property_id, room_category_id, rate_date, price, available_count, is_closed, enable_breakfast)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (property_id, room_category_id, rate_date)
		DO UPDATE SET
			price = EXCLUDED.price,
			available_count = EXCLUDED.available_count,
			is_closed = EXCLUDED.is_closed,
			enable_breakfast = EXCLUDED.enable_breakfast;`

	_, err := r.db.Exec(query, o.PropertyID, o.CategoryID, o.Date, o.Price, available, o.IsClosed, o.EnableBreakfast)
	if err != nil {
		return fmt.Errorf("error upserting rate override: %w", err)
	}
	return nil
}

// DeleteOverride implements domain.RateRepository
func (r *rateRepository) DeleteOverride(propertyID, categoryID int, date time.Time) error {
	query := `DELETE FROM rate_override WHERE property_id = $1 AND room_category_id = $2 AND rate_date = $3;`

	_, err := r.db.Exec(query, propertyID, categoryID, date)
	if err != nil {
		return fmt.Errorf("error deleting rate override: %w", err)
	}
	return nil
}
