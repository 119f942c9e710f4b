package repository

import (
	"database/sql"
	"fmt"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of categoryRepository
func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// ListCategories implements domain.CategoryRepository
func (r *categoryRepository) ListCategories(propertyID int) ([]domain.RoomCategory, error) {
	query := `
		SELECT
			room_category_id,
			property_id,
			name,
			description,
			max_guests,
			base_price
		FROM
			room_category
		WHERE
			property_id = $1
		ORDER BY
			room_category_id;`

	rows, err := r.db.Query(query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error querying room categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.RoomCategory
	for rows.Next() {
		var cat domain.RoomCategory
		err := rows.Scan(
			&cat.ID,
			&cat.PropertyID,
			&cat.Name,
			&cat.Description,
			&cat.MaxGuests,
			&cat.BasePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning room category row: %w", err)
		}
		categories = append(categories, cat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room category rows: %w", err)
	}

	return categories, nil
}
