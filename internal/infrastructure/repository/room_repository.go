package repository

import (
	"database/sql"
	"fmt"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new instance of roomRepository
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// ListRooms implements domain.RoomRepository
func (r *roomRepository) ListRooms(propertyID int) ([]domain.Room, error) {
	query := `
		SELECT
			r.room_id,
			r.property_id,
			r.room_number,
			c.room_category_id,
			c.property_id,
			c.name,
			c.description,
			c.max_guests,
			c.base_price
		FROM
			room r
		INNER JOIN
			room_category c ON r.room_category_id = c.room_category_id
		WHERE
			r.property_id = $1
		ORDER BY
			r.room_id;`

	rows, err := r.db.Query(query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		err := rows.Scan(
			&room.ID,
			&room.PropertyID,
			&room.RoomNumber,
			&room.Category.ID,
			&room.Category.PropertyID,
			&room.Category.Name,
			&room.Category.Description,
			&room.Category.MaxGuests,
			&room.Category.BasePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}
