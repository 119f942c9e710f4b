package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of bookingRepository
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

const activeStatuses = `'PENDING', 'CONFIRMED', 'CHECKED_IN'`

// ListActiveBookings implements domain.BookingRepository
func (r *bookingRepository) ListActiveBookings(propertyID int, from, to time.Time) ([]domain.Booking, error) {
	query := `
		SELECT
			booking_id,
			reference,
			property_id,
			room_id,
			check_in_date,
			check_out_date,
			status,
			price
		FROM
			booking
		WHERE
			property_id = $1
			AND status IN (` + activeStatuses + `)
			AND check_in_date < $3
			AND check_out_date > $2
		ORDER BY
			booking_id;`

	rows, err := r.db.Query(query, propertyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.PropertyID,
			&b.RoomID,
			&b.CheckIn,
			&b.CheckOut,
			&b.Status,
			&b.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// GetBookingByID implements domain.BookingRepository
func (r *bookingRepository) GetBookingByID(id int) (*domain.Booking, error) {
	query := `
		SELECT booking_id, reference, property_id, room_id, check_in_date, check_out_date, status, price
		FROM booking
		WHERE booking_id = $1;`

	var b domain.Booking
	err := r.db.QueryRow(query, id).Scan(
		&b.ID,
		&b.Reference,
		&b.PropertyID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Status,
		&b.Price,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found: %w", err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}

	return &b, nil
}

// CreateBooking implements domain.BookingRepository. The room row is locked
// and re-checked for overlapping active stays inside the transaction, so the
// optimistic numbers reported by a search cannot turn into a double booking.
func (r *bookingRepository) CreateBooking(b *domain.Booking) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`SELECT room_id FROM room WHERE room_id = $1 FOR UPDATE`, b.RoomID); err != nil {
		return fmt.Errorf("error locking room: %w", err)
	}

	var conflicts int
	err = tx.QueryRow(`
		SELECT COUNT(*)
		FROM booking
		WHERE room_id = $1
		AND status IN (`+activeStatuses+`)
		AND check_in_date < $3
		AND check_out_date > $2`,
		b.RoomID, b.CheckIn, b.CheckOut,
	).Scan(&conflicts)
	if err != nil {
		return fmt.Errorf("error checking booking conflicts: %w", err)
	}
	if conflicts > 0 {
		err = domain.ErrRoomUnavailable
		return err
	}

	err = tx.QueryRow(`
		INSERT INTO booking (reference, property_id, room_id, check_in_date, check_out_date, status, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING booking_id`,
		b.Reference, b.PropertyID, b.RoomID, b.CheckIn, b.CheckOut, b.Status, b.Price,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing tx: %w", err)
	}
	return nil
}

// UpdateBookingStatus implements domain.BookingRepository
func (r *bookingRepository) UpdateBookingStatus(id int, status domain.BookingStatus) error {
	result, err := r.db.Exec(`UPDATE booking SET status = $1 WHERE booking_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("booking %d not found", id)
	}
	return nil
}

// UpdateExpiredBookings implements domain.BookingRepository
func (r *bookingRepository) UpdateExpiredBookings() error {
	query := `
		UPDATE booking
		SET status = 'CHECKED_OUT'
		WHERE status IN ('CONFIRMED', 'CHECKED_IN')
		AND check_out_date <= CURRENT_DATE;`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("error updating expired bookings: %w", err)
	}
	return nil
}
