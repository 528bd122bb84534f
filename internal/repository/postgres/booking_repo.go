package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventlist/internal/domain"
)

type bookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) domain.BookingRepository {
	return &bookingRepository{
		store: store,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = db.QueryRowContext(ctx, query, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if isEventFKViolation(err) {
		// The referenced event vanished between the existence check and the
		// insert; the foreign key closes that window.
		return domain.ErrEventGone
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err = db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// isEventFKViolation reports whether err is the foreign-key rejection on
// bookings.event_id (SQLSTATE 23503).
func isEventFKViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23503"
}
