package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// emailRe is a practical subset of valid addresses: local@domain with at least
// one dot in the domain, no whitespace or extra "@".
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Booking represents one reservation against an event. It holds a non-owning
// reference to the event; the event has no back-reference.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// NormalizeBooking runs the syntactic checks on a candidate booking and
// canonicalizes the email (trimmed, lower-cased). The referential existence
// check against the store is the booking service's responsibility.
func NormalizeBooking(b *Booking) error {
	if b.EventID == "" {
		return &ValidationError{Field: "eventId", Message: "eventId is required"}
	}
	email := strings.TrimSpace(b.Email)
	if email == "" || !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "A valid email address is required"}
	}
	b.Email = strings.ToLower(email)
	return nil
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines booking operations exposed to the delivery layer.
type BookingService interface {
	// CreateBooking validates the candidate, confirms the referenced event
	// exists, and persists the booking. Returns ErrEventGone when the event is
	// missing at check time.
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	ListEventBookings(ctx context.Context, eventID string) ([]*Booking, error)
}
