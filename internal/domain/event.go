package domain

import (
	"context"
	"time"
)

// Event represents one published event in the listing.
// Date and Time are stored in canonical form: "YYYY-MM-DD" and 24-hour "HH:mm".
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventPatch holds a partial update for an event. Nil fields are unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// EventService defines event operations exposed to the delivery layer.
// Candidates are normalized and validated before any store interaction.
type EventService interface {
	CreateEvent(ctx context.Context, candidate *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
