package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEventGone is returned when a booking references an event that does not
	// exist at validation time. The existence check is point-in-time only; a
	// concurrent delete between check and insert is an accepted race.
	ErrEventGone = errors.New("Cannot create booking: referenced event does not exist")

	// ErrSlugTaken is returned when persisting an event whose slug collides with
	// an existing one. Uniqueness is enforced by the store's unique index.
	ErrSlugTaken = errors.New("an event with this slug already exists")

	// ErrStoreUnavailable wraps connection failures to the store. The cached
	// connection attempt is discarded so the next call dials fresh.
	ErrStoreUnavailable = errors.New("event store unavailable")
)

// ValidationError reports a candidate record that failed a syntactic or semantic
// rule before persistence. Field names the offending attribute.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
