package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventlist/internal/domain"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, "time", mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{
		store: store,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, date, "time", mode, audience, agenda, organizer, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	err = db.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, e.Mode, e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags),
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if isSlugViolation(err) {
		return domain.ErrSlugTaken
	}
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return scanEvent(db.QueryRowContext(ctx, query, slug))
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY date, "time", created_at
		LIMIT $1 OFFSET $2
	`
	rows, err := db.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE events
		SET title = $1, slug = $2, description = $3, overview = $4, image = $5,
		    venue = $6, location = $7, date = $8, "time" = $9, mode = $10,
		    audience = $11, agenda = $12, organizer = $13, tags = $14, updated_at = $15
		WHERE id = $16
	`
	result, err := db.ExecContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, e.Mode, e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags),
		e.UpdatedAt, e.ID,
	)
	if isSlugViolation(err) {
		return domain.ErrSlugTaken
	}
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	db, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	db, err := r.store.Get(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	err = db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue,
		&e.Location, &e.Date, &e.Time, &e.Mode, &e.Audience, pq.Array(&e.Agenda),
		&e.Organizer, pq.Array(&e.Tags), &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// isSlugViolation reports whether err is the unique-index rejection on
// events.slug (SQLSTATE 23505).
func isSlugViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == "events_slug_key"
}
