package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventlist/internal/domain"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings \(event_id, email, created_at, updated_at\)`).
					WithArgs("ev-uuid-1", "user@example.com", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-uuid-1"))
			},
			wantID: "bk-uuid-1",
		},
		{
			name: "event deleted between check and insert",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_event_id_fkey"})
			},
			wantErr: domain.ErrEventGone,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(NewStoreWithDB(db))
			b := domain.NewBooking("ev-uuid-1", "user@example.com", now, now)
			err = repo.Create(ctx, b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, b.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, email, created_at, updated_at\s+FROM bookings`).
		WithArgs("bk-uuid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
			AddRow("bk-uuid-1", "ev-uuid-1", "user@example.com", now, now))
	mock.ExpectQuery(`SELECT id, event_id, email, created_at, updated_at\s+FROM bookings`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewBookingRepository(NewStoreWithDB(db))
	b, err := repo.GetByID(ctx, "bk-uuid-1")
	require.NoError(t, err)
	require.Equal(t, "ev-uuid-1", b.EventID)
	require.Equal(t, "user@example.com", b.Email)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, email, created_at, updated_at\s+FROM bookings\s+WHERE event_id = \$1`).
		WithArgs("ev-uuid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
			AddRow("bk-uuid-2", "ev-uuid-1", "late@example.com", now.Add(time.Hour), now.Add(time.Hour)).
			AddRow("bk-uuid-1", "ev-uuid-1", "early@example.com", now, now))

	repo := NewBookingRepository(NewStoreWithDB(db))
	bookings, err := repo.ListByEventID(ctx, "ev-uuid-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.Equal(t, "bk-uuid-2", bookings[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
