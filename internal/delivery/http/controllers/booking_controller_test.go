package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createBookingErr    error
	createBookingResult *domain.Booking
	listBookingsErr     error
	listBookingsResult  []*domain.Booking

	lastCreateEventID string
	lastCreateEmail   string
	lastListEventID   string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	f.lastCreateEventID = eventID
	f.lastCreateEmail = email
	if f.createBookingErr != nil {
		return nil, f.createBookingErr
	}
	if f.createBookingResult != nil {
		return f.createBookingResult, nil
	}
	return &domain.Booking{ID: "bk-created", EventID: eventID, Email: email}, nil
}

func (f *fakeBookingService) ListEventBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	f.lastListEventID = eventID
	if f.listBookingsErr != nil {
		return nil, f.listBookingsErr
	}
	if f.listBookingsResult != nil {
		return f.listBookingsResult, nil
	}
	return []*domain.Booking{}, nil
}

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeBookingService)
	}{
		{
			name:       "success",
			body:       `{"event_id":"ev-1","email":"user@example.com"}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeBookingService) {
				assert.Equal(t, "ev-1", fake.lastCreateEventID)
				assert.Equal(t, "user@example.com", fake.lastCreateEmail)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "unknown field rejected",
			body:           `{"event_id":"ev-1","email":"user@example.com","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "missing event id maps to 400",
			body:           `{"email":"user@example.com"}`,
			fakeErr:        &domain.ValidationError{Field: "eventId", Message: "eventId is required"},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "eventId is required",
		},
		{
			name:           "invalid email maps to 400",
			body:           `{"event_id":"ev-1","email":"not-an-email"}`,
			fakeErr:        &domain.ValidationError{Field: "email", Message: "A valid email address is required"},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "A valid email address is required",
		},
		{
			name:           "missing event maps to 404",
			body:           `{"event_id":"ev-gone","email":"user@example.com"}`,
			fakeErr:        domain.ErrEventGone,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Cannot create booking: referenced event does not exist",
		},
		{
			name:           "store unavailable maps to 503",
			body:           `{"event_id":"ev-1","email":"user@example.com"}`,
			fakeErr:        domain.ErrStoreUnavailable,
			wantStatus:     http.StatusServiceUnavailable,
			wantBodySubstr: "unavailable",
		},
		{
			name:           "service error",
			body:           `{"event_id":"ev-1","email":"user@example.com"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{createBookingErr: tt.fakeErr}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var booking domain.Booking
				require.NoError(t, json.Unmarshal(dataBytes, &booking))
				assert.Equal(t, "bk-created", booking.ID)
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestBookingController_ListEventBookings(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 5, 0, 0, time.UTC)
	tests := []struct {
		name           string
		eventID        string
		fakeErr        error
		fakeResult     []*domain.Booking
		wantStatus     int
		wantBodySubstr string
		checkBookings  func(t *testing.T, bookings []domain.Booking)
	}{
		{
			name:    "success",
			eventID: "ev-1",
			fakeResult: []*domain.Booking{
				{ID: "bk-2", EventID: "ev-1", Email: "b@example.com", CreatedAt: now.Add(time.Hour)},
				{ID: "bk-1", EventID: "ev-1", Email: "a@example.com", CreatedAt: now},
			},
			wantStatus: http.StatusOK,
			checkBookings: func(t *testing.T, bookings []domain.Booking) {
				require.Len(t, bookings, 2)
				assert.Equal(t, "bk-2", bookings[0].ID)
				assert.Equal(t, "a@example.com", bookings[1].Email)
			},
		},
		{
			name:       "success empty",
			eventID:    "ev-1",
			wantStatus: http.StatusOK,
			checkBookings: func(t *testing.T, bookings []domain.Booking) {
				require.Len(t, bookings, 0)
			},
		},
		{
			name:           "missing eventID",
			eventID:        "",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing eventID",
		},
		{
			name:           "event not found",
			eventID:        "ev-missing",
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "service error",
			eventID:        "ev-1",
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{listBookingsErr: tt.fakeErr, listBookingsResult: tt.fakeResult}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/events/"+tt.eventID+"/bookings", nil)
			if tt.eventID != "" {
				req.SetPathValue("eventID", tt.eventID)
			}
			rr := httptest.NewRecorder()

			ctrl.ListEventBookings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK && tt.checkBookings != nil {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var bookings []domain.Booking
				require.NoError(t, json.Unmarshal(dataBytes, &bookings))
				tt.checkBookings(t, bookings)
				assert.Equal(t, tt.eventID, fake.lastListEventID)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}
