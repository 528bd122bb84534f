package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// BookingSuccessResponse is the success response envelope for POST /bookings (201).
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBookingsSuccessResponse is the success response envelope for GET /events/{eventID}/bookings (200).
type ListBookingsSuccessResponse struct {
	Data  []*domain.Booking `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Creates a booking for the given event. The email is stored trimmed and lower-cased; the referenced event must exist.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing event_id or invalid email)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (referenced event does not exist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), req.EventID, req.Email)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Message)
		case errors.Is(err, domain.ErrEventGone):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, domain.ErrEventGone.Error())
		case errors.Is(err, domain.ErrStoreUnavailable):
			c.Logger.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "event store unavailable")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ListEventBookings godoc
// @Summary List bookings for an event
// @Description Returns the bookings recorded against the event, newest first.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ListBookingsSuccessResponse "data is an array of bookings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	bookings, err := c.Service.ListEventBookings(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}
