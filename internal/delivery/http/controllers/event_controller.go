package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/domain"
)

// CreateEventRequest is the request body for POST /events. Slug, id, and
// timestamps are server-generated; date and time accept loose input and are
// stored in canonical form.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Image       *string  `json:"image"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   *string  `json:"organizer"`
	Tags        []string `json:"tags"`
}

// EventSuccessResponse is the success response envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsResponse is the data payload for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DeleteEventResponse is the data payload for DELETE /events/{eventID} (200).
type DeleteEventResponse struct {
	Status string `json:"status"`
}

// DeleteEventSuccessResponse is the success response envelope for DELETE /events/{eventID} (200).
type DeleteEventSuccessResponse struct {
	Data  DeleteEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a published event. The slug is derived from the title; date and time are normalized to YYYY-MM-DD and 24-hour HH:mm.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (validation failure)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns the event listing ordered by date and time, paginated.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events and pagination metadata"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns the event published under the given slug.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update event details
// @Description Applies a partial update. The slug is regenerated only when the title changes; other edits keep the published slug.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (validation failure)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event from the listing.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.DeleteEventSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// writeEventError maps service errors onto the response envelope.
func (c *EventController) writeEventError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Message)
	case errors.Is(err, domain.ErrSlugTaken):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, domain.ErrSlugTaken.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.Logger.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "event store unavailable")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
