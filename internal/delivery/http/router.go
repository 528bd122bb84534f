package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventlist/internal/delivery/http/controllers"
	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/delivery/http/middleware"
	"eventlist/internal/domain"
	"eventlist/internal/metrics"
)

// NewRouter initializes the HTTP router with all application routes.
// Mutating event routes and the booking listing require a bearer token.
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	m *metrics.Metrics,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Public listing surface
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("POST /bookings", bookingController.CreateBooking)

	// Organizer surface
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PATCH /events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("GET /events/{eventID}/bookings", requireAuth(bookingController.ListEventBookings))

	// Auth
	mux.HandleFunc("POST /auth/token", authController.Login)

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", m.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
