package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventlist/config"
	_ "eventlist/docs"
	"eventlist/internal/adapters/auth"
	"eventlist/internal/adapters/email"
	delivery "eventlist/internal/delivery/http"
	"eventlist/internal/delivery/http/controllers"
	"eventlist/internal/delivery/http/middleware"
	"eventlist/internal/metrics"
	"eventlist/internal/repository/postgres"
	"eventlist/internal/services"
)

const (
	bcryptCost      = 12
	tokenExpiry     = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title Event Listing API
// @version 1.0
// @description Public event listing with organizer-managed events and attendee bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	// The store dials lazily; the server starts even when the database is down
	// and requests fail with 503 until it comes back.
	store := postgres.NewStore(cfg.DBUrl)
	defer store.Close()

	eventRepo := postgres.NewEventRepository(store)
	bookingRepo := postgres.NewBookingRepository(store)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger)

	codec := auth.NewJWTCodec(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcryptCost)
	authService := services.NewAuthService(hasher, codec, cfg.AdminPasswordHash, cfg.AdminPasswordSalt, tokenExpiry)

	eventController := controllers.NewEventController(logger, eventService)
	bookingController := controllers.NewBookingController(logger, bookingService)
	authController := controllers.NewAuthController(logger, authService)

	m := metrics.New()
	mux := delivery.NewRouter(eventController, bookingController, authController, codec, m)

	var handler http.Handler = mux
	handler = middleware.Logging(logger, handler)
	handler = middleware.Metrics(m, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
