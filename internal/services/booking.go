package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventlist/internal/domain"
)

type bookingService struct {
	bookingRepo  domain.BookingRepository
	eventRepo    domain.EventRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewBookingService creates a BookingService with the given repositories.
// emailService may be nil, in which case no confirmation emails are sent.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		eventRepo:    eventRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	now := time.Now()
	booking := domain.NewBooking(eventID, email, now, now)
	if err := domain.NormalizeBooking(booking); err != nil {
		return nil, err
	}

	// Point-in-time referential check; no lock is held between the check and
	// the insert, so a concurrent delete surfaces from the repository instead.
	exists, err := s.eventRepo.ExistsByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return nil, domain.ErrEventGone
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrEventGone) {
			return nil, domain.ErrEventGone
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking)
	return booking, nil
}

func (s *bookingService) ListEventBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	exists, err := s.eventRepo.ExistsByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

// sendConfirmation emails the booker about their reservation. A send failure is
// logged and never fails the booking itself.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping booking confirmation email", "booking_id", booking.ID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:         booking.Email,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		EventVenue:    event.Venue,
		EventLocation: event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation email failed", "booking_id", booking.ID, "err", err)
	}
}
