package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventlist/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, candidate *domain.Event) error {
	// A fresh record always derives its slug from the title.
	if err := domain.NormalizeEvent(candidate, true); err != nil {
		return err
	}

	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// The slug is regenerated only when the title actually changes; re-saving
	// an otherwise-edited event keeps the slug it was published under.
	titleChanged := patch.Title != nil && *patch.Title != event.Title
	applyPatch(event, patch)

	if err := domain.NormalizeEvent(event, titleChanged); err != nil {
		return nil, err
	}
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func applyPatch(e *domain.Event, patch domain.EventPatch) {
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Overview != nil {
		e.Overview = *patch.Overview
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	if patch.Venue != nil {
		e.Venue = *patch.Venue
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Mode != nil {
		e.Mode = *patch.Mode
	}
	if patch.Audience != nil {
		e.Audience = *patch.Audience
	}
	if patch.Agenda != nil {
		e.Agenda = patch.Agenda
	}
	if patch.Organizer != nil {
		e.Organizer = *patch.Organizer
	}
	if patch.Tags != nil {
		e.Tags = patch.Tags
	}
}
