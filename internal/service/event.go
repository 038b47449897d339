package service

import (
	"context"
	"fmt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// EventService manages events and their rosters.
type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 req.Type,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		ImageURL:             req.ImageURL,
		RegistrationRequired: req.RegistrationRequired,
		MaxParticipants:      req.MaxParticipants,
		Price:                req.Price,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return event, nil
}

// ListUpcoming returns future events ordered soonest first.
func (s *EventService) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.ListUpcoming(ctx)
}

// Get returns the event with its roster attached.
func (s *EventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	users, err := s.eventRepo.GetRegisteredUsers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	event.RegisteredUsers = users
	return event, nil
}

// Register adds the user to the event roster and returns the event with
// the refreshed roster. Duplicate and full-event outcomes surface as
// model.ErrAlreadyRegistered and model.ErrEventFull.
func (s *EventService) Register(ctx context.Context, eventID, userID int64) (*model.Event, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Register(ctx, eventID, userID); err != nil {
		return nil, err
	}

	return s.Get(ctx, eventID)
}
