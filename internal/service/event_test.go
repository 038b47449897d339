package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"artzone/internal/model"
)

type mockEventRepository struct {
	createFn             func(ctx context.Context, event *model.Event) error
	getByIDFn            func(ctx context.Context, id int64) (*model.Event, error)
	listUpcomingFn       func(ctx context.Context) ([]model.Event, error)
	getRegisteredUsersFn func(ctx context.Context, eventID int64) ([]model.UserSummary, error)
	registerFn           func(ctx context.Context, eventID, userID int64) error
}

func (m *mockEventRepository) Create(ctx context.Context, event *model.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrEventNotFound
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	if m.listUpcomingFn != nil {
		return m.listUpcomingFn(ctx)
	}
	return []model.Event{}, nil
}

func (m *mockEventRepository) GetRegisteredUsers(ctx context.Context, eventID int64) ([]model.UserSummary, error) {
	if m.getRegisteredUsersFn != nil {
		return m.getRegisteredUsersFn(ctx, eventID)
	}
	return []model.UserSummary{}, nil
}

func (m *mockEventRepository) Register(ctx context.Context, eventID, userID int64) error {
	if m.registerFn != nil {
		return m.registerFn(ctx, eventID, userID)
	}
	return nil
}

func existingEventRepo() *mockEventRepository {
	return &mockEventRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Event, error) {
			max := 2
			return &model.Event{ID: id, Title: "Upcycling Workshop", MaxParticipants: &max}, nil
		},
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	tests := []struct {
		name string
		req  *model.CreateEventRequest
	}{
		{"missing title", &model.CreateEventRequest{Description: "d", Type: "workshop", Date: time.Now(), Time: "10:00", Location: "Hanoi"}},
		{"bad type", &model.CreateEventRequest{Title: "t", Description: "d", Type: "picnic", Date: time.Now(), Time: "10:00", Location: "Hanoi"}},
		{"negative price", &model.CreateEventRequest{Title: "t", Description: "d", Type: "workshop", Date: time.Now(), Time: "10:00", Location: "Hanoi", Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, model.ErrValidation) {
				t.Errorf("expected ErrValidation, got: %v", err)
			}
		})
	}
}

func TestEventService_Create_Success(t *testing.T) {
	repo := &mockEventRepository{
		createFn: func(ctx context.Context, event *model.Event) error {
			event.ID = 1
			return nil
		},
	}
	svc := NewEventService(repo)

	max := 30
	event, err := svc.Create(context.Background(), &model.CreateEventRequest{
		Title:                "Upcycling Workshop",
		Description:          "Turn plastic waste into planters",
		Type:                 "workshop",
		Date:                 time.Now().Add(72 * time.Hour),
		Time:                 "14:00",
		Location:             "Community Hall",
		RegistrationRequired: true,
		MaxParticipants:      &max,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if event.ID != 1 || event.MaxParticipants == nil || *event.MaxParticipants != 30 {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestEventService_Get_AttachesRoster(t *testing.T) {
	repo := &mockEventRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Event, error) {
			return &model.Event{ID: id, Title: "Upcycling Workshop", RegisteredCount: 2}, nil
		},
		getRegisteredUsersFn: func(ctx context.Context, eventID int64) ([]model.UserSummary, error) {
			return []model.UserSummary{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
		},
	}
	svc := NewEventService(repo)

	event, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(event.RegisteredUsers) != 2 {
		t.Errorf("roster length = %d, want 2", len(event.RegisteredUsers))
	}
}

func TestEventService_Register_Success(t *testing.T) {
	repo := existingEventRepo()
	var gotEventID, gotUserID int64
	repo.registerFn = func(ctx context.Context, eventID, userID int64) error {
		gotEventID, gotUserID = eventID, userID
		return nil
	}
	repo.getRegisteredUsersFn = func(ctx context.Context, eventID int64) ([]model.UserSummary, error) {
		return []model.UserSummary{{ID: 7, Name: "A"}}, nil
	}
	svc := NewEventService(repo)

	event, err := svc.Register(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotEventID != 3 || gotUserID != 7 {
		t.Errorf("registered (%d, %d), want (3, 7)", gotEventID, gotUserID)
	}
	if len(event.RegisteredUsers) != 1 || event.RegisteredUsers[0].ID != 7 {
		t.Errorf("unexpected roster: %+v", event.RegisteredUsers)
	}
}

func TestEventService_Register_EventNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	_, err := svc.Register(context.Background(), 404, 1)
	if !errors.Is(err, model.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got: %v", err)
	}
}

func TestEventService_Register_Duplicate(t *testing.T) {
	repo := existingEventRepo()
	repo.registerFn = func(ctx context.Context, eventID, userID int64) error {
		return model.ErrAlreadyRegistered
	}
	svc := NewEventService(repo)

	_, err := svc.Register(context.Background(), 3, 7)
	if !errors.Is(err, model.ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got: %v", err)
	}
}

func TestEventService_Register_EventFull(t *testing.T) {
	repo := existingEventRepo()
	repo.registerFn = func(ctx context.Context, eventID, userID int64) error {
		return model.ErrEventFull
	}
	svc := NewEventService(repo)

	_, err := svc.Register(context.Background(), 3, 7)
	if !errors.Is(err, model.ErrEventFull) {
		t.Errorf("expected ErrEventFull, got: %v", err)
	}
}
