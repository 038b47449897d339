package model

import (
	"errors"
	"time"
)

// Event represents a workshop, exhibition, virtual session or competition.
// RegisteredCount is maintained transactionally with the roster so the
// capacity check can be a single conditional update.
type Event struct {
	ID                   int64     `db:"id" json:"id"`
	Title                string    `db:"title" json:"title"`
	Description          string    `db:"description" json:"description"`
	Type                 string    `db:"type" json:"type"`
	Date                 time.Time `db:"date" json:"date"`
	Time                 string    `db:"time" json:"time"`
	Location             string    `db:"location" json:"location"`
	ImageURL             *string   `db:"image_url" json:"image_url,omitempty"`
	RegistrationRequired bool      `db:"registration_required" json:"registration_required"`
	MaxParticipants      *int      `db:"max_participants" json:"max_participants,omitempty"`
	RegisteredCount      int       `db:"registered_count" json:"registered_count"`
	Price                float64   `db:"price" json:"price"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`

	// Joined field
	RegisteredUsers []UserSummary `json:"registered_users,omitempty"`
}

// CreateEventRequest is the request body for POST /api/events
type CreateEventRequest struct {
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description" validate:"required"`
	Type                 string    `json:"type" validate:"required,oneof=workshop exhibition virtual competition"`
	Date                 time.Time `json:"date" validate:"required"`
	Time                 string    `json:"time" validate:"required"`
	Location             string    `json:"location" validate:"required"`
	ImageURL             *string   `json:"image_url"`
	RegistrationRequired bool      `json:"registration_required"`
	MaxParticipants      *int      `json:"max_participants" validate:"omitempty,min=1"`
	Price                float64   `json:"price" validate:"min=0"`
}

var (
	// ErrEventNotFound is returned when an event cannot be found
	ErrEventNotFound = errors.New("event not found")

	// ErrAlreadyRegistered is returned on a duplicate registration
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrEventFull is returned when the roster has reached max_participants
	ErrEventFull = errors.New("event is full")
)
