package model

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// Artwork availability states
const (
	AvailabilityAvailable = "available"
	AvailabilitySold      = "sold"
	AvailabilityReserved  = "reserved"
)

// SortTrending selects ranking by recent view activity instead of the
// default creation-descending order.
const SortTrending = "trending"

// Artwork represents a catalog item owned by exactly one artist.
type Artwork struct {
	ID           int64          `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	ArtistID     int64          `db:"artist_id" json:"artist_id"`
	Images       pq.StringArray `db:"images" json:"images"`
	Price        float64        `db:"price" json:"price"`
	Category     string         `db:"category" json:"category"`
	Materials    pq.StringArray `db:"materials" json:"materials"`
	Availability string         `db:"availability" json:"availability"`
	Featured     bool           `db:"featured" json:"featured"`
	LikeCount    int            `db:"like_count" json:"like_count"`
	ViewCount    int            `db:"view_count" json:"view_count"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`

	// Joined fields
	Artist *ArtistSummary `json:"artist,omitempty"`
}

// CreateArtworkRequest is the request body for POST /api/artworks
type CreateArtworkRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ArtistID     int64    `json:"artist_id" validate:"required"`
	Images       []string `json:"images"`
	Price        *float64 `json:"price" validate:"required,min=0"`
	Category     string   `json:"category" validate:"required,oneof=sculpture painting installation furniture jewelry textile other"`
	Materials    []string `json:"materials"`
	Availability string   `json:"availability" validate:"omitempty,oneof=available sold reserved"`
	Featured     bool     `json:"featured"`
}

// UpdateArtworkRequest is the request body for PUT /api/artworks/:id.
// Nil fields are left unchanged.
type UpdateArtworkRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Images       *[]string `json:"images"`
	Price        *float64  `json:"price" validate:"omitempty,min=0"`
	Category     *string   `json:"category" validate:"omitempty,oneof=sculpture painting installation furniture jewelry textile other"`
	Materials    *[]string `json:"materials"`
	Availability *string   `json:"availability" validate:"omitempty,oneof=available sold reserved"`
	Featured     *bool     `json:"featured"`
}

// ArtworkFilter holds optional list predicates. Nil/zero values mean
// "unconstrained".
type ArtworkFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	ArtistID *int64
	SortBy   string // "" for newest first, SortTrending for view-ranked
}

// ErrArtworkNotFound is returned when an artwork cannot be found
var ErrArtworkNotFound = errors.New("artwork not found")
