package model

import (
	"errors"
	"time"
)

// Artist represents a maker profile. It may be linked to a User account but
// is created independently in some flows.
type Artist struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Bio           string    `db:"bio" json:"bio"`
	Specialty     string    `db:"specialty" json:"specialty"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	Rating        float64   `db:"rating" json:"rating"`
	FollowerCount int       `db:"follower_count" json:"follower_count"`
	UserID        *int64    `db:"user_id" json:"user_id,omitempty"`
	Instagram     *string   `db:"instagram" json:"instagram,omitempty"`
	Facebook      *string   `db:"facebook" json:"facebook,omitempty"`
	Website       *string   `db:"website" json:"website,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	User *UserSummary `json:"user,omitempty"`
}

// ArtistSummary is the projection embedded in artwork responses.
type ArtistSummary struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	ImageURL  string `db:"image_url" json:"image_url"`
}

// ArtistDetail is an artist together with their artworks.
type ArtistDetail struct {
	Artist
	Artworks []Artwork `json:"artworks"`
}

// CreateArtistRequest is the request body for POST /api/artists
type CreateArtistRequest struct {
	Name      string  `json:"name" validate:"required"`
	Bio       string  `json:"bio" validate:"required"`
	Specialty string  `json:"specialty" validate:"required,oneof=plastic textile metal paper e-waste organic general"`
	ImageURL  string  `json:"image_url"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Website   *string `json:"website"`
}

// UpdateArtistRequest is the request body for PUT /api/artists/:id.
// Nil fields are left unchanged.
type UpdateArtistRequest struct {
	Name      *string  `json:"name"`
	Bio       *string  `json:"bio"`
	Specialty *string  `json:"specialty" validate:"omitempty,oneof=plastic textile metal paper e-waste organic general"`
	ImageURL  *string  `json:"image_url"`
	Rating    *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	Instagram *string  `json:"instagram"`
	Facebook  *string  `json:"facebook"`
	Website   *string  `json:"website"`
}

// ArtistFilter holds optional list predicates. Zero values mean
// "unconstrained".
type ArtistFilter struct {
	Specialty string
	SortBy    string // "rating", "followers", or "" for newest first
}

// ErrArtistNotFound is returned when an artist cannot be found
var ErrArtistNotFound = errors.New("artist not found")
