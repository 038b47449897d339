package model

import (
	"errors"
	"time"
)

// CartItem is one line of a user's cart. At most one row exists per
// (user, artwork); repeated adds aggregate into Quantity.
type CartItem struct {
	UserID    int64     `db:"user_id" json:"-"`
	ArtworkID int64     `db:"artwork_id" json:"artwork_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Joined field; nil when the referenced artwork no longer exists.
	Artwork *Artwork `json:"artwork,omitempty"`
}

// AddToCartRequest is the request body for POST /api/cart.
// Quantity defaults to 1 when omitted.
type AddToCartRequest struct {
	ArtworkID int64 `json:"artworkId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"omitempty,min=1"`
}

// AddToFavoritesRequest is the request body for POST /api/favorites
type AddToFavoritesRequest struct {
	ArtworkID int64 `json:"artworkId" validate:"required"`
}

// ErrAlreadyFavorite is returned when the artwork is already in the
// user's favorites
var ErrAlreadyFavorite = errors.New("already in favorites")
