package repository

import (
	"context"

	"artzone/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, error)
	Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.Artist, error)
}

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *model.Artwork) error
	GetByID(ctx context.Context, id int64) (*model.Artwork, error)
	// GetByIDs preserves the order of the input ids in its result.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Artwork, error)
	List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error)
	ListByArtist(ctx context.Context, artistID int64) ([]model.Artwork, error)
	Update(ctx context.Context, id int64, req *model.UpdateArtworkRequest) (*model.Artwork, error)
	Delete(ctx context.Context, id int64) error
	// IncrementViews bumps the view counter atomically and returns the
	// updated row.
	IncrementViews(ctx context.Context, id int64) (*model.Artwork, error)
}

type CartRepository interface {
	// Upsert inserts a cart line or, when one exists for the artwork,
	// adds quantity to it. A single statement, safe under concurrency.
	Upsert(ctx context.Context, userID, artworkID int64, quantity int) error
	// Remove deletes the line. Removing an absent line is not an error.
	Remove(ctx context.Context, userID, artworkID int64) error
	// GetItems returns the cart with artwork projections resolved.
	// Lines whose artwork no longer exists are dropped from the result.
	GetItems(ctx context.Context, userID int64) ([]model.CartItem, error)
}

type FavoriteRepository interface {
	// Add returns false when the artwork was already a favorite.
	Add(ctx context.Context, userID, artworkID int64) (bool, error)
	Remove(ctx context.Context, userID, artworkID int64) error
	GetArtworks(ctx context.Context, userID int64) ([]model.Artwork, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	ListUpcoming(ctx context.Context) ([]model.Event, error)
	GetRegisteredUsers(ctx context.Context, eventID int64) ([]model.UserSummary, error)
	// Register appends the user to the roster and takes a seat, both in
	// one transaction. Returns model.ErrAlreadyRegistered for a duplicate
	// and model.ErrEventFull when the event is at capacity.
	Register(ctx context.Context, eventID, userID int64) error
}

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	ListPublished(ctx context.Context) ([]model.Blog, error)
	// GetByID bumps the view counter atomically and returns the updated row.
	GetByID(ctx context.Context, id int64) (*model.Blog, error)
}
