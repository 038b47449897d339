package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artzone/internal/model"
)

type artistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, bio, specialty, image_url, rating, follower_count,
	user_id, instagram, facebook, website, created_at`

func (r *artistRepository) Create(ctx context.Context, a *model.Artist) error {
	query := `
		INSERT INTO artists (name, bio, specialty, image_url, user_id, instagram, facebook, website)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), '/images/default-artist.jpg'), $5, $6, $7, $8)
		RETURNING id, image_url, rating, follower_count, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		a.Name, a.Bio, a.Specialty, a.ImageURL, a.UserID, a.Instagram, a.Facebook, a.Website)

	err := row.Scan(&a.ID, &a.ImageURL, &a.Rating, &a.FollowerCount, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	return nil
}

// GetByID retrieves an artist and, when linked, the owning user's summary.
// Two queries: the user join only matters for a minority of artists and the
// profile fetch should not fail because the account row is missing.
func (r *artistRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	var a model.Artist
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	if a.UserID != nil {
		var u model.UserSummary
		err = r.db.GetContext(ctx, &u, `SELECT id, name, email FROM users WHERE id = $1`, *a.UserID)
		if err == nil {
			a.User = &u
		}
	}

	return &a, nil
}

func (r *artistRepository) List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists`
	var args []interface{}

	if filter.Specialty != "" {
		query += ` WHERE specialty = $1`
		args = append(args, filter.Specialty)
	}

	// Sort column is chosen from a fixed set, never from raw input.
	switch filter.SortBy {
	case "rating":
		query += ` ORDER BY rating DESC`
	case "followers":
		query += ` ORDER BY follower_count DESC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	artists := []model.Artist{}
	err := r.db.SelectContext(ctx, &artists, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	return artists, nil
}

// Update applies the non-nil fields of req. COALESCE keeps the stored value
// for fields the caller omitted.
func (r *artistRepository) Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.Artist, error) {
	query := `
		UPDATE artists SET
			name       = COALESCE($2, name),
			bio        = COALESCE($3, bio),
			specialty  = COALESCE($4, specialty),
			image_url  = COALESCE($5, image_url),
			rating     = COALESCE($6, rating),
			instagram  = COALESCE($7, instagram),
			facebook   = COALESCE($8, facebook),
			website    = COALESCE($9, website)
		WHERE id = $1
		RETURNING ` + artistColumns

	var a model.Artist
	err := r.db.GetContext(ctx, &a, query, id,
		req.Name, req.Bio, req.Specialty, req.ImageURL, req.Rating,
		req.Instagram, req.Facebook, req.Website)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	return &a, nil
}
