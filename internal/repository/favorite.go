package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artzone/internal/model"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the favorite. ON CONFLICT DO NOTHING plus RowsAffected lets
// the caller distinguish a fresh insert from a duplicate without a prior
// read, so concurrent adds cannot both succeed.
func (r *favoriteRepository) Add(ctx context.Context, userID, artworkID int64) (bool, error) {
	query := `
		INSERT INTO favorites (user_id, artwork_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, artwork_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, userID, artworkID)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Remove deletes the favorite; removing an absent one is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, userID, artworkID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND artwork_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, artworkID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// GetArtworks resolves the favorites set to artwork rows, dropping entries
// whose artwork no longer exists.
func (r *favoriteRepository) GetArtworks(ctx context.Context, userID int64) ([]model.Artwork, error) {
	query := `
		SELECT a.id, a.title, a.description, a.artist_id, a.images, a.price, a.category,
		       a.materials, a.availability, a.featured, a.like_count, a.view_count, a.created_at
		FROM favorites f
		JOIN artworks a ON a.id = f.artwork_id
		WHERE f.user_id = $1
		ORDER BY f.created_at
	`

	artworks := []model.Artwork{}
	err := r.db.SelectContext(ctx, &artworks, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	return artworks, nil
}
