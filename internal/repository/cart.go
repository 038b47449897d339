package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artzone/internal/model"
)

type cartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) CartRepository {
	return &cartRepository{db: db}
}

// Upsert adds a cart line or increments the existing one. A single
// INSERT ... ON CONFLICT statement, so two concurrent adds for the same
// artwork both land: quantities aggregate instead of overwriting.
func (r *cartRepository) Upsert(ctx context.Context, userID, artworkID int64, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, artwork_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, artwork_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, artworkID, quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

// Remove deletes the line for the artwork. Zero rows affected is fine:
// removal is idempotent.
func (r *cartRepository) Remove(ctx context.Context, userID, artworkID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND artwork_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, artworkID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// GetItems returns the user's cart with each line's artwork resolved.
// The inner join drops lines whose artwork has since been deleted, so
// dangling references never surface to clients.
func (r *cartRepository) GetItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT c.user_id, c.artwork_id, c.quantity, c.created_at, c.updated_at,
		       a.id, a.title, a.description, a.artist_id, a.images, a.price, a.category,
		       a.materials, a.availability, a.featured, a.like_count, a.view_count, a.created_at AS artwork_created_at
		FROM cart_items c
		JOIN artworks a ON a.id = c.artwork_id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		var a model.Artwork
		err := rows.Scan(
			&item.UserID, &item.ArtworkID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&a.ID, &a.Title, &a.Description, &a.ArtistID, &a.Images, &a.Price, &a.Category,
			&a.Materials, &a.Availability, &a.Featured, &a.LikeCount, &a.ViewCount, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.Artwork = &a
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return items, nil
}
