package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"artzone/internal/model"
)

type artworkRepository struct {
	db *sqlx.DB
}

func NewArtworkRepository(db *sqlx.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

const artworkColumns = `id, title, description, artist_id, images, price, category,
	materials, availability, featured, like_count, view_count, created_at`

func (r *artworkRepository) Create(ctx context.Context, a *model.Artwork) error {
	query := `
		INSERT INTO artworks (title, description, artist_id, images, price, category, materials, availability, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8, ''), 'available'), $9)
		RETURNING id, availability, like_count, view_count, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		a.Title, a.Description, a.ArtistID, pq.Array(a.Images), a.Price,
		a.Category, pq.Array(a.Materials), a.Availability, a.Featured)

	err := row.Scan(&a.ID, &a.Availability, &a.LikeCount, &a.ViewCount, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert artwork: %w", err)
	}

	return nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id int64) (*model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = $1`

	var a model.Artwork
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}

	if err := r.attachArtists(ctx, []*model.Artwork{&a}); err != nil {
		return nil, err
	}

	return &a, nil
}

// GetByIDs retrieves artworks by id, preserving the order of the input.
// Missing ids are silently skipped (used for trending hydration, where a
// ranked artwork may have been deleted since it was scored).
func (r *artworkRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Artwork, error) {
	if len(ids) == 0 {
		return []model.Artwork{}, nil
	}

	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = ANY($1)`

	var artworks []model.Artwork
	err := r.db.SelectContext(ctx, &artworks, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get artworks by ids: %w", err)
	}

	byID := make(map[int64]model.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}
	ordered := make([]model.Artwork, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}

	if err := r.attachArtistsSlice(ctx, ordered); err != nil {
		return nil, err
	}

	return ordered, nil
}

func (r *artworkRepository) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE 1=1`
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		query += ` AND category = ` + arg(filter.Category)
	}
	if filter.Featured != nil {
		query += ` AND featured = ` + arg(*filter.Featured)
	}
	if filter.ArtistID != nil {
		query += ` AND artist_id = ` + arg(*filter.ArtistID)
	}
	if filter.MinPrice != nil {
		query += ` AND price >= ` + arg(*filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += ` AND price <= ` + arg(*filter.MaxPrice)
	}

	query += ` ORDER BY created_at DESC`

	artworks := []model.Artwork{}
	err := r.db.SelectContext(ctx, &artworks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	if err := r.attachArtistsSlice(ctx, artworks); err != nil {
		return nil, err
	}

	return artworks, nil
}

func (r *artworkRepository) ListByArtist(ctx context.Context, artistID int64) ([]model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE artist_id = $1 ORDER BY created_at DESC`

	artworks := []model.Artwork{}
	err := r.db.SelectContext(ctx, &artworks, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by artist: %w", err)
	}

	return artworks, nil
}

func (r *artworkRepository) Update(ctx context.Context, id int64, req *model.UpdateArtworkRequest) (*model.Artwork, error) {
	var images, materials interface{}
	if req.Images != nil {
		images = pq.Array(*req.Images)
	}
	if req.Materials != nil {
		materials = pq.Array(*req.Materials)
	}

	query := `
		UPDATE artworks SET
			title        = COALESCE($2, title),
			description  = COALESCE($3, description),
			images       = COALESCE($4, images),
			price        = COALESCE($5, price),
			category     = COALESCE($6, category),
			materials    = COALESCE($7, materials),
			availability = COALESCE($8, availability),
			featured     = COALESCE($9, featured)
		WHERE id = $1
		RETURNING ` + artworkColumns

	var a model.Artwork
	err := r.db.GetContext(ctx, &a, query, id,
		req.Title, req.Description, images, req.Price, req.Category,
		materials, req.Availability, req.Featured)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}

	return &a, nil
}

func (r *artworkRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrArtworkNotFound
	}

	return nil
}

// IncrementViews bumps the view counter and returns the updated row in one
// statement, so concurrent reads never lose an increment.
func (r *artworkRepository) IncrementViews(ctx context.Context, id int64) (*model.Artwork, error) {
	query := `
		UPDATE artworks SET view_count = view_count + 1
		WHERE id = $1
		RETURNING ` + artworkColumns

	var a model.Artwork
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	if err := r.attachArtists(ctx, []*model.Artwork{&a}); err != nil {
		return nil, err
	}

	return &a, nil
}

// attachArtistsSlice enriches artworks in place with their artist summaries.
func (r *artworkRepository) attachArtistsSlice(ctx context.Context, artworks []model.Artwork) error {
	ptrs := make([]*model.Artwork, len(artworks))
	for i := range artworks {
		ptrs[i] = &artworks[i]
	}
	return r.attachArtists(ctx, ptrs)
}

// attachArtists fetches the artist summaries for a set of artworks with one
// batch query (ANY($1)), avoiding N+1 lookups.
func (r *artworkRepository) attachArtists(ctx context.Context, artworks []*model.Artwork) error {
	if len(artworks) == 0 {
		return nil
	}

	idSet := make(map[int64]struct{}, len(artworks))
	var ids []int64
	for _, a := range artworks {
		if _, ok := idSet[a.ArtistID]; !ok {
			idSet[a.ArtistID] = struct{}{}
			ids = append(ids, a.ArtistID)
		}
	}

	query := `SELECT id, name, specialty, image_url FROM artists WHERE id = ANY($1)`
	var summaries []model.ArtistSummary
	err := r.db.SelectContext(ctx, &summaries, query, pq.Array(ids))
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load artist summaries: %w", err)
	}

	byID := make(map[int64]model.ArtistSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}
	for _, a := range artworks {
		if s, ok := byID[a.ArtistID]; ok {
			summary := s
			a.Artist = &summary
		}
	}

	return nil
}
