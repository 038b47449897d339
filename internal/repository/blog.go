package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"artzone/internal/model"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, b *model.Blog) error {
	query := `
		INSERT INTO blogs (title, content, author_id, image_url, tags, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, view_count, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		b.Title, b.Content, b.AuthorID, b.ImageURL, pq.Array(b.Tags), b.Published)

	err := row.Scan(&b.ID, &b.ViewCount, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	return nil
}

// ListPublished returns published blogs newest first with author summaries
// joined in a single query.
func (r *blogRepository) ListPublished(ctx context.Context) ([]model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.author_id, b.image_url, b.tags,
		       b.published, b.view_count, b.created_at,
		       u.id AS "author.id", u.name AS "author.name", u.email AS "author.email"
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.published
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		var author model.UserSummary
		err := rows.Scan(
			&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.ImageURL, &b.Tags,
			&b.Published, &b.ViewCount, &b.CreatedAt,
			&author.ID, &author.Name, &author.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		b.Author = &author
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blogs: %w", err)
	}

	return blogs, nil
}

// GetByID bumps the view counter atomically and returns the updated row
// with its author attached.
func (r *blogRepository) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	query := `
		UPDATE blogs SET view_count = view_count + 1
		WHERE id = $1
		RETURNING id, title, content, author_id, image_url, tags, published, view_count, created_at
	`

	var b model.Blog
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	var author model.UserSummary
	err = r.db.GetContext(ctx, &author, `SELECT id, name, email FROM users WHERE id = $1`, b.AuthorID)
	if err == nil {
		b.Author = &author
	}

	return &b, nil
}
