package model

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// Blog represents an article written by a user. The published flag gates
// visibility in list responses.
type Blog struct {
	ID        int64          `db:"id" json:"id"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	AuthorID  int64          `db:"author_id" json:"author_id"`
	ImageURL  *string        `db:"image_url" json:"image_url,omitempty"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	Published bool           `db:"published" json:"published"`
	ViewCount int            `db:"view_count" json:"view_count"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`

	// Joined field
	Author *UserSummary `json:"author,omitempty"`
}

// CreateBlogRequest is the request body for POST /api/blogs.
// The author is always the authenticated user.
type CreateBlogRequest struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	ImageURL  *string  `json:"image_url"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

// ErrBlogNotFound is returned when a blog cannot be found
var ErrBlogNotFound = errors.New("blog not found")
