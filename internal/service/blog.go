package service

import (
	"context"
	"fmt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// BlogService manages articles. Listing only shows published posts; a
// direct fetch works for drafts too and counts as a view.
type BlogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// Create stores a new article authored by the given user. Posts are
// published unless the request says otherwise.
func (s *BlogService) Create(ctx context.Context, authorID int64, req *model.CreateBlogRequest) (*model.Blog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	blog := &model.Blog{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		Published: published,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("creating blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) ListPublished(ctx context.Context) ([]model.Blog, error) {
	return s.blogRepo.ListPublished(ctx)
}

// Get returns the article after bumping its view counter.
func (s *BlogService) Get(ctx context.Context, id int64) (*model.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}
