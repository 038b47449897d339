package service

import (
	"context"
	"fmt"
	"log"

	"artzone/internal/cache"
	"artzone/internal/model"
	"artzone/internal/queue"
	"artzone/internal/repository"
)

// ImageCleaner removes stored artwork images by their public URL.
// *MediaService implements it.
type ImageCleaner interface {
	DeleteImageByURL(ctx context.Context, url string) error
}

// ArtworkService manages the catalog. The publisher, trending cache and
// image cleaner are optional; when nil the service degrades to plain
// database behavior.
type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
	artistRepo  repository.ArtistRepository
	publisher   queue.Publisher
	trending    cache.TrendingCache
	images      ImageCleaner
}

func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	artistRepo repository.ArtistRepository,
	publisher queue.Publisher,
	trending cache.TrendingCache,
	images ImageCleaner,
) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		artistRepo:  artistRepo,
		publisher:   publisher,
		trending:    trending,
		images:      images,
	}
}

func (s *ArtworkService) Create(ctx context.Context, req *model.CreateArtworkRequest) (*model.Artwork, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// The owning artist must exist before we insert a reference to it.
	if _, err := s.artistRepo.GetByID(ctx, req.ArtistID); err != nil {
		return nil, err
	}

	artwork := &model.Artwork{
		Title:        req.Title,
		Description:  req.Description,
		ArtistID:     req.ArtistID,
		Images:       req.Images,
		Price:        *req.Price,
		Category:     req.Category,
		Materials:    req.Materials,
		Availability: req.Availability,
		Featured:     req.Featured,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		return nil, fmt.Errorf("creating artwork: %w", err)
	}
	return artwork, nil
}

// List applies the filter. When SortBy is trending and the ranking cache is
// available, the order comes from recent view activity; ids the catalog no
// longer contains are silently dropped by the hydration query.
func (s *ArtworkService) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	if filter.SortBy == model.SortTrending && s.trending != nil {
		ids, err := s.trending.Top(ctx, cache.TrendingCap)
		if err != nil {
			log.Printf("[ArtworkService] trending lookup failed, falling back to newest: %v", err)
			filter.SortBy = ""
			return s.artworkRepo.List(ctx, filter)
		}
		if len(ids) == 0 {
			return []model.Artwork{}, nil
		}
		return s.artworkRepo.GetByIDs(ctx, ids)
	}
	return s.artworkRepo.List(ctx, filter)
}

// Get returns the artwork after bumping its view counter. A view event is
// published for the activity workers; publish failures only log, a view
// must never fail because the queue is down.
func (s *ArtworkService) Get(ctx context.Context, id int64) (*model.Artwork, error) {
	artwork, err := s.artworkRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if _, err := s.publisher.Publish(ctx, queue.StreamActivity, queue.NewArtworkViewedEvent(id)); err != nil {
			log.Printf("[ArtworkService] publish view event failed: artwork=%d err=%v", id, err)
		}
	}
	return artwork, nil
}

func (s *ArtworkService) Update(ctx context.Context, id int64, req *model.UpdateArtworkRequest) (*model.Artwork, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.artworkRepo.Update(ctx, id, req)
}

// Delete removes the artwork, cleans up its stored images and tells the
// activity workers to drop it from the trending ranking. Image cleanup is
// best effort; a stranded object only costs storage.
func (s *ArtworkService) Delete(ctx context.Context, id int64) error {
	artwork, err := s.artworkRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.artworkRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.images != nil {
		for _, url := range artwork.Images {
			if err := s.images.DeleteImageByURL(ctx, url); err != nil {
				log.Printf("[ArtworkService] delete image failed: artwork=%d url=%s err=%v", id, url, err)
			}
		}
	}

	if s.publisher != nil {
		if _, err := s.publisher.Publish(ctx, queue.StreamActivity, queue.NewArtworkDeletedEvent(id)); err != nil {
			log.Printf("[ArtworkService] publish delete event failed: artwork=%d err=%v", id, err)
		}
	}
	return nil
}
