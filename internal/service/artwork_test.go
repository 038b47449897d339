package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"

	"artzone/internal/model"
	"artzone/internal/queue"
)

type mockArtworkRepository struct {
	createFn         func(ctx context.Context, artwork *model.Artwork) error
	getByIDFn        func(ctx context.Context, id int64) (*model.Artwork, error)
	getByIDsFn       func(ctx context.Context, ids []int64) ([]model.Artwork, error)
	listFn           func(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error)
	listByArtistFn   func(ctx context.Context, artistID int64) ([]model.Artwork, error)
	updateFn         func(ctx context.Context, id int64, req *model.UpdateArtworkRequest) (*model.Artwork, error)
	deleteFn         func(ctx context.Context, id int64) error
	incrementViewsFn func(ctx context.Context, id int64) (*model.Artwork, error)
}

func (m *mockArtworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	if m.createFn != nil {
		return m.createFn(ctx, artwork)
	}
	return nil
}

func (m *mockArtworkRepository) GetByID(ctx context.Context, id int64) (*model.Artwork, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrArtworkNotFound
}

func (m *mockArtworkRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Artwork, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return []model.Artwork{}, nil
}

func (m *mockArtworkRepository) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Artwork{}, nil
}

func (m *mockArtworkRepository) ListByArtist(ctx context.Context, artistID int64) ([]model.Artwork, error) {
	if m.listByArtistFn != nil {
		return m.listByArtistFn(ctx, artistID)
	}
	return []model.Artwork{}, nil
}

func (m *mockArtworkRepository) Update(ctx context.Context, id int64, req *model.UpdateArtworkRequest) (*model.Artwork, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return nil, model.ErrArtworkNotFound
}

func (m *mockArtworkRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockArtworkRepository) IncrementViews(ctx context.Context, id int64) (*model.Artwork, error) {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, id)
	}
	return nil, model.ErrArtworkNotFound
}

type mockArtistRepository struct {
	createFn  func(ctx context.Context, artist *model.Artist) error
	getByIDFn func(ctx context.Context, id int64) (*model.Artist, error)
	listFn    func(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, error)
	updateFn  func(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.Artist, error)
}

func (m *mockArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	if m.createFn != nil {
		return m.createFn(ctx, artist)
	}
	return nil
}

func (m *mockArtistRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrArtistNotFound
}

func (m *mockArtistRepository) List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Artist{}, nil
}

func (m *mockArtistRepository) Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.Artist, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return nil, model.ErrArtistNotFound
}

// mockPublisher records published events.
type mockPublisher struct {
	published []queue.ActivityEvent
	publishFn func(ctx context.Context, stream string, event queue.ActivityEvent) (string, error)
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.ActivityEvent) (string, error) {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, stream, event)
	}
	return "1-0", nil
}

// mockTrendingCache serves a fixed ranking.
type mockTrendingCache struct {
	top   []int64
	topFn func(ctx context.Context, limit int) ([]int64, error)
}

func (m *mockTrendingCache) Bump(ctx context.Context, artworkID int64) error   { return nil }
func (m *mockTrendingCache) Remove(ctx context.Context, artworkID int64) error { return nil }
func (m *mockTrendingCache) Size(ctx context.Context) (int64, error)           { return int64(len(m.top)), nil }

func (m *mockTrendingCache) Top(ctx context.Context, limit int) ([]int64, error) {
	if m.topFn != nil {
		return m.topFn(ctx, limit)
	}
	return m.top, nil
}

func TestArtworkService_Get_PublishesViewEvent(t *testing.T) {
	repo := &mockArtworkRepository{
		incrementViewsFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id, Title: "Tide Line", ViewCount: 5}, nil
		},
	}
	pub := &mockPublisher{}
	svc := NewArtworkService(repo, &mockArtistRepository{}, pub, nil, nil)

	artwork, err := svc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if artwork.ViewCount != 5 {
		t.Errorf("view_count = %d, want 5", artwork.ViewCount)
	}

	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	if pub.published[0].Type != queue.EventArtworkViewed {
		t.Errorf("event type = %q, want %q", pub.published[0].Type, queue.EventArtworkViewed)
	}
	if pub.published[0].ArtworkID != 42 {
		t.Errorf("event artwork = %d, want 42", pub.published[0].ArtworkID)
	}
}

func TestArtworkService_Get_PublishFailureDoesNotFailView(t *testing.T) {
	repo := &mockArtworkRepository{
		incrementViewsFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id}, nil
		},
	}
	pub := &mockPublisher{
		publishFn: func(ctx context.Context, stream string, event queue.ActivityEvent) (string, error) {
			return "", errors.New("redis down")
		},
	}
	svc := NewArtworkService(repo, &mockArtistRepository{}, pub, nil, nil)

	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatalf("view should succeed despite publish failure, got: %v", err)
	}
}

func TestArtworkService_Get_NoPublisher(t *testing.T) {
	repo := &mockArtworkRepository{
		incrementViewsFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id}, nil
		},
	}
	svc := NewArtworkService(repo, &mockArtistRepository{}, nil, nil, nil)

	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatalf("expected no error without a publisher, got: %v", err)
	}
}

func TestArtworkService_List_Trending(t *testing.T) {
	var hydrated []int64
	repo := &mockArtworkRepository{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]model.Artwork, error) {
			hydrated = ids
			artworks := make([]model.Artwork, len(ids))
			for i, id := range ids {
				artworks[i] = model.Artwork{ID: id}
			}
			return artworks, nil
		},
	}
	trending := &mockTrendingCache{top: []int64{9, 4, 7}}
	svc := NewArtworkService(repo, &mockArtistRepository{}, nil, trending, nil)

	artworks, err := svc.List(context.Background(), model.ArtworkFilter{SortBy: model.SortTrending})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(hydrated) != 3 || hydrated[0] != 9 || hydrated[1] != 4 || hydrated[2] != 7 {
		t.Errorf("hydrated ids = %v, want ranking order [9 4 7]", hydrated)
	}
	if len(artworks) != 3 || artworks[0].ID != 9 {
		t.Errorf("unexpected result order: %+v", artworks)
	}
}

func TestArtworkService_List_TrendingEmpty(t *testing.T) {
	svc := NewArtworkService(&mockArtworkRepository{}, &mockArtistRepository{}, nil, &mockTrendingCache{}, nil)

	artworks, err := svc.List(context.Background(), model.ArtworkFilter{SortBy: model.SortTrending})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(artworks) != 0 {
		t.Errorf("expected empty result with an empty ranking, got %d", len(artworks))
	}
}

func TestArtworkService_List_TrendingFallback(t *testing.T) {
	listed := false
	repo := &mockArtworkRepository{
		listFn: func(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
			listed = true
			if filter.SortBy != "" {
				t.Errorf("fallback should clear sortBy, got %q", filter.SortBy)
			}
			return []model.Artwork{{ID: 1}}, nil
		},
	}
	trending := &mockTrendingCache{
		topFn: func(ctx context.Context, limit int) ([]int64, error) {
			return nil, errors.New("redis down")
		},
	}
	svc := NewArtworkService(repo, &mockArtistRepository{}, nil, trending, nil)

	artworks, err := svc.List(context.Background(), model.ArtworkFilter{SortBy: model.SortTrending})
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if !listed || len(artworks) != 1 {
		t.Error("expected newest-first listing as fallback")
	}
}

func TestArtworkService_Delete_PublishesDeleteEvent(t *testing.T) {
	repo := &mockArtworkRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id}, nil
		},
	}
	pub := &mockPublisher{}
	svc := NewArtworkService(repo, &mockArtistRepository{}, pub, nil, nil)

	if err := svc.Delete(context.Background(), 13); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(pub.published) != 1 || pub.published[0].Type != queue.EventArtworkDeleted {
		t.Errorf("expected one delete event, got: %+v", pub.published)
	}
}

type mockImageCleaner struct {
	deleted []string
	err     error
}

func (m *mockImageCleaner) DeleteImageByURL(ctx context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return m.err
}

func TestArtworkService_Delete_CleansUpImages(t *testing.T) {
	repo := &mockArtworkRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{
				ID:     id,
				Images: pq.StringArray{"https://img.example.com/artworks/a.jpg", "https://img.example.com/artworks/b.jpg"},
			}, nil
		},
	}
	cleaner := &mockImageCleaner{}
	svc := NewArtworkService(repo, &mockArtistRepository{}, nil, nil, cleaner)

	if err := svc.Delete(context.Background(), 13); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(cleaner.deleted) != 2 {
		t.Fatalf("deleted %d images, want 2", len(cleaner.deleted))
	}
	if cleaner.deleted[0] != "https://img.example.com/artworks/a.jpg" {
		t.Errorf("unexpected first cleanup url: %s", cleaner.deleted[0])
	}
}

func TestArtworkService_Delete_CleanupFailureDoesNotFailDelete(t *testing.T) {
	repo := &mockArtworkRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id, Images: pq.StringArray{"https://img.example.com/artworks/a.jpg"}}, nil
		},
	}
	cleaner := &mockImageCleaner{err: errors.New("bucket unreachable")}
	svc := NewArtworkService(repo, &mockArtistRepository{}, nil, nil, cleaner)

	if err := svc.Delete(context.Background(), 13); err != nil {
		t.Errorf("expected delete to succeed despite cleanup failure, got: %v", err)
	}
}

func TestArtworkService_Create_ArtistMustExist(t *testing.T) {
	svc := NewArtworkService(&mockArtworkRepository{}, &mockArtistRepository{}, nil, nil, nil)

	price := 120.0
	_, err := svc.Create(context.Background(), &model.CreateArtworkRequest{
		Title:       "Tide Line",
		Description: "Driftwood and sea glass",
		ArtistID:    99,
		Price:       &price,
		Category:    "sculpture",
	})
	if !errors.Is(err, model.ErrArtistNotFound) {
		t.Errorf("expected ErrArtistNotFound, got: %v", err)
	}
}
