package service

import (
	"context"
	"errors"
	"testing"

	"artzone/internal/model"
)

func TestArtistService_Create_LinksUser(t *testing.T) {
	var created *model.Artist
	repo := &mockArtistRepository{
		createFn: func(ctx context.Context, artist *model.Artist) error {
			artist.ID = 1
			created = artist
			return nil
		},
	}
	svc := NewArtistService(repo, &mockArtworkRepository{})

	artist, err := svc.Create(context.Background(), 7, &model.CreateArtistRequest{
		Name:      "Mai Lan",
		Bio:       "Works with reclaimed fishing nets",
		Specialty: "plastic",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if artist.ID != 1 {
		t.Errorf("id = %d, want 1", artist.ID)
	}
	if created.UserID == nil || *created.UserID != 7 {
		t.Errorf("user link = %v, want 7", created.UserID)
	}
}

func TestArtistService_Create_Validation(t *testing.T) {
	svc := NewArtistService(&mockArtistRepository{}, &mockArtworkRepository{})

	_, err := svc.Create(context.Background(), 7, &model.CreateArtistRequest{
		Name:      "Mai Lan",
		Bio:       "Works with reclaimed fishing nets",
		Specialty: "glass",
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for unknown specialty, got: %v", err)
	}
}

func TestArtistService_Get_AttachesArtworks(t *testing.T) {
	artistRepo := &mockArtistRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Artist, error) {
			return &model.Artist{ID: id, Name: "Mai Lan"}, nil
		},
	}
	artworkRepo := &mockArtworkRepository{
		listByArtistFn: func(ctx context.Context, artistID int64) ([]model.Artwork, error) {
			return []model.Artwork{{ID: 10, ArtistID: artistID}}, nil
		},
	}
	svc := NewArtistService(artistRepo, artworkRepo)

	detail, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(detail.Artworks) != 1 || detail.Artworks[0].ID != 10 {
		t.Errorf("unexpected artworks: %+v", detail.Artworks)
	}
}

func TestArtistService_Get_NotFound(t *testing.T) {
	svc := NewArtistService(&mockArtistRepository{}, &mockArtworkRepository{})

	_, err := svc.Get(context.Background(), 404)
	if !errors.Is(err, model.ErrArtistNotFound) {
		t.Errorf("expected ErrArtistNotFound, got: %v", err)
	}
}
