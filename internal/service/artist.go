package service

import (
	"context"
	"fmt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// ArtistService manages maker profiles.
type ArtistService struct {
	artistRepo  repository.ArtistRepository
	artworkRepo repository.ArtworkRepository
}

func NewArtistService(artistRepo repository.ArtistRepository, artworkRepo repository.ArtworkRepository) *ArtistService {
	return &ArtistService{artistRepo: artistRepo, artworkRepo: artworkRepo}
}

// Create stores a new maker profile linked to the creating user's account.
func (s *ArtistService) Create(ctx context.Context, userID int64, req *model.CreateArtistRequest) (*model.Artist, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	artist := &model.Artist{
		Name:      req.Name,
		Bio:       req.Bio,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
		UserID:    &userID,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		Website:   req.Website,
	}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("creating artist: %w", err)
	}
	return artist, nil
}

func (s *ArtistService) List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, error) {
	return s.artistRepo.List(ctx, filter)
}

// Get returns the artist with their catalog attached.
func (s *ArtistService) Get(ctx context.Context, id int64) (*model.ArtistDetail, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artworks, err := s.artworkRepo.ListByArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching artworks: %w", err)
	}

	return &model.ArtistDetail{Artist: *artist, Artworks: artworks}, nil
}

func (s *ArtistService) Update(ctx context.Context, id int64, req *model.UpdateArtistRequest) (*model.Artist, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.artistRepo.Update(ctx, id, req)
}
