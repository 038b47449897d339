package service

import (
	"context"
	"fmt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// FavoriteService manages per-user favorite sets.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	artworkRepo  repository.ArtworkRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, artworkRepo repository.ArtworkRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, artworkRepo: artworkRepo}
}

// Add marks an artwork as a favorite and returns the updated set. Adding an
// artwork already in the set is rejected with ErrAlreadyFavorite.
func (s *FavoriteService) Add(ctx context.Context, userID int64, req *model.AddToFavoritesRequest) ([]model.Artwork, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.artworkRepo.GetByID(ctx, req.ArtworkID); err != nil {
		return nil, err
	}

	inserted, err := s.favoriteRepo.Add(ctx, userID, req.ArtworkID)
	if err != nil {
		return nil, fmt.Errorf("adding favorite: %w", err)
	}
	if !inserted {
		return nil, model.ErrAlreadyFavorite
	}
	return s.favoriteRepo.GetArtworks(ctx, userID)
}

// Remove drops the artwork from the set and returns the updated set.
// Removing an artwork not in the set succeeds.
func (s *FavoriteService) Remove(ctx context.Context, userID, artworkID int64) ([]model.Artwork, error) {
	if err := s.favoriteRepo.Remove(ctx, userID, artworkID); err != nil {
		return nil, fmt.Errorf("removing favorite: %w", err)
	}
	return s.favoriteRepo.GetArtworks(ctx, userID)
}

func (s *FavoriteService) Get(ctx context.Context, userID int64) ([]model.Artwork, error) {
	return s.favoriteRepo.GetArtworks(ctx, userID)
}
