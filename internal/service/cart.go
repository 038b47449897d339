package service

import (
	"context"
	"fmt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// CartService manages per-user carts. Adds aggregate quantity into a single
// line per artwork; the repository upsert makes concurrent adds safe.
type CartService struct {
	cartRepo    repository.CartRepository
	artworkRepo repository.ArtworkRepository
}

func NewCartService(cartRepo repository.CartRepository, artworkRepo repository.ArtworkRepository) *CartService {
	return &CartService{cartRepo: cartRepo, artworkRepo: artworkRepo}
}

// Add puts quantity of an artwork in the cart (default 1) and returns the
// updated cart.
func (s *CartService) Add(ctx context.Context, userID int64, req *model.AddToCartRequest) ([]model.CartItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.artworkRepo.GetByID(ctx, req.ArtworkID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := s.cartRepo.Upsert(ctx, userID, req.ArtworkID, quantity); err != nil {
		return nil, fmt.Errorf("adding to cart: %w", err)
	}
	return s.cartRepo.GetItems(ctx, userID)
}

// Remove deletes the cart line and returns the updated cart. Removing an
// artwork that is not in the cart succeeds and leaves the cart unchanged.
func (s *CartService) Remove(ctx context.Context, userID, artworkID int64) ([]model.CartItem, error) {
	if err := s.cartRepo.Remove(ctx, userID, artworkID); err != nil {
		return nil, fmt.Errorf("removing from cart: %w", err)
	}
	return s.cartRepo.GetItems(ctx, userID)
}

func (s *CartService) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return s.cartRepo.GetItems(ctx, userID)
}
