package service

import (
	"context"
	"errors"
	"testing"

	"artzone/internal/model"
)

func existingArtworkRepo() *mockArtworkRepository {
	return &mockArtworkRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Artwork, error) {
			return &model.Artwork{ID: id, Title: "Tin Can Lantern"}, nil
		},
	}
}

func TestCartService_Add_DefaultQuantity(t *testing.T) {
	cartRepo := &mockCartRepository{}
	svc := NewCartService(cartRepo, existingArtworkRepo())

	_, err := svc.Add(context.Background(), 1, &model.AddToCartRequest{ArtworkID: 5})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(cartRepo.upsertCalls) != 1 {
		t.Fatalf("Upsert called %d times, want 1", len(cartRepo.upsertCalls))
	}
	call := cartRepo.upsertCalls[0]
	if call.Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", call.Quantity)
	}
	if call.UserID != 1 || call.ArtworkID != 5 {
		t.Errorf("unexpected upsert args: %+v", call)
	}
}

func TestCartService_Add_ExplicitQuantity(t *testing.T) {
	cartRepo := &mockCartRepository{}
	svc := NewCartService(cartRepo, existingArtworkRepo())

	_, err := svc.Add(context.Background(), 1, &model.AddToCartRequest{ArtworkID: 5, Quantity: 3})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cartRepo.upsertCalls[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cartRepo.upsertCalls[0].Quantity)
	}
}

func TestCartService_Add_ArtworkNotFound(t *testing.T) {
	cartRepo := &mockCartRepository{}
	svc := NewCartService(cartRepo, &mockArtworkRepository{})

	_, err := svc.Add(context.Background(), 1, &model.AddToCartRequest{ArtworkID: 404})
	if !errors.Is(err, model.ErrArtworkNotFound) {
		t.Errorf("expected ErrArtworkNotFound, got: %v", err)
	}
	if len(cartRepo.upsertCalls) != 0 {
		t.Error("Upsert should not be called for a missing artwork")
	}
}

func TestCartService_Add_MissingArtworkID(t *testing.T) {
	svc := NewCartService(&mockCartRepository{}, existingArtworkRepo())

	_, err := svc.Add(context.Background(), 1, &model.AddToCartRequest{})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestCartService_Remove_ReturnsUpdatedCart(t *testing.T) {
	cartRepo := &mockCartRepository{
		getItemsFn: func(ctx context.Context, userID int64) ([]model.CartItem, error) {
			return []model.CartItem{{ArtworkID: 2, Quantity: 1}}, nil
		},
	}
	svc := NewCartService(cartRepo, existingArtworkRepo())

	items, err := svc.Remove(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(items) != 1 || items[0].ArtworkID != 2 {
		t.Errorf("unexpected cart after remove: %+v", items)
	}
}
