package worker

import (
	"context"
	"fmt"

	"artzone/internal/cache"
	"artzone/internal/queue"
)

// Handler processes activity events from the queue.
type Handler struct {
	trending cache.TrendingCache
}

// NewHandler creates a new event handler.
func NewHandler(trending cache.TrendingCache) *Handler {
	return &Handler{trending: trending}
}

// HandleEvent routes an event to the appropriate handler based on type.
func (h *Handler) HandleEvent(ctx context.Context, event queue.ActivityEvent) error {
	switch event.Type {
	case queue.EventArtworkViewed:
		return h.handleArtworkViewed(ctx, event)
	case queue.EventArtworkDeleted:
		return h.handleArtworkDeleted(ctx, event)
	default:
		return fmt.Errorf("unknown event type: %s", event.Type)
	}
}

// handleArtworkViewed bumps the artwork's score in the trending ranking.
func (h *Handler) handleArtworkViewed(ctx context.Context, event queue.ActivityEvent) error {
	if event.ArtworkID == 0 {
		return fmt.Errorf("artwork_viewed event missing artwork_id")
	}
	return h.trending.Bump(ctx, event.ArtworkID)
}

// handleArtworkDeleted removes the artwork from the trending ranking so
// deleted items stop surfacing in trending results.
func (h *Handler) handleArtworkDeleted(ctx context.Context, event queue.ActivityEvent) error {
	if event.ArtworkID == 0 {
		return fmt.Errorf("artwork_deleted event missing artwork_id")
	}
	return h.trending.Remove(ctx, event.ArtworkID)
}
