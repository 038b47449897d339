package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"artzone/internal/httputil"
	"artzone/internal/model"
	"artzone/internal/service"
	"artzone/internal/transport/http/middleware"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// Get handles GET /api/favorites
func (h *FavoriteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	artworks, err := h.favoriteService.Get(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Get favorites handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to load favorites")
		return
	}

	httputil.WriteList(w, len(artworks), artworks)
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.AddToFavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	artworks, err := h.favoriteService.Add(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtworkNotFound):
			httputil.WriteNotFound(w, "Artwork not found")
		case errors.Is(err, model.ErrAlreadyFavorite):
			httputil.WriteConflict(w, "Already in favorites")
		default:
			log.Printf("[ERROR] Add favorite handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w, "Failed to add favorite")
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artworks)
}

// Remove handles DELETE /api/favorites/:artworkId
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	artworkID, err := strconv.ParseInt(chi.URLParam(r, "artworkId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artwork ID")
		return
	}

	artworks, err := h.favoriteService.Remove(r.Context(), userID, artworkID)
	if err != nil {
		log.Printf("[ERROR] Remove favorite handler: user=%d artwork=%d err=%v", userID, artworkID, err)
		httputil.WriteInternalError(w, "Failed to remove favorite")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artworks)
}
