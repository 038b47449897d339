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
)

type ArtworkHandler struct {
	artworkService *service.ArtworkService
}

func NewArtworkHandler(artworkService *service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
	}
}

// Create handles POST /api/artworks
func (h *ArtworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	artwork, err := h.artworkService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtistNotFound):
			httputil.WriteNotFound(w, "Artist not found")
		default:
			log.Printf("[ERROR] Create artwork handler: err=%v", err)
			httputil.WriteInternalError(w, "Failed to create artwork")
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, artwork)
}

// List handles GET /api/artworks
// Supports category, minPrice, maxPrice, featured, artist and sortBy
// query parameters. Unparseable numeric filters are ignored.
func (h *ArtworkHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ArtworkFilter{
		Category: q.Get("category"),
		SortBy:   q.Get("sortBy"),
	}

	if v := q.Get("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := q.Get("artist"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ArtistID = &id
		}
	}

	artworks, err := h.artworkService.List(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] List artworks handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list artworks")
		return
	}

	httputil.WriteList(w, len(artworks), artworks)
}

// GetByID handles GET /api/artworks/:id
// Fetching an artwork counts as a view.
func (h *ArtworkHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artwork ID")
		return
	}

	artwork, err := h.artworkService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtworkNotFound) {
			httputil.WriteNotFound(w, "Artwork not found")
			return
		}
		log.Printf("[ERROR] Get artwork handler: artwork=%d err=%v", id, err)
		httputil.WriteInternalError(w, "Failed to get artwork")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artwork)
}

// Update handles PUT /api/artworks/:id
func (h *ArtworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artwork ID")
		return
	}

	var req model.UpdateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	artwork, err := h.artworkService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtworkNotFound):
			httputil.WriteNotFound(w, "Artwork not found")
		default:
			log.Printf("[ERROR] Update artwork handler: artwork=%d err=%v", id, err)
			httputil.WriteInternalError(w, "Failed to update artwork")
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artwork)
}

// Delete handles DELETE /api/artworks/:id
func (h *ArtworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artwork ID")
		return
	}

	if err := h.artworkService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrArtworkNotFound) {
			httputil.WriteNotFound(w, "Artwork not found")
			return
		}
		log.Printf("[ERROR] Delete artwork handler: artwork=%d err=%v", id, err)
		httputil.WriteInternalError(w, "Failed to delete artwork")
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Artwork deleted successfully", nil)
}
