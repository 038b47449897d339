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

type ArtistHandler struct {
	artistService *service.ArtistService
}

func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
	}
}

// Create handles POST /api/artists
// The profile is linked to the authenticated user.
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	artist, err := h.artistService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			httputil.WriteBadRequest(w, err.Error())
			return
		}
		log.Printf("[ERROR] Create artist handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to create artist")
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, artist)
}

// List handles GET /api/artists
// Supports ?specialty= and ?sortBy=rating|followers filters.
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ArtistFilter{
		Specialty: r.URL.Query().Get("specialty"),
		SortBy:    r.URL.Query().Get("sortBy"),
	}

	artists, err := h.artistService.List(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] List artists handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list artists")
		return
	}

	httputil.WriteList(w, len(artists), artists)
}

// GetByID handles GET /api/artists/:id
// Returns the artist with their artworks attached.
func (h *ArtistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artist ID")
		return
	}

	artist, err := h.artistService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtistNotFound) {
			httputil.WriteNotFound(w, "Artist not found")
			return
		}
		log.Printf("[ERROR] Get artist handler: artist=%d err=%v", id, err)
		httputil.WriteInternalError(w, "Failed to get artist")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artist)
}

// Update handles PUT /api/artists/:id
func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid artist ID")
		return
	}

	var req model.UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	artist, err := h.artistService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtistNotFound):
			httputil.WriteNotFound(w, "Artist not found")
		default:
			log.Printf("[ERROR] Update artist handler: artist=%d err=%v", id, err)
			httputil.WriteInternalError(w, "Failed to update artist")
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, artist)
}
