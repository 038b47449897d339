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

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.cartService.Get(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Get cart handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to load cart")
		return
	}

	httputil.WriteList(w, len(items), items)
}

// Add handles POST /api/cart
// Repeated adds of the same artwork aggregate quantity into one line.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	items, err := h.cartService.Add(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrArtworkNotFound):
			httputil.WriteNotFound(w, "Artwork not found")
		default:
			log.Printf("[ERROR] Add to cart handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w, "Failed to add to cart")
		}
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, items)
}

// Remove handles DELETE /api/cart/:artworkId
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.cartService.Remove(r.Context(), userID, artworkID)
	if err != nil {
		log.Printf("[ERROR] Remove from cart handler: user=%d artwork=%d err=%v", userID, artworkID, err)
		httputil.WriteInternalError(w, "Failed to remove from cart")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, items)
}
