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

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// Create handles POST /api/blogs
// The authenticated user becomes the author.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	blog, err := h.blogService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			httputil.WriteBadRequest(w, err.Error())
			return
		}
		log.Printf("[ERROR] Create blog handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to create blog")
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, blog)
}

// List handles GET /api/blogs
// Only published posts appear here.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListPublished(r.Context())
	if err != nil {
		log.Printf("[ERROR] List blogs handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list blogs")
		return
	}

	httputil.WriteList(w, len(blogs), blogs)
}

// GetByID handles GET /api/blogs/:id
// Fetching a blog counts as a view.
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid blog ID")
		return
	}

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBlogNotFound) {
			httputil.WriteNotFound(w, "Blog not found")
			return
		}
		log.Printf("[ERROR] Get blog handler: blog=%d err=%v", id, err)
		httputil.WriteInternalError(w, "Failed to get blog")
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, blog)
}
