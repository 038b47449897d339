package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"artzone/internal/handler"
	"artzone/internal/httputil"
	authmw "artzone/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes.
// MediaHandler may be nil when object storage is not configured; its routes
// are simply not mounted then.
type RouterConfig struct {
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	ArtistHandler   *handler.ArtistHandler
	ArtworkHandler  *handler.ArtworkHandler
	EventHandler    *handler.EventHandler
	BlogHandler     *handler.BlogHandler
	CartHandler     *handler.CartHandler
	FavoriteHandler *handler.FavoriteHandler
	MediaHandler    *handler.MediaHandler
	JWTSecret       string
	// UserVerifier backs the token-subject existence check on protected
	// routes.
	UserVerifier authmw.UserVerifier
}

// NewRouter creates and configures a new Chi router with all route groups.
// Everything is mounted under /api.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Route not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Health)

		// Public routes - no authentication required
		r.Post("/auth/signup", cfg.AuthHandler.Signup)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		r.Get("/artists", cfg.ArtistHandler.List)
		r.Get("/artists/{id}", cfg.ArtistHandler.GetByID)

		r.Get("/artworks", cfg.ArtworkHandler.List)
		r.Get("/artworks/{id}", cfg.ArtworkHandler.GetByID)

		r.Get("/events", cfg.EventHandler.List)
		r.Get("/events/{id}", cfg.EventHandler.GetByID)

		r.Get("/blogs", cfg.BlogHandler.List)
		r.Get("/blogs/{id}", cfg.BlogHandler.GetByID)

		// Protected routes - require authentication
		r.Group(func(r chi.Router) {
			r.Use(authmw.AuthMiddleware(cfg.JWTSecret, cfg.UserVerifier))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			r.Post("/artists", cfg.ArtistHandler.Create)
			r.Put("/artists/{id}", cfg.ArtistHandler.Update)

			r.Post("/artworks", cfg.ArtworkHandler.Create)
			r.Put("/artworks/{id}", cfg.ArtworkHandler.Update)
			r.Delete("/artworks/{id}", cfg.ArtworkHandler.Delete)

			r.Post("/events", cfg.EventHandler.Create)
			r.Post("/events/{id}/register", cfg.EventHandler.Register)

			r.Post("/blogs", cfg.BlogHandler.Create)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.CartHandler.Get)
				r.Post("/", cfg.CartHandler.Add)
				r.Delete("/{artworkId}", cfg.CartHandler.Remove)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", cfg.FavoriteHandler.Get)
				r.Post("/", cfg.FavoriteHandler.Add)
				r.Delete("/{artworkId}", cfg.FavoriteHandler.Remove)
			})

			if cfg.MediaHandler != nil {
				r.Post("/media/artworks", cfg.MediaHandler.UploadArtworkImage)
			}
		})
	})

	return r
}
