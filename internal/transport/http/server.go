package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artzone/internal/cache"
	"artzone/internal/config"
	"artzone/internal/database"
	"artzone/internal/handler"
	"artzone/internal/queue"
	appredis "artzone/internal/redis"
	"artzone/internal/repository"
	"artzone/internal/service"
	"artzone/internal/worker"
)

// Run wires the application together and serves HTTP until SIGINT/SIGTERM.
// Redis and object storage are optional; without REDIS_URL the trending
// ranking and activity workers are disabled, without R2 config the media
// routes are not mounted.
func Run() error {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// 3. Optional Redis: trending cache, activity stream, workers
	var (
		publisher     queue.Publisher
		trendingCache cache.TrendingCache
		workerManager *worker.Manager
	)
	if cfg.RedisURL != "" {
		redisClient, err := appredis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Println("Connected to Redis successfully")

		publisher = queue.NewPublisher(redisClient.Client)
		trendingCache = cache.NewTrendingCache(redisClient.Client)

		consumer := queue.NewConsumer(redisClient.Client)
		workerManager = worker.NewManager(consumer, worker.NewHandler(trendingCache), worker.DefaultManagerConfig())
		if err := workerManager.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start activity workers: %w", err)
		}
		defer workerManager.Stop()
	} else {
		log.Println("REDIS_URL not set, trending and activity workers disabled")
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	cartRepo := repository.NewCartRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// 5. Services
	var (
		mediaService *service.MediaService
		imageCleaner service.ImageCleaner
	)
	if cfg.R2BucketName != "" {
		mediaService, err = service.NewMediaService(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to create media service: %w", err)
		}
		imageCleaner = mediaService
	} else {
		log.Println("R2 not configured, media routes disabled")
	}

	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, cartRepo, favoriteRepo, authService)
	artistService := service.NewArtistService(artistRepo, artworkRepo)
	artworkService := service.NewArtworkService(artworkRepo, artistRepo, publisher, trendingCache, imageCleaner)
	cartService := service.NewCartService(cartRepo, artworkRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, artworkRepo)
	eventService := service.NewEventService(eventRepo)
	blogService := service.NewBlogService(blogRepo)

	// 6. Handlers
	routerCfg := RouterConfig{
		HealthHandler:   handler.NewHealthHandler(cfg.Environment),
		AuthHandler:     handler.NewAuthHandler(userService),
		ArtistHandler:   handler.NewArtistHandler(artistService),
		ArtworkHandler:  handler.NewArtworkHandler(artworkService),
		EventHandler:    handler.NewEventHandler(eventService),
		BlogHandler:     handler.NewBlogHandler(blogService),
		CartHandler:     handler.NewCartHandler(cartService),
		FavoriteHandler: handler.NewFavoriteHandler(favoriteService),
		JWTSecret:       cfg.JWTSecret,
		UserVerifier:    userRepo,
	}

	if mediaService != nil {
		routerCfg.MediaHandler = handler.NewMediaHandler(mediaService)
	}

	// 7. Serve
	srv := &stdhttp.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewRouter(routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s (env=%s)", cfg.ServerPort, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
