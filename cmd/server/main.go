package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/cache"
	"github.com/steelcraft/catalog-server/internal/config"
	"github.com/steelcraft/catalog-server/internal/database"
	"github.com/steelcraft/catalog-server/internal/handler"
	"github.com/steelcraft/catalog-server/internal/httputil"
	"github.com/steelcraft/catalog-server/internal/middleware"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/seed"
	"github.com/steelcraft/catalog-server/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	isProduction := os.Getenv("APP_ENV") == "production"
	if err := cfg.Validate(isProduction); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var (
		productRepo repository.ProductRepository
		quoteRepo   repository.QuoteRequestRepository
		sessionRepo repository.AdminSessionRepository
	)

	if cfg.UseMemoryStorage() {
		log.Warn().Msg("DATABASE_URL not set: using in-memory storage, data is lost on restart")

		memProducts := repository.NewMemoryProductRepository()
		for _, p := range seed.Products() {
			if _, err := memProducts.Insert(context.Background(), p); err != nil {
				log.Fatal().Err(err).Msg("failed to seed products")
			}
		}

		productRepo = memProducts
		quoteRepo = repository.NewMemoryQuoteRequestRepository()
		sessionRepo = repository.NewMemoryAdminSessionRepository()
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
		if err := db.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ping database")
		}
		cancel()

		if err := database.Migrate(db.DB.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("database connected")

		productRepo = repository.NewProductRepository(db.DB)
		quoteRepo = repository.NewQuoteRequestRepository(db.DB)
		sessionRepo = repository.NewAdminSessionRepository(db.DB)
	}

	var productCache *cache.ProductCache
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected")

		productCache = cache.NewProductCache(redisClient, cfg.ProductCacheTTL())
	}

	sessionStore := service.NewAdminSessionStore(sessionRepo)
	productService := service.NewProductService(productRepo, productCache)
	quoteService := service.NewQuoteRequestService(quoteRepo)
	dashboardService := service.NewDashboardService(productRepo, quoteRepo)
	keyVerifier := service.NewKeyVerifier(cfg.AdminKey, cfg.AdminKeyHash)

	authMiddleware := middleware.NewAdminAuthMiddleware(sessionStore)

	productHandler := handler.NewProductHandler(productService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	adminHandler := handler.NewAdminHandler(sessionStore, dashboardService, keyVerifier, authMiddleware.Handler)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/products", productHandler.Routes())
		r.Mount("/quote-requests", quoteHandler.Routes())
		r.Mount("/admin", adminHandler.Routes())
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
