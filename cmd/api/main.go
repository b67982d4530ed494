package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/config"
	"github.com/pageza/ingrecipe/backend/internal/api"
	"github.com/pageza/ingrecipe/backend/internal/database"
	"github.com/pageza/ingrecipe/backend/internal/logger"
	"github.com/pageza/ingrecipe/backend/internal/metrics"
	"github.com/pageza/ingrecipe/backend/internal/middleware"
	"github.com/pageza/ingrecipe/backend/internal/router"
	"github.com/pageza/ingrecipe/backend/internal/server"
	"github.com/pageza/ingrecipe/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.FromConfig(cfg))
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	store := database.NewRecipeStore(db)
	m := metrics.New()

	// Rate limiting is optional; without Redis the match endpoint is unthrottled
	var limiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(cfg, log)
		if err != nil {
			log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = middleware.NewMatchRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, log)
		}
	}

	var images api.ImageResolver
	if cfg.ImageStorageEnabled() {
		s3Config, err := config.NewS3Config(context.Background(), cfg, log)
		if err != nil {
			log.Warn("image storage unavailable, serving raw image references", zap.Error(err))
		} else {
			images = s3Config
		}
	}

	matchService := service.NewMatchService(store, cfg.MatchLimit, log, m)
	recipeService := service.NewRecipeService(store)

	r := router.SetupRouter(router.Dependencies{
		MatchHandler:   api.NewMatchHandler(matchService, images, log),
		RecipeHandler:  api.NewRecipeHandler(recipeService, images, log),
		Health:         store,
		RateLimiter:    limiter,
		Metrics:        m,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	})

	srv := server.New(cfg, r, log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
		return
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
		return
	}
	log.Info("server stopped")
}
