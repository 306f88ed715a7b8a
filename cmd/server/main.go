package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/madhvpruthi/ROOV/internal/api"
	"github.com/madhvpruthi/ROOV/internal/catalog"
	"github.com/madhvpruthi/ROOV/internal/config"
	"github.com/madhvpruthi/ROOV/internal/contact"
	"github.com/madhvpruthi/ROOV/internal/handlers"
	"github.com/madhvpruthi/ROOV/internal/store"
	"github.com/madhvpruthi/ROOV/internal/upload"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	ctx := context.Background()

	// Initialize the storage backend
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("storage initialization failed")
	}
	defer st.Close()
	logger.Info().Str("driver", cfg.StorageDriver).Msg("storage backend ready")

	// Initialize the upload gateway
	uploads, err := upload.NewLocalGateway(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("upload gateway initialization failed")
	}

	// Wire services and router
	catalogSvc := catalog.NewService(st, logger)
	contactSvc := contact.NewService(st, logger)
	h := handlers.NewHandler(catalogSvc, contactSvc, uploads, st, cfg, logger)
	router := api.NewRouter(logger, h, cfg)

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting ROOV server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Graceful shutdown with 30 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

// openStore constructs the storage backend selected by STORAGE_DRIVER.
// The instance is injected everywhere; nothing holds package-level state.
func openStore(ctx context.Context, cfg *config.Config) (store.DataStore, error) {
	switch cfg.StorageDriver {
	case "file":
		return store.NewFileStore(cfg.DataDir)
	case "sqlite":
		return store.NewSQLiteStore(ctx, cfg.SQLitePath)
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.DatabaseURL)
	case "redis":
		return store.NewRedisStore(ctx, cfg.RedisURL)
	default:
		return store.NewMemoryStore(), nil
	}
}
