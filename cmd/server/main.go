package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JemAndrew/JemAndrewWebsite/internal/api"
	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/database"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/JemAndrew/JemAndrewWebsite/internal/staticdata"
	"github.com/JemAndrew/JemAndrewWebsite/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting portfolio API server...")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Select the record store
	var stores *repository.Stores
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		stores = repository.NewPostgres(db)
		log.Info().Msg("Using postgres record store")
	case config.DataSourceStatic:
		stores = repository.NewMemory(staticdata.Seed())
		log.Info().Msg("Using static in-memory record store")
	default:
		log.Fatal().Str("source", cfg.Data.Source).Msg("Unknown data source")
	}

	// Initialize services
	services := service.NewServices(stores, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
