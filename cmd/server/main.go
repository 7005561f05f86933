package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site_backend/internal/config"
	"site_backend/internal/handler"
	"site_backend/internal/logger"
	"site_backend/internal/repository"
	"site_backend/internal/router"
	"site_backend/internal/service"
	"site_backend/internal/site"
	"site_backend/internal/storage"
	"site_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		logg.Info().Msg("No .env file found, relying on environment variables")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		logg.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.TokenTTL)

	images, err := storage.NewDiskStore(cfg.UploadsDir, "/uploads", cfg.MaxUploadBytes)
	if err != nil {
		logg.Fatal().Err(err).Str("dir", cfg.UploadsDir).Msg("Failed to create uploads directory")
	}
	logg.Info().Str("dir", cfg.UploadsDir).Msg("Uploads will be stored on disk")

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	submissionRepo := repository.NewSubmissionRepository(dbPool)
	projectRepo := repository.NewProjectRepository(dbPool)
	packageRepo := repository.NewPackageRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	submissionService := service.NewSubmissionService(submissionRepo)
	projectService := service.NewProjectService(projectRepo, images)
	packageService := service.NewPackageService(packageRepo)

	// --- Initialize Handlers ---
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Submissions: handler.NewSubmissionHandler(submissionService),
		Projects:    handler.NewProjectHandler(projectService),
		Packages:    handler.NewPackageHandler(packageService),
		Health:      handler.NewHealthHandler(dbPool),
		Site:        handler.NewSiteHandler(site.NewResolver(cfg.SiteDir, cfg.PublicDir)),
	}

	// --- Setup Gin Router ---
	engine, err := router.New(router.Options{
		JWT:             jwtUtil,
		Logger:          logg,
		CORSOrigins:     cfg.CORSOrigins,
		TrustedProxies:  cfg.TrustedProxies,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}, handlers)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to build router")
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info().Str("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logg.Info().Msg("Server exiting")
}
