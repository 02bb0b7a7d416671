package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "locallibrary-backend/internal/api/http"
	"locallibrary-backend/internal/config"
	"locallibrary-backend/internal/logger"
	"locallibrary-backend/internal/repository/postgres"
	"locallibrary-backend/internal/security"
	"locallibrary-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env first so env overrides are visible to config
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Local Library Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Run schema migrations
	if cfg.Migrations.RunOnBoot {
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatalf("Failed to set goose dialect: %v", err)
		}
		if err := goose.Up(db, cfg.Migrations.Dir); err != nil {
			logger.Error("Failed to apply migrations", "error", err, "dir", cfg.Migrations.Dir)
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info("Database migrations applied", "dir", cfg.Migrations.Dir)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	catalogSvc := service.NewCatalogService(
		store.BookRepository,
		store.AuthorRepository,
		store.CopyRepository,
		store.ReviewRepository,
		store.UserRepository,
	)
	registrySvc := service.NewCopyRegistryService(
		store.CopyRepository,
		store.BookRepository,
		store.BorrowingRepository,
		store.UserRepository,
	)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.BookRepository)
	borrowingSvc := service.NewBorrowingService(
		store.BorrowingRepository,
		store.CopyRepository,
		store.BookRepository,
		store.UserRepository,
		emailSvc,
	)

	// Initialize HTTP handlers
	authHandler := api.NewAuthHandler(authSvc)
	catalogHandler := api.NewCatalogHandler(catalogSvc)
	copyHandler := api.NewCopyHandler(registrySvc)
	reviewHandler := api.NewReviewHandler(reviewSvc)
	borrowingHandler := api.NewBorrowingHandler(borrowingSvc)

	router := api.NewRouter(tokenManager, authHandler, catalogHandler, copyHandler, reviewHandler, borrowingHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
