package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"manjai/server/config"
	"manjai/server/internal/api"
	"manjai/server/internal/auth"
	"manjai/server/internal/database"
	"manjai/server/internal/narrative"
	"manjai/server/internal/pricing"
	"manjai/server/internal/report"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize the user store
	logger.Infof("Using database at: %s", cfg.Database.Path)
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	authService := auth.NewService(db, logger)
	if err := authService.SeedAdmin(cfg.Auth.SeedAdminPassword); err != nil {
		logger.WithError(err).Fatal("Failed to seed admin user")
	}

	// Price overrides live in memory for the process lifetime
	store := pricing.NewMemoryOverrideStore()

	narrativeClient := narrative.NewClient(
		logger,
		cfg.Ollama.BaseURL,
		cfg.Ollama.Model,
		time.Duration(cfg.Ollama.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Ollama.HealthTimeoutSeconds)*time.Second,
	)

	handler := api.NewHandler(api.Deps{
		Store:     store,
		Narrative: narrativeClient,
		Report:    report.NewAssembler(logger, cfg.Report.FontDir),
		Auth:      authService,
		MaxUpload: cfg.Upload.MaxBytes,
	}, logger)

	router := gin.New()
	router.Use(gin.Logger())
	api.SetupRoutes(router, handler, cfg.Session.Secret)

	logger.Infof("Starting server on port %s", cfg.Port)
	logger.Infof("Expecting Ollama at: %s", cfg.Ollama.BaseURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
