package main

import (
	"context"
	"jersey_store/config"
	"jersey_store/internal/delivery"
	"jersey_store/internal/domain"
	"jersey_store/internal/middleware"
	"jersey_store/internal/repository"
	"jersey_store/internal/usecase"
	"jersey_store/pkg/db"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.Info("Starting Jersey Store API...")
	logger.Infof("Log level set to: %s", logLevel.String())

	// The store handle stays nil when the database is unreachable; the
	// service still serves, and /test reports the state.
	var store domain.DocumentStore
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL is not set. Running without a database connection.")
	} else {
		client, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Warnf("Database connection failed: %v. Running without a database connection.", err)
		} else {
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Errorf("Failed to disconnect from database: %v", err)
				}
			}()
			store = repository.NewMongoDocumentStore(client.Database(cfg.DatabaseName), logger)
			logger.Infof("Database connection established (database: %s).", store.Name())
		}
	}

	// --- Dependency Injection ---
	catalogUseCase := usecase.NewCatalogUseCase(store, logger)
	orderUseCase := usecase.NewOrderUseCase(store, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(catalogUseCase, logger)
	orderHandler := delivery.NewOrderHandler(orderUseCase, logger)
	healthHandler := delivery.NewHealthHandler(store, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
	}))

	healthHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// --- Start Server ---
	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}
	logger.Infof("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		logger.Errorf("Failed to start server on %s: %v", addr, err)
		os.Exit(1)
	}
}
