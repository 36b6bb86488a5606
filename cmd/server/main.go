package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maua-esports-backend/internal/api/routes"
	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/database"
	"maua-esports-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "maua-esports-backend/docs" // This is needed for swag
)

//	@title			Maua Esports Backend API
//	@version		1.0
//	@description	Backend of the Maua esports club site: users, rosters, tournaments, site content, Discord linking and PAE hours.

//	@host		localhost:3000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the frontend token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}
}
