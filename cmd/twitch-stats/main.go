package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/logger"
	"maua-esports-backend/internal/twitch"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc, err := twitch.NewService(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize twitch stats service: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Run(ctx); err != nil {
		logrus.Fatal("Twitch stats service stopped: ", err)
	}
	logrus.Info("Twitch stats service stopped")
}
