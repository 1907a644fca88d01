package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyCircle/moderation/pkg/config"
	"github.com/MyCircle/moderation/pkg/dependency_container"
	infraLogger "github.com/MyCircle/moderation/pkg/infra/logger"
	"github.com/MyCircle/moderation/pkg/infra/prometheus"
	"github.com/MyCircle/moderation/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(infraLogger.OptionsFromEnv("moderation"))

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	prometheus.Initialize()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("failed to initialize container: %v", err)
	}

	logger.WithField("version", version.GetInfo().String()).
		WithField("provider", cfg.Classifier.Provider).
		Info("moderation service initialized")

	srv := container.Server
	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
