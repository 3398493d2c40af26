package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"restopos/cmd"
	"restopos/internal/adapters/out/sqlite"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := getConfig()

	db, err := sqlite.Open(config.DBPath)
	if err != nil {
		logger.Error("Failed to open store", "path", config.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	root := cmd.NewCompositionRoot(config, db, logger)

	if err = root.Seed(context.Background()); err != nil {
		logger.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, config)
}

func getConfig() cmd.Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		DBPath:         envOr("DB_PATH", "restaurant.db"),
		BackupDir:      envOr("BACKUP_DIR", "backups"),
		GateTimeout:    envDuration("GATE_TIMEOUT", 5*time.Second),
		SessionTTL:     envDuration("SESSION_TTL", 8*time.Hour),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 64<<20),
		AdminUsername:  envOr("ADMIN_USERNAME", "admin"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
