package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"voltassist/config"
	_ "voltassist/docs" // Swagger docs
	"voltassist/internal/httpserver"
	"voltassist/pkg/gemini"
	"voltassist/pkg/log"
)

// @title       VoltAssist Support API
// @description Customer-support chat for an electric scooter retailer: FAQ matching, order tracking, and AI-assisted replies.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting VoltAssist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	postgresDB, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer postgresDB.Close()

	if err := postgresDB.PingContext(ctx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet: %v", err)
	}

	// 4. Redis
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warnf(ctx, "Redis not reachable yet: %v", err)
	}

	// 5. Gemini client (optional; without a key the router falls back to
	// the static response)
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set, AI replies disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		Gemini:      geminiClient,
		AppConfig:   cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
