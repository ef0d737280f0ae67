package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tonechef/backend/config"
	"github.com/tonechef/backend/internal/api"
	"github.com/tonechef/backend/internal/database"
	"github.com/tonechef/backend/internal/logger"
	"github.com/tonechef/backend/internal/ratelimit"
	"github.com/tonechef/backend/internal/router"
	"github.com/tonechef/backend/internal/server"
	"github.com/tonechef/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	limiter, err := buildLimiter(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize rate limiter", zap.Error(err))
	}
	defer limiter.Close()

	client := service.NewDeepSeekClient(cfg, zlog)
	generationService := service.NewGenerationService(client, cfg.MaxInputLength, zlog)

	generateHandler := api.NewGenerateHandler(generationService, zlog)
	exportHandler := api.NewExportHandler()

	engine := router.SetupRouter(cfg, generateHandler, exportHandler, limiter, zlog)
	srv := server.New(cfg, engine, zlog)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}

// buildLimiter selects the rate-limit backend from configuration
func buildLimiter(cfg *config.Config) (ratelimit.Limiter, error) {
	switch cfg.RateLimitBackend {
	case "redis":
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return ratelimit.NewRedisLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow, "rate_limit:generate"), nil
	default:
		return ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow), nil
	}
}
