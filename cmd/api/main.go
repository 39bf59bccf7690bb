package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"digisure/internal/config"
	"digisure/internal/database"
	"digisure/internal/logger"
	"digisure/internal/repository"
	"digisure/internal/server"
	"digisure/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// setupDatabase connects to the primary store and prepares the schema.
// Any failure degrades to memory mode instead of aborting startup:
// the storefront must stay available on seed data.
func setupDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) *pgxpool.Pool {
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, running in memory mode (catalog served from seed data)")
		return nil
	}

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Warn("Database unreachable, falling back to memory mode", zap.Error(err))
		return nil
	}

	if err := database.RunMigrations(pool, "migrations", log); err != nil {
		log.Warn("Migrations failed, falling back to memory mode", zap.Error(err))
		pool.Close()
		return nil
	}

	return pool
}

func setupRedis(ctx context.Context, cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, rate limiting disabled", zap.Error(err))
		client.Close()
		return nil
	}

	return client
}

func main() {
	// Load configuration; the .env file is optional and real
	// environment variables win either way
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	pool := setupDatabase(ctx, cfg, log)
	redisClient := setupRedis(ctx, cfg, log)

	// Build the catalog service; a nil repository means memory mode.
	var productRepo repository.ProductRepository
	if pool != nil {
		productRepo = repository.NewProductRepository(pool)
	}
	catalogService := service.NewCatalogService(productRepo, log)

	if err := catalogService.Init(ctx); err != nil {
		// Seeding failure is not fatal: reads degrade to seed data.
		log.Warn("Catalog seeding failed", zap.Error(err))
	}

	// Create server
	srv := server.NewServer(cfg, log, pool, redisClient, catalogService)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
