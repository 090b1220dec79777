package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/easy-service/internal/cache"
	"github.com/segyhp/easy-service/internal/config"
	"github.com/segyhp/easy-service/internal/database"
	"github.com/segyhp/easy-service/internal/handler"
	"github.com/segyhp/easy-service/internal/repository"
	"github.com/segyhp/easy-service/internal/service"
	"github.com/segyhp/easy-service/pkg/logger"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	// Initialize database
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database.URL); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Redis
	redisClient, statsCache := initCache(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize repositories
	agreementRepo := repository.NewAgreementRepository(db)
	exceptionRepo := repository.NewExceptionProposalRepository(db)

	// Initialize services
	negotiationService := service.NewNegotiationService(agreementRepo, statsCache, cfg, log)
	exceptionService := service.NewExceptionProposalService(exceptionRepo, cfg, log)

	validator, err := validation.New()
	if err != nil {
		log.Error("failed to build validator", "error", err)
		os.Exit(1)
	}

	// Setup routes
	router := handler.NewRouter(
		handler.NewNegotiationHandler(negotiationService, validator, log),
		handler.NewExceptionProposalHandler(exceptionService, validator, log),
		handler.NewHealthHandler(db, redisClient, cfg.Health.Timeout),
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server starting", "addr", server.Addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server exited")
}

func initCache(cfg *config.Config) (*redis.Client, cache.StatisticsCache) {
	if !cfg.Redis.Enabled {
		return nil, cache.NewNoopStatisticsCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return client, cache.NewRedisStatisticsCache(client, cfg.Business.StatsCacheTTL)
}
