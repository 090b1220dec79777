package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/segyhp/easy-service/internal/cache"
	"github.com/segyhp/easy-service/internal/config"
	"github.com/segyhp/easy-service/internal/database"
	"github.com/segyhp/easy-service/internal/jobs"
	"github.com/segyhp/easy-service/internal/repository"
	"github.com/segyhp/easy-service/internal/service"
	"github.com/segyhp/easy-service/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting scheduler")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// The report always reads fresh data, so no Redis here
	negotiationService := service.NewNegotiationService(
		repository.NewAgreementRepository(db), cache.NewNoopStatisticsCache(), cfg, log)
	exceptionService := service.NewExceptionProposalService(
		repository.NewExceptionProposalRepository(db), cfg, log)

	scheduler := jobs.NewScheduler(
		jobs.NewJobs(exceptionService, negotiationService, log),
		log,
		cfg.Scheduler,
		cfg.Location(),
	)

	// Start the scheduler
	if err := scheduler.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	log.Info("scheduler started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down scheduler")
	<-scheduler.Stop().Done()
	log.Info("scheduler stopped")
}
