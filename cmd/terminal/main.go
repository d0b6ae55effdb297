package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atm-transaction-core/config"
	"atm-transaction-core/internal/adapter/bank"
	httpHandler "atm-transaction-core/internal/adapter/http/handler"
	"atm-transaction-core/internal/adapter/peripheral"
	pgStorage "atm-transaction-core/internal/adapter/storage/postgres"
	redisStorage "atm-transaction-core/internal/adapter/storage/redis"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/internal/journal"
	"atm-transaction-core/internal/metrics"
	"atm-transaction-core/internal/service"
	"atm-transaction-core/internal/session"
	"atm-transaction-core/internal/terminal"
	"atm-transaction-core/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, cfg.Terminal.ID)

	log.Info().
		Str("location", cfg.Terminal.Location).
		Int("port", cfg.Server.Port).
		Msg("Starting ATM transaction core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	journalStore := pgStorage.NewJournalStore(pool)
	if err := journalStore.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate journal table")
	}
	reconQueue := redisStorage.NewReconciliationQueue(rdb, cfg.Terminal.ID)

	// Initialize bank client
	bankClient := bank.New(cfg.Bank, cfg.Terminal.ID, &http.Client{Timeout: cfg.Bank.Timeout}, log)

	// Initialize peripherals
	peripherals := peripheral.NewSimulator(log)

	// Initialize journal recorder and metrics
	recorder := journal.New(cfg.Terminal.ID, journalStore, log)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize operator services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, cfg.Terminal.ID)
	operatorAuth := service.NewOperatorAuthService(cfg.Operator, hashSvc, tokenSvc)

	// Initialize terminal
	term := terminal.New(terminal.Deps{
		Bank:        bankClient,
		Peripherals: peripherals,
		Journal:     recorder,
		Recon:       reconQueue,
		Metrics:     m,
		Log:         log,
		Config: session.Config{
			TerminalID:      cfg.Terminal.ID,
			Location:        cfg.Terminal.Location,
			CashUnit:        cfg.Terminal.CashUnit,
			EnvelopeTimeout: cfg.Terminal.EnvelopeTimeout,
		},
	})
	term.Startup(ctx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Terminal:       term,
		OperatorAuth:   operatorAuth,
		TokenSvc:       tokenSvc,
		JournalStore:   journalStore,
		ReconQueue:     reconQueue,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MetricsReg:     registry,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down terminal...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	term.Shutdown(shutdownCtx)
	log.Info().Msg("Terminal exited")
}
