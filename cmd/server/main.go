package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"numbers-game/internal/config"
	"numbers-game/internal/database"
	"numbers-game/internal/handler"
	"numbers-game/internal/logger"
	"numbers-game/internal/repository/postgres"
	"numbers-game/internal/service"
	"numbers-game/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	_ "numbers-game/docs"
)

// @title Numbers Game API
// @version 1.0
// @description Bet placement, draw settlement and wallet ledger for the two-number game
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, zerolog.LevelInfoValue)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(dbPool); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("Database migrations applied")
	}

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	drawRepo := postgres.NewDrawRepository(dbPool)
	betRepo := postgres.NewBetRepository(dbPool)
	commissionRepo := postgres.NewCommissionRepository(dbPool)
	configRepo := postgres.NewGameConfigRepository(dbPool)
	autoBetRepo := postgres.NewAutoBetRepository(dbPool)

	// Transaction manager used by services; conflicts are retried per the engine settings
	txManager := postgres.NewTransactionManager(dbPool, postgres.TxOptions{
		IsoLevel:   pgx.TxIsoLevel(cfg.Database.TxIsolation),
		MaxRetries: cfg.Engine.TxMaxRetries,
		BaseDelay:  cfg.Engine.TxRetryBaseDelay,
	})

	// Services
	ledgerService := service.NewLedgerService(walletRepo, ledgerRepo, txManager, log)
	commissionService := service.NewCommissionService(commissionRepo, walletRepo, ledgerService, log)
	drawService := service.NewDrawService(drawRepo, betRepo, walletRepo, ledgerService, txManager, log)
	betService := service.NewBetService(configRepo, drawRepo, walletRepo, betRepo, autoBetRepo,
		ledgerService, txManager, cfg.Engine.PlacementTimeout, log)
	settlementService := service.NewSettlementService(configRepo, drawRepo, betRepo, walletRepo, commissionRepo,
		ledgerService, commissionService, txManager, log)
	autoBetService := service.NewAutoBetService(autoBetRepo, drawRepo, configRepo, walletRepo, betService,
		cfg.Engine.DrawsPerDay, cfg.Engine.AutoBetConcurrency, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Workers closing due draws and running auto-bets
	drawCloser := worker.NewDrawCloser(drawService, cfg.Worker.DrawCloseInterval, log)
	drawCloser.Start(ctx)
	defer drawCloser.Stop()

	autoBetRunner := worker.NewAutoBetRunner(autoBetService, cfg.Worker.AutoBetInterval, log)
	autoBetRunner.Start(ctx)
	defer autoBetRunner.Stop()

	// http handler
	h := handler.NewHandler(betService, drawService, settlementService, ledgerService, autoBetService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
