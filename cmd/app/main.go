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

	"github.com/roothaven/RootsBot_Go/internal/config"
	"github.com/roothaven/RootsBot_Go/internal/database"
	"github.com/roothaven/RootsBot_Go/internal/database/postgres"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/notifier"
	"github.com/roothaven/RootsBot_Go/internal/quest"
	"github.com/roothaven/RootsBot_Go/internal/reward"
	"github.com/roothaven/RootsBot_Go/internal/server"
	"github.com/roothaven/RootsBot_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel)

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	questRepo := postgres.NewQuestRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	characterRepo := postgres.NewCharacterRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)
	inventoryRepo, err := postgres.NewInventoryRepository(pool)
	if err != nil {
		slog.Error("Inventory repository setup failed", "error", err)
		os.Exit(1)
	}

	var n notifier.Notifier = notifier.Noop{}
	if cfg.DiscordToken != "" && cfg.DiscordRewardChannel != "" {
		discord, err := notifier.NewDiscord(cfg.DiscordToken, cfg.DiscordRewardChannel)
		if err != nil {
			slog.Error("Discord notifier setup failed", "error", err)
			os.Exit(1)
		}
		defer discord.Close()
		n = discord
	} else {
		slog.Warn("Discord notifier disabled, reward announcements will be dropped")
	}

	distributor := reward.NewDistributor(ledgerRepo, inventoryRepo)
	questService := quest.NewService(
		questRepo, ledgerRepo, characterRepo, submissionRepo,
		distributor, n, cfg.Rewards,
	)

	reconciliationWorker, err := worker.NewReconciliationWorker(questService, cfg.Rewards.ReconciliationCron)
	if err != nil {
		slog.Error("Reconciliation worker setup failed", "error", err)
		os.Exit(1)
	}
	reconciliationWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, questService)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := reconciliationWorker.Shutdown(ctx); err != nil {
		slog.Warn("Reconciliation worker shutdown timed out", "error", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("Server shutdown failed", "error", err)
	}
}
