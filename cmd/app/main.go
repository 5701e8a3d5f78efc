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

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/battle"
	"github.com/nyxa-games/emberdeep/internal/bootstrap"
	"github.com/nyxa-games/emberdeep/internal/config"
	"github.com/nyxa-games/emberdeep/internal/database"
	"github.com/nyxa-games/emberdeep/internal/handler"
	"github.com/nyxa-games/emberdeep/internal/profile"
	"github.com/nyxa-games/emberdeep/internal/quest"
	"github.com/nyxa-games/emberdeep/internal/reward"
	"github.com/nyxa-games/emberdeep/internal/scheduler"
	"github.com/nyxa-games/emberdeep/internal/server"
	"github.com/nyxa-games/emberdeep/internal/sse"
	"github.com/nyxa-games/emberdeep/internal/worker"
)

// Database pool sizing
const (
	dbMaxConnections = 25
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting Emberdeep", "version", cfg.Version, "environment", cfg.Environment)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Services, wired bottom-up
	activityService := activity.NewService(repos.Activity)
	rewardService := reward.NewService(repos.Reward, activityService, publisher)
	battleService := battle.NewService(
		repos.Battle, repos.Dungeon, repos.Profile, repos.Inventory,
		rewardService, activityService, publisher, nil)
	questService := quest.NewService(
		repos.Quest, repos.Profile, rewardService, activityService, publisher)
	profileService := profile.NewService(repos.Profile, repos.Inventory, publisher)

	// Live event stream
	sseHub := sse.NewHub()
	sseHub.Start()
	sse.NewSubscriber(sseHub, eventBus).Subscribe()

	// Background cadences
	workerPool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.BattleTickInterval, worker.NewBattleSweepJob(battleService))
	sched.Schedule(cfg.QuestTickInterval, worker.NewQuestSweepJob(questService))

	// Retry settlement for victories that closed before a crash
	workerPool.Enqueue(worker.NewRecoveryJob(battleService))

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Profile:  profileService,
		Activity: activityService,
		Battle:   battleService,
		Quest:    questService,
	}, sseHub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
		SSEHub:     sseHub,
		DeadLetter: deadLetter,
	})
}
