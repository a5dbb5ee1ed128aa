package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	leaderboardservice "podium/contexts/live-competition/leaderboard-service"
	"podium/contexts/live-competition/leaderboard-service/adapters/memory"
	postgresadapter "podium/contexts/live-competition/leaderboard-service/adapters/postgres"
	"podium/contexts/live-competition/leaderboard-service/application/workers"
	"podium/contexts/live-competition/leaderboard-service/ports"
	"podium/internal/platform/config"
	"podium/internal/platform/db"
	"podium/internal/platform/httpserver"
	"podium/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
// The registry is in-process state, so the one api process owns everything:
// the HTTP surface, the periodic expiry sweep, and the bus consumer.

type APIApp struct {
	server        *httpserver.Server
	postgres      *db.Postgres
	bus           *messaging.Bus
	sweeper       workers.ExpirySweeper
	sweepInterval time.Duration
	sweepEnabled  bool
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	store := memory.NewStore()

	var archive ports.ResultArchive
	var pg *db.Postgres
	if cfg.EnableResultArchive && strings.TrimSpace(cfg.PostgresDSN) != "" {
		connected, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		pg = connected
		archive = postgresadapter.NewRepository(pg.DB, logger)
	}

	var bus *messaging.Bus
	var publisher ports.EventPublisher
	if cfg.EnableExpiryEvents {
		bus = messaging.NewBus(logger)
		publisher = bus
	}

	module := leaderboardservice.NewModule(leaderboardservice.Dependencies{
		Registry:    store,
		Archive:     archive,
		Publisher:   publisher,
		Clock:       memory.SystemClock{},
		IDGenerator: memory.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:        server,
		postgres:      pg,
		bus:           bus,
		sweeper:       module.Sweeper,
		sweepInterval: cfg.SweepInterval,
		sweepEnabled:  cfg.EnableExpirySweep,
		logger:        logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.bus != nil {
		consumer := workers.ExpiryConsumer{Logger: a.logger}
		if err := a.bus.Subscribe(ctx, workers.ExpiredTopic, "reward-bookkeeping", consumer.Handle); err != nil {
			return err
		}
	}
	if a.sweepEnabled {
		go a.runSweepLoop(ctx)
	}

	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sweep_interval", a.sweepInterval.String(),
		"sweep_enabled", a.sweepEnabled,
	)
	return a.server.Start()
}

func (a *APIApp) runSweepLoop(ctx context.Context) {
	ticker := time.NewTicker(a.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.sweeper.RunOnce(ctx); err != nil {
				a.logger.Error("expiry sweep tick failed",
					"event", "bootstrap_sweep_tick_failed",
					"module", "internal/app/bootstrap",
					"layer", "platform",
					"error", err.Error(),
				)
			}
		}
	}
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
