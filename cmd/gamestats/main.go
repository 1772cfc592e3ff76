package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecfg "github.com/bonitofshh/MCO1-STADVDB/internal/core/config"
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/storage"
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/storage/memory"
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/storage/postgres"
	"github.com/bonitofshh/MCO1-STADVDB/internal/dashboard"
	"github.com/bonitofshh/MCO1-STADVDB/internal/migrations"
	"github.com/bonitofshh/MCO1-STADVDB/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "gamestats.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"reports", cfg.Catalog.Len(),
		"server_mode", cfg.Server.Mode)

	// 2. Initialize Storage
	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize data store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 3. Guard the store with a circuit breaker
	guarded := storage.NewBreaker(store, storage.BreakerSettings{
		MaxFailures: uint32(cfg.Breaker.MaxFailures),
		OpenTimeout: cfg.Breaker.OpenTimeoutDuration(),
	})

	// 4. Initialize Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Initialize Dashboard (query API)
	dashboardSvc := dashboard.NewService(guarded, store, cfg.Catalog, dashboard.NewMetrics(registry))

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode, registry)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore builds the configured backing store. Postgres runs migrations
// only when auto_migrate is set, then checks that the dashboard tables exist.
func openStore(cfg *corecfg.Config) (storage.Store, error) {
	if cfg.Database.Type == "memory" {
		store, err := memory.LoadSeedFile(cfg.Database.SeedPath)
		if err != nil {
			return nil, err
		}
		slog.Info("In-memory store seeded", "path", cfg.Database.SeedPath)
		return store, nil
	}

	adapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.QueryTimeoutDuration(),
	)
	if err != nil {
		return nil, err
	}

	if err := prepareSchema(adapter.DB(), cfg.Database.AutoMigrate, migrations.RunMigrations); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := adapter.ValidateSchema(ctx); err != nil {
		adapter.Close()
		return nil, err
	}

	return adapter, nil
}

// prepareSchema applies migrations only when this process owns the schema.
// With auto_migrate off the database is never written to.
func prepareSchema(db *sql.DB, autoMigrate bool, migrate func(*sql.DB) error) error {
	if !autoMigrate {
		slog.Info("[Postgres] Auto-migration disabled, using existing schema")
		return nil
	}
	return migrate(db)
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
