// Package main provides the entry point for roomstore-server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/t1amat9409/roomstore-go/internal/core/service"
	"github.com/t1amat9409/roomstore-go/internal/infra/buildinfo"
	"github.com/t1amat9409/roomstore-go/internal/infra/confloader"
	"github.com/t1amat9409/roomstore-go/internal/infra/shutdown"
	"github.com/t1amat9409/roomstore-go/internal/server/config"
	"github.com/t1amat9409/roomstore-go/internal/server/httpserver"
	"github.com/t1amat9409/roomstore-go/internal/storage/snapshot"
	"github.com/t1amat9409/roomstore-go/internal/telemetry/logger"
	"github.com/t1amat9409/roomstore-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("roomstore-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(log)

	log.Info("starting roomstore-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	// Restore the store from its snapshot, if one exists.
	manager, err := snapshot.NewManager(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	state, err := manager.Load()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	metrics := metric.NewRegistry()

	store := service.NewFromState(service.Config{
		Saver:   metrics.WrapSaver(manager),
		Logger:  log,
		Observe: metrics.ObserveStoreOp,
	}, state)
	metrics.RegisterStats(func() (int, int, int) {
		stats := store.Stats()
		return stats.Users, stats.Rooms, stats.Sessions
	})

	stats := store.Stats()
	log.Info("store restored",
		"users", stats.Users,
		"rooms", stats.Rooms,
		"sessions", stats.Sessions)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Store:              store,
		Logger:             log,
		Metrics:            metrics,
		RateLimit:          cfg.Server.RateLimit,
		CORSAllowedOrigins: cfg.Server.CORS.AllowedOrigins,
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(30 * time.Second)
	shutdownHandler.OnShutdown(func(context.Context) error {
		log.Info("writing final snapshot")
		return store.Flush()
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Live log-level reload when the config file changes.
	if *configFile != "" {
		watcher, err := startConfigWatcher(*configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from defaults, file, and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// startConfigWatcher re-reads the config file on change and applies the
// log level. Other settings require a restart.
func startConfigWatcher(configFile string, log *slog.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg := config.Default()
		loader := confloader.NewLoader(confloader.WithConfigFile(configFile))
		if err := loader.Load(cfg); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}
