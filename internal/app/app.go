package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/handler"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/metrics"
	"github.com/MKhiriev/go-settings-registry/internal/server"
	"github.com/MKhiriev/go-settings-registry/internal/service"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
	"github.com/MKhiriev/go-settings-registry/internal/watcher"
	"github.com/MKhiriev/go-settings-registry/internal/workers"
)

type App struct {
	cfg      *config.StructuredConfig
	registry *settings.Registry
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, version string, log *logger.Logger) (*App, error) {
	unknownKeys, err := settings.ParseUnknownKeysPolicy(cfg.Registry.UnknownKeys)
	if err != nil {
		return nil, err
	}
	mergeMode, err := settings.ParseMergeMode(cfg.Registry.MergeMode)
	if err != nil {
		return nil, err
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry := settings.NewRegistry(
		settings.WithUnknownKeys(unknownKeys),
		settings.WithMergeMode(mergeMode),
		settings.WithLogger(log.WithComponent("registry")),
		settings.WithMetrics(metrics.New(promRegistry)),
	)

	services, err := service.NewServices(registry, cfg.Registry, version, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}), log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	ws := workers.NewWorkers(srv)
	if cfg.Workers.Watch {
		ws.Add(watcher.NewFileWatcher(cfg.Registry.SettingsFile, registry, cfg.Workers.Debounce, log))
	}

	return &App{
		cfg:      cfg,
		registry: registry,
		workers:  ws,
		logger:   log,
	}, nil
}

// Load seeds the registry with defaults and merges the configured settings
// file. A missing, malformed or invalid file is logged and the daemon keeps
// serving what the registry holds. When a dump path is configured the
// resulting snapshot is written there.
func (a *App) Load(ctx context.Context) error {
	a.registry.SetDefaults()

	if path := a.cfg.Registry.SettingsFile; path != "" {
		code, err := a.registry.ProcessConfigFile(path)
		switch {
		case errors.Is(err, settings.ErrConfigurationFileNotFound):
			a.logger.Warn().Str("path", path).Msg("settings file not found, serving defaults")
		case err != nil:
			a.logger.Error().Err(err).Uint32("code", uint32(code)).Str("path", path).Msg("settings file rejected")
		}
	}

	if dump := a.cfg.Registry.DumpPath; dump != "" {
		if err := a.registry.WriteSnapshot(ctx, dump); err != nil {
			return fmt.Errorf("dump settings snapshot: %w", err)
		}
		a.logger.Info().Str("path", dump).Msg("settings snapshot written")
	}

	return nil
}

// Run loads the registry and then runs the server and workers until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Load(ctx); err != nil {
		return err
	}

	a.logger.Info().Int("settings", a.registry.Len()).Int("workers", a.workers.Len()).Msg("settings daemon started")
	return a.workers.Run(ctx)
}

// Registry returns the registry served by the daemon.
func (a *App) Registry() *settings.Registry {
	return a.registry
}
