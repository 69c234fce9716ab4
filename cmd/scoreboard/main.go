package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/board"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/logging"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/metrics"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/providers/espn"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/server"
)

const (
	appName    = "cricket-scoreboard"
	appVersion = "dev"

	tickInterval = time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, warnings, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, metricsHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Telemetry.Enabled,
		ServiceName:  appName,
		OtlpEndpoint: cfg.Telemetry.OtlpEndpoint,
		OtlpInsecure: cfg.Telemetry.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}()

	urlOverrides := make(map[string]string)
	for i := range cfg.Leagues {
		l := &cfg.Leagues[i]
		if l.ScoreboardURL != "" {
			urlOverrides[l.Key] = l.ScoreboardURL
		}
		// Leagues without an explicit name fall back to the key at load time;
		// prefer the provider's display name when it knows the league.
		if l.Name == l.Key {
			if name, ok := espn.LeagueNames[l.Key]; ok {
				l.Name = name
			}
		}
	}
	provider := espn.NewClient(espn.Config{
		Timeout: cfg.Background.RequestTimeout(),
		URLs:    urlOverrides,
	})

	b := board.New(cfg, provider, logger, recorder)
	b.Start(ctx)
	defer b.Stop(context.Background())

	var statusServer *server.Server
	if cfg.Server.Enabled {
		handler := server.NewHandler(b, logger)
		statusServer = server.New(cfg.Server.Port, server.NewRouter(handler, metricsHandler), logger)
		go func() {
			if err := statusServer.Start(); err != nil {
				logger.Error("status server failed", "error", err)
				stop()
			}
		}()
	}

	logger.Info("scoreboard running",
		logging.FieldService, appName,
		logging.FieldVersion, appVersion,
		logging.FieldCount, len(cfg.EnabledLeagues()),
	)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			if statusServer != nil {
				if err := statusServer.Shutdown(context.Background()); err != nil {
					logger.Error("status server shutdown failed", "error", err)
				}
			}
			return nil
		case now := <-ticker.C:
			b.Tick(now)
		}
	}
}
