// cmd/tourism-agent/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tourism-agent/internal/agent"
	"tourism-agent/internal/cli"
	"tourism-agent/internal/common/cache"
	"tourism-agent/internal/common/config"
	"tourism-agent/internal/common/logger"
	"tourism-agent/internal/common/observability"
	"tourism-agent/internal/intent"
	"tourism-agent/internal/providers/geocoding"
	"tourism-agent/internal/providers/places"
	"tourism-agent/internal/providers/weather"
	"tourism-agent/pkg/vocabulary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.NewStructured("info", "console")
		fallback.Error("config load failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Geocode caching is optional; the agent runs fine without Redis.
	var geocodeCache geocoding.Cache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err == nil {
			err = redisClient.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("redis unavailable, geocode caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			geocodeCache = redisClient
			zapLog.Info("redis connected")
		}
	}

	geocoder := geocoding.NewClient(&geocoding.Config{
		BaseURL:   cfg.Providers.Geocoding.BaseURL,
		UserAgent: cfg.Providers.Geocoding.UserAgent,
		Timeout:   config.GetDuration(cfg.Providers.Geocoding.Timeout),
		CacheTTL:  config.GetDuration(cfg.Providers.Geocoding.CacheTTL * 1000),
	}, geocodeCache, log)

	weatherClient := weather.NewClient(&weather.Config{
		BaseURL: cfg.Providers.Weather.BaseURL,
		Timeout: config.GetDuration(cfg.Providers.Weather.Timeout),
	}, log)

	placesClient := places.NewClient(&places.Config{
		BaseURL:      cfg.Providers.Places.BaseURL,
		Timeout:      config.GetDuration(cfg.Providers.Places.Timeout),
		RadiusMeters: cfg.Providers.Places.RadiusMeters,
	}, log)

	var analyzer *intent.Analyzer
	if cfg.Agent.VocabularyPath != "" {
		vocab, err := vocabulary.Load(cfg.Agent.VocabularyPath)
		if err != nil {
			zapLog.Warn("vocabulary pack unreadable, using built-in vocabulary",
				zap.String("path", cfg.Agent.VocabularyPath), zap.Error(err))
		} else {
			analyzer = intent.NewAnalyzerFrom(vocab)
			zapLog.Info("vocabulary pack loaded",
				zap.String("path", cfg.Agent.VocabularyPath),
				zap.String("version", vocab.Version))
		}
	}

	travelAgent := agent.New(
		&agent.Config{MaxAttractions: cfg.Agent.MaxAttractions},
		analyzer, geocoder, weatherClient, placesClient, obs, log,
	)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		zapLog.Info("metrics endpoint started", zap.String("address", cfg.Metrics.Address))
	}

	repl := cli.New(travelAgent, os.Stdin, os.Stdout, log)
	if err := repl.Run(ctx); err != nil && err != context.Canceled {
		zapLog.Error("repl terminated", zap.Error(err))
	}
}
