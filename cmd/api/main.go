package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/orderlens/backend/api/routes"
	"github.com/orderlens/backend/internal/dataset"
	"github.com/orderlens/backend/internal/insights"
	"github.com/orderlens/backend/pkg/config"
	"github.com/orderlens/backend/pkg/logger"
	"github.com/orderlens/backend/pkg/metrics"
	"github.com/orderlens/backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	var cache *dataset.SnapshotCache
	if cfg.Cache.Enabled {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		cache, err = dataset.NewSnapshotCache(redisClient, cfg.Cache.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create snapshot cache", err)
			os.Exit(1)
		}
	}

	loader, err := dataset.NewLoader(cfg.Dataset, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create dataset loader", err)
		os.Exit(1)
	}
	if cache != nil {
		loader = loader.WithCache(cache)
	}

	raw, err := loader.Load(context.Background())
	if err != nil {
		logg.Error(context.Background(), "failed to load dataset snapshot", err)
		os.Exit(1)
	}

	// Schema problems surface here, before the server binds a port.
	table, err := insights.Normalize(raw)
	if err != nil {
		logg.Error(context.Background(), "failed to normalize dataset", err)
		os.Exit(1)
	}

	service, err := insights.NewService(table)
	if err != nil {
		logg.Error(context.Background(), "failed to create insights service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	bounds := service.Bounds()
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"records":  len(table.Records),
		"min_date": bounds.MinDate,
		"max_date": bounds.MaxDate,
	})
	logg.Info(ctx, "starting api server")

	var pinger redis.Pinger
	if redisClient != nil {
		pinger = redisClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, pinger, registry, httpMetrics, service),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
