package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/config"
	"github.com/shortenurl/web/internal/db"
	"github.com/shortenurl/web/internal/handler"
	"github.com/shortenurl/web/internal/service"
	"github.com/shortenurl/web/internal/session"
	"github.com/shortenurl/web/internal/telemetry"
)

//go:generate swag init -g main.go -o docs --outputTypes go

// @title shortenurl web API
// @version 1.0
// @description Browser-facing API of the shortenurl web front. Authentication rides on the HTTP-only access_token cookie.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	checker, err := session.NewChecker(cfg.Session)
	if err != nil {
		return fmt.Errorf("invalid session config: %w", err)
	}

	settings, err := client.ParseSettings(cfg.Backend)
	if err != nil {
		return fmt.Errorf("invalid backend config: %w", err)
	}

	ttl, err := db.ParseCallbackTTL(cfg.OAuth)
	if err != nil {
		return fmt.Errorf("invalid oauth config: %w", err)
	}

	tp, err := telemetry.NewTracerProvider(context.Background(), cfg.Trace, os.Stdout)
	if err != nil {
		return fmt.Errorf("invalid trace config: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()
	telemetry.Install(tp)

	// Redis는 선택: 없으면 단일 인스턴스용 in-memory guard 사용
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	var guard service.CallbackGuard
	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	cancel()
	switch {
	case err == nil:
		defer rdb.Close()
		guard = db.NewRedisCallbackGuard(rdb, ttl)
		logger.Info("redis connected, oauth callback guard shared")
	case errors.Is(err, db.ErrRedisDisabled):
		guard = db.NewMemoryCallbackGuard(ttl)
	default:
		logger.Warn("redis unavailable, falling back to in-memory oauth callback guard", "error", err)
		guard = db.NewMemoryCallbackGuard(ttl)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Deps{
		Checker: checker,
		Backend: settings,
		Metrics: client.NewMetrics(reg),
		Guard:   guard,
		Logger:  logger,
	}, handler.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		OpenAPI:        true,
	})

	logger.Info("server starting", "port", cfg.Server.Port, "backend", settings.BaseURL, "traces", cfg.Trace.Exporter)
	return router.Run(":" + cfg.Server.Port)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
