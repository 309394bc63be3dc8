package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shortenurl/web/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		Server:  config.ServerConfig{Port: "0"},
		Backend: config.BackendConfig{BaseURL: "http://backend:8080", Timeout: "5s"},
		OAuth:   config.OAuthConfig{CallbackTTL: "10m"},
		Log:     config.LogConfig{Level: "error"},
		Trace:   config.TraceConfig{Exporter: "none"},
	}
}

func TestRunReturnsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   string
	}{
		{"session", func(cfg *config.Config) { cfg.Session.CookieSecure = "maybe" }, "invalid session config"},
		{"backend", func(cfg *config.Config) { cfg.Backend.Timeout = "soon" }, "invalid backend config"},
		{"oauth", func(cfg *config.Config) { cfg.OAuth.CallbackTTL = "-1m" }, "invalid oauth config"},
		{"trace", func(cfg *config.Config) { cfg.Trace.Exporter = "zipkin" }, "invalid trace config"},
		// listen failure comes back through run, so deferred cleanup runs
		{"listen", func(cfg *config.Config) { cfg.Server.Port = "-1" }, "-1"},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := run(cfg, logger)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	assert.False(t, newLogger(config.LogConfig{Level: "warn"}).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, newLogger(config.LogConfig{Level: "DEBUG"}).Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, newLogger(config.LogConfig{Level: ""}).Enabled(context.Background(), slog.LevelInfo))
}
