package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_URL", "CORS_ALLOWED_ORIGINS", "BACKEND_URL", "BACKEND_TIMEOUT",
		"SESSION_COOKIE_NAME", "SESSION_JWT_SECRET", "AUTH_COOKIE_PATH", "OAUTH_CALLBACK_TTL",
		"REDIS_URL", "LOG_LEVEL", "OTEL_TRACES_EXPORTER", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, "30s", cfg.Backend.Timeout)
	assert.Equal(t, "access_token", cfg.Session.CookieName)
	assert.Equal(t, "/", cfg.Session.CookiePath)
	assert.Equal(t, "10m", cfg.OAuth.CallbackTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Trace.Exporter)
	assert.Equal(t, "shortenurl-web", cfg.Trace.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("BACKEND_URL", "http://api:8000")
	t.Setenv("AUTH_COOKIE_SAMESITE", "strict")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("OTEL_TRACES_EXPORTER", "otlp")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://api:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "strict", cfg.Session.CookieSameSite)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "otlp", cfg.Trace.Exporter)
}
