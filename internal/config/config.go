package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	OAuth   OAuthConfig
	Redis   RedisConfig
	Log     LogConfig
	Trace   TraceConfig
}

type ServerConfig struct {
	Port           string
	AppURL         string
	AllowedOrigins []string
}

type BackendConfig struct {
	BaseURL string
	Timeout string
}

type SessionConfig struct {
	CookieName     string
	JWTSecret      string
	CookieSecure   string
	CookieSameSite string
	CookieDomain   string
	CookiePath     string
}

type OAuthConfig struct {
	CallbackTTL string
}

type RedisConfig struct {
	URL string
}

type LogConfig struct {
	Level string
}

type TraceConfig struct {
	Exporter    string
	ServiceName string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	appURL := getenv("APP_URL", "http://localhost:3000")
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "3000"),
			AppURL:         appURL,
			AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", appURL)),
		},
		Backend: BackendConfig{
			BaseURL: getenv("BACKEND_URL", "http://localhost:8080"),
			Timeout: getenv("BACKEND_TIMEOUT", "30s"),
		},
		Session: SessionConfig{
			CookieName:     getenv("SESSION_COOKIE_NAME", "access_token"),
			JWTSecret:      os.Getenv("SESSION_JWT_SECRET"),
			CookieSecure:   os.Getenv("AUTH_COOKIE_SECURE"),
			CookieSameSite: os.Getenv("AUTH_COOKIE_SAMESITE"),
			CookieDomain:   os.Getenv("AUTH_COOKIE_DOMAIN"),
			CookiePath:     getenv("AUTH_COOKIE_PATH", "/"),
		},
		OAuth: OAuthConfig{
			CallbackTTL: getenv("OAUTH_CALLBACK_TTL", "10m"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Log: LogConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
		Trace: TraceConfig{
			Exporter:    getenv("OTEL_TRACES_EXPORTER", "none"),
			ServiceName: getenv("OTEL_SERVICE_NAME", "shortenurl-web"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
