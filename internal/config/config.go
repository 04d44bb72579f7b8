package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTP      HTTPConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type AuthConfig struct {
	Secret   string
	TokenTTL string
}

type RateLimitConfig struct {
	Requests string
	Window   string
}

type RedisConfig struct {
	Addr     string
	Password string
}

func Load() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		},
		Auth: AuthConfig{
			Secret:   os.Getenv("AUTH_SECRET"),
			TokenTTL: getenv("AUTH_TOKEN_TTL", "1h"),
		},
		RateLimit: RateLimitConfig{
			Requests: getenv("AUTH_RATE_LIMIT", "10"),
			Window:   getenv("AUTH_RATE_WINDOW", "1m"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
