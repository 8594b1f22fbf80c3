package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	RedisAddr   string
	DataDir     string
	Environment string
	LogLevel    slog.Level
	// Seed overrides the time-based default when set, for reproducible runs.
	Seed int64
}

func Load() *Config {
	return &Config{
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Seed:        parseSeed(os.Getenv("SEED")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseSeed(raw string) int64 {
	if raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return seed
		}
		slog.Warn("Invalid SEED value, falling back to time-based seed", "seed", raw, "error", err)
	}
	return time.Now().UnixNano()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
