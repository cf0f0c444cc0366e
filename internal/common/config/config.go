package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs: where the backend lives, how the
// HTTP wrapper behaves, how the tracking engine paces itself, and where local
// state is persisted.
type Config struct {
	API      APIConfig
	Tracking TrackingConfig
	Storage  StorageConfig
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables the limiter
	RateBurst int
	UserAgent string
}

type TrackingConfig struct {
	InitialInterval time.Duration
	MinInterval     time.Duration
	MaxInterval     time.Duration
}

type StorageConfig struct {
	Driver string // "file" | "sqlite"
	Path   string // directory for file driver, db file for sqlite
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:   getEnv("RC_BASE_URL", ""),
			Timeout:   getDuration("RC_HTTP_TIMEOUT", 15*time.Second),
			RateLimit: getFloat("RC_RATE_LIMIT", 0),
			RateBurst: getInt("RC_RATE_BURST", 5),
			UserAgent: getEnv("RC_USER_AGENT", "restaurant-client/1.0"),
		},
		Tracking: TrackingConfig{
			InitialInterval: getDuration("RC_TRACK_INITIAL_INTERVAL", 30*time.Second),
			MinInterval:     getDuration("RC_TRACK_MIN_INTERVAL", 15*time.Second),
			MaxInterval:     getDuration("RC_TRACK_MAX_INTERVAL", 60*time.Second),
		},
		Storage: StorageConfig{
			Driver: getEnv("RC_STORAGE_DRIVER", "file"),
			Path:   getEnv("RC_STORAGE_PATH", ".restaurant-client"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, errors.New("invalid config: RC_BASE_URL is required")
	}
	if cfg.Tracking.MinInterval > cfg.Tracking.MaxInterval {
		return nil, errors.New("invalid config: RC_TRACK_MIN_INTERVAL exceeds RC_TRACK_MAX_INTERVAL")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
