package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Delete policies for region records that still have dependent children.
const (
	DeleteRestrict = "restrict"
	DeleteCascade  = "cascade"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	Store StoreConfig
}

// StoreConfig contains behavior knobs for the in-memory stores.
type StoreConfig struct {
	// Latency is an artificial per-operation delay emulating network latency
	// for UI development. Zero disables it.
	Latency time.Duration
	// DeletePolicy decides what happens when a region with dependants is
	// deleted: refuse (restrict) or remove the whole subtree (cascade).
	DeletePolicy string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	var err error
	if cfg.Store.Latency, err = parseDurationEnv("STORE_LATENCY", "0s"); err != nil {
		return nil, fmt.Errorf("invalid STORE_LATENCY: %w", err)
	}

	cfg.Store.DeletePolicy = getEnv("REGION_DELETE_POLICY", DeleteRestrict)
	if cfg.Store.DeletePolicy != DeleteRestrict && cfg.Store.DeletePolicy != DeleteCascade {
		return nil, fmt.Errorf("invalid REGION_DELETE_POLICY %q: must be %q or %q",
			cfg.Store.DeletePolicy, DeleteRestrict, DeleteCascade)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
