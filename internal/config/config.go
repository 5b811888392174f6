package config

import (
	"os"
	"time"
)

// Config holds the HTTP server settings. Database settings come from
// db.FromEnv.
type Config struct {
	Addr              string
	IdempotencyDBPath string
	IdempotencyTTL    time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	idemPath := os.Getenv("IDEMPOTENCY_DB_PATH")
	if idemPath == "" {
		idemPath = "idempotency.db"
	}

	return &Config{
		Addr:              addr,
		IdempotencyDBPath: idemPath,
		IdempotencyTTL:    durationEnv("IDEMPOTENCY_TTL", 24*time.Hour),
		RequestTimeout:    durationEnv("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:   durationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// durationEnv parses key as a time.Duration, falling back on empty, invalid
// or non-positive values.
func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
