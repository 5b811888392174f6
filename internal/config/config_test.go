package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "IDEMPOTENCY_DB_PATH", "IDEMPOTENCY_TTL", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "idempotency.db", cfg.IdempotencyDBPath)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("IDEMPOTENCY_DB_PATH", "/tmp/keys.db")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/keys.db", cfg.IdempotencyDBPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout, "non-positive durations fall back")
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL, "unparseable durations fall back")
}
