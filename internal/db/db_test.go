package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MYSQL_USER", "alice")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DATABASE", "shop")
	t.Setenv("MYSQL_PASSWORD", "")

	cfg := FromEnv()
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "shoppass", cfg.Password, "empty env keeps the fallback")
	assert.Equal(t, "alice:shoppass@tcp(db.internal:3307)/shop?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent":  logger.Silent,
		"ERROR":   logger.Error,
		" info ":  logger.Info,
		"warn":    logger.Warn,
		"verbose": logger.Warn,
		"":        logger.Warn,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}
