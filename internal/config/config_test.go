package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.SnapshotBackend)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 1200*time.Millisecond, cfg.BotThinkDelay)
	assert.Equal(t, 120, cfg.RateLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SNAPSHOT_BACKEND", "sqlite")
	t.Setenv("BOT_THINK_DELAY", "0s")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.SnapshotBackend)
	assert.Zero(t, cfg.BotThinkDelay)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadPostgresDSNFallsBackToDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gharjoy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/gharjoy", cfg.PostgresDSN)
}
