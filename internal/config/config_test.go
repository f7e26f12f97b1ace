package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, uint64(3), cfg.Engine.TxMaxRetries)
	assert.Equal(t, 20*time.Millisecond, cfg.Engine.TxRetryBaseDelay)
	assert.Equal(t, 3, cfg.Engine.DrawsPerDay)
	assert.Equal(t, "read committed", cfg.Database.TxIsolation)
	assert.Equal(t, 30*time.Second, cfg.Worker.DrawCloseInterval)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENGINE_TX_MAX_RETRIES", "5")
	t.Setenv("ENGINE_PLACEMENT_TIMEOUT", "2s")
	t.Setenv("WORKER_AUTOBET_INTERVAL", "10s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, uint64(5), cfg.Engine.TxMaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Engine.PlacementTimeout)
	assert.Equal(t, 10*time.Second, cfg.Worker.AutoBetInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidDrawsPerDay(t *testing.T) {
	t.Setenv("ENGINE_DRAWS_PER_DAY", "0")

	_, err := Load()
	assert.Error(t, err)
}
