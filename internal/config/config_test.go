package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("STORE_LATENCY", "")
	t.Setenv("REGION_DELETE_POLICY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Duration(0), cfg.Store.Latency)
	assert.Equal(t, DeleteRestrict, cfg.Store.DeletePolicy)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadParsesStoreLatency(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORE_LATENCY", "150ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.Store.Latency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORE_LATENCY", "-5s")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORE_LATENCY", "0s")
	t.Setenv("REGION_DELETE_POLICY", "soft")
	_, err = Load()
	assert.Error(t, err)
}
