package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tienda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: tienda-test
http:
  port: 8080
  timeouts:
    readTimeout: 3s
inventory:
  lowStockThreshold: 5
pagination:
  maxLimit: 50
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiendatest.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("tiendatest")
	require.NoError(t, err)

	assert.Equal(t, "tienda-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Inventory)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestConfig_InventoryThresholds(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, entity.DefaultInventoryThresholds(), nilCfg.InventoryThresholds())

	cfg := &Config{Inventory: &InventoryConfig{LowStockThreshold: 3}}
	got := cfg.InventoryThresholds()
	assert.Equal(t, 3, got.LowStock)
	assert.Equal(t, 7, got.RestockRunwayDays)
	assert.Equal(t, 30, got.SalesWindowDays)
}

func TestConfig_PageLimits(t *testing.T) {
	def, maxLimit := (&Config{}).PageLimits()
	assert.Equal(t, 10, def)
	assert.Equal(t, 100, maxLimit)

	def, maxLimit = (&Config{Pagination: &PaginationConfig{DefaultLimit: 20, MaxLimit: 40}}).PageLimits()
	assert.Equal(t, 20, def)
	assert.Equal(t, 40, maxLimit)
}
