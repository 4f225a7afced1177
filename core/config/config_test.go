package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/core/config"
)

type defaultsConfig struct {
	Level   string        `env:"QRGEN_TEST_DEFAULTS_LEVEL" envDefault:"info"`
	Max     int           `env:"QRGEN_TEST_DEFAULTS_MAX" envDefault:"2048"`
	Timeout time.Duration `env:"QRGEN_TEST_DEFAULTS_TIMEOUT" envDefault:"5s"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 2048, cfg.Max)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

type cachedConfig struct {
	Value string `env:"QRGEN_TEST_CACHED_VALUE"`
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("QRGEN_TEST_CACHED_VALUE", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("QRGEN_TEST_CACHED_VALUE", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value, "cached value is reused")

	var c cachedConfig
	require.NoError(t, config.Parse(&c))
	assert.Equal(t, "second", c.Value, "Parse bypasses the cache")
}

type requiredConfig struct {
	Token string `env:"QRGEN_TEST_REQUIRED_TOKEN,required"`
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QRGEN_TEST_REQUIRED_TOKEN")

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadNilTarget(t *testing.T) {
	var cfg *defaultsConfig
	assert.Error(t, config.Load(cfg))
}
