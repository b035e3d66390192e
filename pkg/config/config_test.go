package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "carrito-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 1000, cfg.Catalog.SeedCount)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_SEED_COUNT", "20")
	t.Setenv("CATALOG_SEED", "42")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 100, cfg.Catalog.SeedCount, "el catálogo nunca baja de 100 artículos")
	assert.EqualValues(t, 42, cfg.Catalog.Seed)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")
	_, err := config.Load()
	assert.Error(t, err)
}
