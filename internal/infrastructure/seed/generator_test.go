package seed_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/internal/infrastructure/memory"
	"github.com/jhoicas/carrito-api/internal/infrastructure/seed"
)

func TestGenerate_RespetaInvariantes(t *testing.T) {
	items := seed.Generate(500, 7)
	require.Len(t, items, 500)

	lo, hi := decimal.RequireFromString("5.00"), decimal.RequireFromString("200.00")
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		assert.True(t, it.Validate(), "artículo inválido: %+v", it)
		assert.False(t, it.Price.LessThan(lo) || it.Price.GreaterThan(hi), "precio fuera de rango: %s", it.Price)
		assert.LessOrEqual(t, it.Stock, 100)
		ids[it.ID] = struct{}{}
	}
	assert.Len(t, ids, 500, "los ids deben ser únicos")

	repo := memory.NewItemRepository()
	require.NoError(t, repo.Load(items))
	assert.Equal(t, 500, repo.Count())
}

func TestGenerate_MinimoCienArticulos(t *testing.T) {
	assert.Len(t, seed.Generate(3, 1), seed.MinItems)
}

func TestGenerate_DeterministaConSeed(t *testing.T) {
	a, b := seed.Generate(150, 99), seed.Generate(150, 99)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Color, b[i].Color)
		assert.Equal(t, a[i].Size, b[i].Size)
		assert.True(t, a[i].Price.Equal(b[i].Price))
		assert.Equal(t, a[i].Stock, b[i].Stock)
	}
}
