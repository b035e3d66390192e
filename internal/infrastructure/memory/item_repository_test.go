package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/infrastructure/memory"
)

func newItem(id, name, color string, size entity.Size, price string, stock int) *entity.Item {
	return &entity.Item{ID: id, Name: name, Color: color, Size: size, Price: decimal.RequireFromString(price), Stock: stock}
}

func loaded(t *testing.T, items ...*entity.Item) *memory.ItemRepository {
	t.Helper()
	r := memory.NewItemRepository()
	require.NoError(t, r.Load(items))
	return r
}

func TestItemRepository_GetByIDDevuelveCopia(t *testing.T) {
	r := loaded(t, newItem("a", "Camiseta", "Rojo", entity.SizeS, "10.00", 5))

	it, err := r.GetByID("a")
	require.NoError(t, err)
	it.Stock = 999

	again, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Stock, "modificar la copia no debe tocar el catálogo")

	_, err = r.GetByID("zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepository_LoadRechazaInvalidos(t *testing.T) {
	r := memory.NewItemRepository()
	assert.ErrorIs(t, r.Load([]*entity.Item{newItem("a", "x", "y", entity.SizeM, "1", -1)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Load([]*entity.Item{newItem("a", "x", "y", "XXXL", "1", 1)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Load([]*entity.Item{newItem("a", "x", "y", entity.SizeM, "-1", 1)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Load([]*entity.Item{
		newItem("a", "x", "y", entity.SizeM, "1", 1),
		newItem("a", "x", "y", entity.SizeM, "1", 1),
	}), domain.ErrDuplicate)
	assert.Equal(t, 0, r.Count(), "un lote inválido no carga nada")
}

func TestItemRepository_AdjustStock(t *testing.T) {
	r := loaded(t, newItem("a", "Camiseta", "Rojo", entity.SizeS, "10.00", 5))

	it, err := r.AdjustStock("a", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Stock)

	_, err = r.AdjustStock("a", -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, err = r.AdjustStock("a", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Stock)

	_, err = r.AdjustStock("zzz", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepository_AdjustStockConcurrente(t *testing.T) {
	r := loaded(t, newItem("a", "Camiseta", "Rojo", entity.SizeS, "10.00", 30))

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.AdjustStock("a", -1); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, ok)
	it, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, 0, it.Stock)
}

func TestItemRepository_ListFiltros(t *testing.T) {
	r := loaded(t,
		newItem("1", "Camiseta Clásica", "Rojo", entity.SizeS, "10.00", 1),
		newItem("2", "CAMISETA urbana", "rojo", entity.SizeM, "25.50", 1),
		newItem("3", "Chaqueta", "Azul", entity.SizeM, "80.00", 1),
		newItem("4", "Camisa Ñandú", "AZUL", entity.SizeL, "25.50", 1),
	)

	ids := func(f entity.ItemFilter) []string {
		page, _, err := r.List(f, 100, 0)
		require.NoError(t, err)
		out := make([]string, 0, len(page))
		for _, it := range page {
			out = append(out, it.ID)
		}
		return out
	}
	maxPrice := decimal.RequireFromString("25.50")

	assert.Equal(t, []string{"1", "2"}, ids(entity.ItemFilter{Name: "camiseta"}))
	assert.Equal(t, []string{"4"}, ids(entity.ItemFilter{Name: "ñandú"}))
	assert.Equal(t, []string{"1", "2"}, ids(entity.ItemFilter{Color: "ROJO"}))
	assert.Empty(t, ids(entity.ItemFilter{Color: "roj"}), "color es igualdad, no subcadena")
	assert.Equal(t, []string{"2", "3"}, ids(entity.ItemFilter{Size: entity.SizeM}))
	assert.Equal(t, []string{"1", "2", "4"}, ids(entity.ItemFilter{MaxPrice: &maxPrice}))
	assert.Equal(t, []string{"4"}, ids(entity.ItemFilter{Color: "azul", MaxPrice: &maxPrice}))
}

func TestItemRepository_ListPaginacion(t *testing.T) {
	items := make([]*entity.Item, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, newItem(fmt.Sprintf("id-%04d", i), "Polo", "Gris", entity.SizeM, "12.00", 3))
	}
	r := loaded(t, items...)

	page, total, err := r.List(entity.ItemFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, 1000, total)
	assert.Equal(t, "id-0000", page[0].ID)

	page, total, err = r.List(entity.ItemFilter{}, 10, 995)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, 1000, total)

	page, total, err = r.List(entity.ItemFilter{}, 10, 5000)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 1000, total)
}
