package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func TestPageRequest_Defaults(t *testing.T) {
	page, err := dto.PageRequest{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, dto.Page{Limit: 10, Offset: 0}, page)
}

func TestPageRequest_Limites(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.PageRequest
		wantErr bool
	}{
		{"limit mínimo", dto.PageRequest{Limit: intPtr(1)}, false},
		{"limit máximo", dto.PageRequest{Limit: intPtr(100)}, false},
		{"limit cero", dto.PageRequest{Limit: intPtr(0)}, true},
		{"limit excedido", dto.PageRequest{Limit: intPtr(101)}, true},
		{"offset negativo", dto.PageRequest{Offset: intPtr(-1)}, true},
		{"offset grande", dto.PageRequest{Offset: intPtr(5000)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.req.Resolve()
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListItemsRequest_Filter(t *testing.T) {
	f, err := dto.ListItemsRequest{Name: "cam", Color: "Rojo", Size: "XL", MaxPrice: "19.99"}.Filter()
	require.NoError(t, err)
	assert.Equal(t, entity.SizeXL, f.Size)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, "19.99", f.MaxPrice.String())

	_, err = dto.ListItemsRequest{Size: "XXXL"}.Filter()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = dto.ListItemsRequest{MaxPrice: "barato"}.Filter()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = dto.ListItemsRequest{MaxPrice: "-1"}.Filter()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
