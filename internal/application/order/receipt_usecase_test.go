package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/jhoicas/carrito-api/internal/application/order"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/infrastructure/memory"
)

type fakeGenerator struct {
	err   error
	calls int
}

func (f *fakeGenerator) GenerateReceiptPDF(_ context.Context, o *entity.Order) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-" + o.ID), nil
}

func TestReceiptUseCase(t *testing.T) {
	orders := memory.NewOrderRepository()
	require.NoError(t, orders.Save(&entity.Order{
		ID:    "o-1",
		Total: decimal.RequireFromString("19.98"),
		Lines: []entity.OrderLine{{ItemID: "a", Name: "Polo", Size: entity.SizeM, Quantity: 2,
			UnitPrice: decimal.RequireFromString("9.99"), Subtotal: decimal.RequireFromString("19.98")}},
	}))
	gen := &fakeGenerator{}
	uc := apporder.NewReceiptUseCase(orders, gen)

	out, err := uc.GetOrder("o-1")
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, "M", out.Lines[0].Size)

	pdf, name, err := uc.DownloadReceiptPDF(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-o-1", string(pdf))
	assert.Equal(t, "comprobante-o-1.pdf", name)

	_, _, err = uc.DownloadReceiptPDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, gen.calls, "no se genera PDF para órdenes inexistentes")

	gen.err = errors.New("fallo maroto")
	_, _, err = uc.DownloadReceiptPDF(context.Background(), "o-1")
	assert.Error(t, err)
}
