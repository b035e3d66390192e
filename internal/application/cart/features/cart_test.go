package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/infrastructure/memory"
)

type cartTestContext struct {
	items  *memory.ItemRepository
	ledger *cart.Ledger
	order  *entity.Order
	err    error
}

func (c *cartTestContext) reset() {
	c.items = memory.NewItemRepository()
	c.ledger = cart.NewLedger(c.items, memory.NewOrderRepository())
	c.order = nil
	c.err = nil
}

func (c *cartTestContext) anItemWithStockAndPrice(id string, stock int, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	return c.items.Load([]*entity.Item{{
		ID: id, Name: "Artículo " + id, Color: "negro", Size: entity.SizeL, Price: p, Stock: stock,
	}})
}

func (c *cartTestContext) iAddOfToTheCart(qty int, id string) error {
	_, c.err = c.ledger.Add(id, qty)
	return nil
}

func (c *cartTestContext) iUpdateTo(id string, qty int) error {
	_, c.err = c.ledger.Update(id, qty)
	return nil
}

func (c *cartTestContext) iRemoveFromTheCart(id string) error {
	c.err = c.ledger.Remove(id)
	return nil
}

func (c *cartTestContext) iCheckOut() error {
	c.order, c.err = c.ledger.Checkout()
	return nil
}

func (c *cartTestContext) theStockOfIs(id string, want int) error {
	it, err := c.items.GetByID(id)
	if err != nil {
		return err
	}
	if it.Stock != want {
		return fmt.Errorf("expected stock %d for %s, got %d", want, id, it.Stock)
	}
	return nil
}

func (c *cartTestContext) theCartHoldsOf(want int, id string) error {
	if got := c.ledger.Quantity(id); got != want {
		return fmt.Errorf("expected %d of %s in cart, got %d", want, id, got)
	}
	return nil
}

func (c *cartTestContext) theOperationFailsWith(code string) error {
	expected := map[string]error{
		"INSUFFICIENT_STOCK": domain.ErrInsufficientStock,
		"NOT_IN_CART":        domain.ErrNotInCart,
		"NOT_FOUND":          domain.ErrNotFound,
		"EMPTY_CART":         domain.ErrEmptyCart,
		"VALIDATION":         domain.ErrInvalidInput,
	}[code]
	if expected == nil {
		return fmt.Errorf("unknown error code %q", code)
	}
	if !errors.Is(c.err, expected) {
		return fmt.Errorf("expected %v, got %v", expected, c.err)
	}
	return nil
}

func (c *cartTestContext) theOrderTotalIs(total string) error {
	if c.err != nil {
		return fmt.Errorf("checkout failed: %w", c.err)
	}
	want := decimal.RequireFromString(total)
	if !c.order.Total.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, c.order.Total)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if n := c.ledger.Len(); n != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", n)
	}
	return nil
}

func (c *cartTestContext) noOrderWasCreated() error {
	if c.order != nil {
		return errors.New("expected no order")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^an item "([^"]*)" with stock (\d+) and price "([^"]*)"$`, tc.anItemWithStockAndPrice)

	// When
	ctx.Step(`^I add (\d+) of "([^"]*)" to the cart$`, tc.iAddOfToTheCart)
	ctx.Step(`^I update "([^"]*)" to (\d+)$`, tc.iUpdateTo)
	ctx.Step(`^I remove "([^"]*)" from the cart$`, tc.iRemoveFromTheCart)
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then
	ctx.Step(`^the stock of "([^"]*)" is (\d+)$`, tc.theStockOfIs)
	ctx.Step(`^the cart holds (\d+) of "([^"]*)"$`, tc.theCartHoldsOf)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the order total is "([^"]*)"$`, tc.theOrderTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^no order was created$`, tc.noOrderWasCreated)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart_reservation.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
