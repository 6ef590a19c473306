package pos_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/pos-backend/internal/modules/catalog"
	"github.com/smartmart/pos-backend/internal/modules/pos"
	"github.com/smartmart/pos-backend/internal/modules/sales"
	"github.com/smartmart/pos-backend/internal/store"
)

type fixture struct {
	pos     pos.Service
	catalog catalog.Service
	sales   sales.Service
	store   *store.Store
	session uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)

	catalogRepo := catalog.NewFileRepository(st)
	salesService := sales.NewService(sales.NewFileRepository(st))
	return &fixture{
		pos:     pos.NewService(catalogRepo, salesService, logger),
		catalog: catalog.NewService(catalogRepo),
		sales:   salesService,
		store:   st,
		session: uuid.New(),
	}
}

func (f *fixture) addProduct(t *testing.T, id, name, category string, price float64, qty int) {
	t.Helper()
	_, err := f.catalog.UpsertProduct(context.Background(), catalog.UpsertProductRequest{
		ID: id, Name: name, Category: category, Price: price, Quantity: qty,
	})
	require.NoError(t, err)
}

func TestAddToCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 3))
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 2))

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity, "adds accumulate")
}

func TestAddToCartRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)

	assert.ErrorIs(t, f.pos.AddToCart(ctx, f.session, "E001", 0), pos.ErrInvalidQuantity)
	assert.ErrorIs(t, f.pos.AddToCart(ctx, f.session, "E001", -2), pos.ErrInvalidQuantity)
	assert.ErrorIs(t, f.pos.AddToCart(ctx, f.session, "ghost", 1), catalog.ErrProductNotFound)
	assert.ErrorIs(t, f.pos.AddToCart(ctx, f.session, "E001", 11), catalog.ErrInsufficientStock)

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, items, "failed adds must leave the cart unchanged")
}

func TestUpdateCartQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 3))
	require.NoError(t, f.pos.UpdateCartQuantity(ctx, f.session, "E001", 7))

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity, "update overwrites, not accumulates")

	assert.ErrorIs(t, f.pos.UpdateCartQuantity(ctx, f.session, "E001", 11), catalog.ErrInsufficientStock)

	// zero delegates to removal
	require.NoError(t, f.pos.UpdateCartQuantity(ctx, f.session, "E001", 0))
	items, err = f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, items)

	// removal of an absent product is an error, through either path
	assert.ErrorIs(t, f.pos.UpdateCartQuantity(ctx, f.session, "E001", 0), pos.ErrNotInCart)
	assert.ErrorIs(t, f.pos.RemoveFromCart(ctx, f.session, "E001"), pos.ErrNotInCart)
}

func TestCartItemsDropVanishedProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 1))
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	require.NoError(t, f.catalog.RemoveProduct(ctx, "E001"))

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "G001", items[0].ID)
}

func TestTotalCardDiscount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E003", "Headphones", "Electronics", 79.99, 20)
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E003", 2))
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 3))

	cash, err := f.pos.Total(ctx, f.session, "cash")
	require.NoError(t, err)
	assert.InDelta(t, 171.95, cash, 0.001)

	for _, method := range []string{"card", "Card", "CARD"} {
		card, err := f.pos.Total(ctx, f.session, method)
		require.NoError(t, err)
		assert.InDelta(t, 154.76, card, 0.001, method)
	}
}

func TestCheckoutScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 5))

	paid := 3000.0
	receipt, err := f.pos.Checkout(ctx, f.session, pos.CheckoutRequest{
		PaymentMethod:  "cash",
		AmountReceived: &paid,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2999.95, receipt.Total, 0.001)
	assert.InDelta(t, 0.05, receipt.Change, 0.001)

	p, err := f.catalog.GetProduct(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Quantity)

	records, err := f.sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "exactly one new sales-log line")
	assert.InDelta(t, 2999.95, records[0].Total, 0.001)

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, items, "cart cleared on success")
}

func TestCheckoutSkipsRemovedProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E001", "Smartphone", "Electronics", 599.99, 10)
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E001", 1))
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	// Admin removes the smartphone while it sits in the cart. The sale
	// still commits, charging and decrementing only the surviving item.
	require.NoError(t, f.catalog.RemoveProduct(ctx, "E001"))

	receipt, err := f.pos.Checkout(ctx, f.session, pos.CheckoutRequest{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.InDelta(t, 7.98, receipt.Total, 0.001)

	p, err := f.catalog.GetProduct(ctx, "G001")
	require.NoError(t, err)
	assert.Equal(t, 48, p.Quantity)

	records, err := f.sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 7.98, records[0].Total, 0.001)

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, items, "cart cleared on success")
}

func TestCheckoutInsufficientStockAborts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "E002", "Laptop", "Electronics", 999.99, 5)
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)

	require.NoError(t, f.pos.AddToCart(ctx, f.session, "E002", 5))
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	// Another sale drains the laptop stock after the cart was built.
	repo := catalog.NewFileRepository(f.store)
	require.NoError(t, repo.DecrementStock(ctx, map[string]int{"E002": 3}))

	before, err := os.ReadFile(f.store.Products.Path())
	require.NoError(t, err)

	_, err = f.pos.Checkout(ctx, f.session, pos.CheckoutRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	after, err := os.ReadFile(f.store.Products.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "catalog must be byte-identical after an aborted commit")

	records, err := f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "no sales-log record on abort")

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Len(t, items, 2, "cart survives an aborted commit")
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.pos.Checkout(context.Background(), f.session, pos.CheckoutRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, pos.ErrEmptyCart)
}

func TestCheckoutInsufficientPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	paid := 5.0
	_, err := f.pos.Checkout(ctx, f.session, pos.CheckoutRequest{
		PaymentMethod:  "cash",
		AmountReceived: &paid,
	})
	assert.ErrorIs(t, err, pos.ErrInsufficientPayment)

	p, err := f.catalog.GetProduct(ctx, "G001")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Quantity, "no stock mutation on rejected payment")
}

func TestClearCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	f.pos.ClearCart(ctx, f.session)

	items, err := f.pos.CartItems(ctx, f.session)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, "G001", "Milk", "Groceries", 3.99, 50)

	other := uuid.New()
	require.NoError(t, f.pos.AddToCart(ctx, f.session, "G001", 2))

	items, err := f.pos.CartItems(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, items, "one session's cart must not leak into another")
}
