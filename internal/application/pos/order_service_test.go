package pos

import (
	"context"
	"testing"

	"github.com/storefront/backend/internal/application/inventory"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	products *memory.ProductRepository
	orders   *memory.POSOrderRepository
	cart     *CartService
	sales    *OrderService
}

func newFixture() *fixture {
	products := memory.NewProductRepository()
	orders := memory.NewPOSOrderRepository()
	cartRepo := memory.NewPOSCartRepository()
	adjuster := inventory.NewStockAdjuster(memory.NewOrderRepository(), orders, cartRepo, products)
	return &fixture{
		products: products,
		orders:   orders,
		cart:     NewCartService(cartRepo),
		sales:    NewOrderService(orders, adjuster),
	}
}

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.products.Create(ctx, &catalog.Product{Name: "Mug", NewPrice: 12, Stock: 5})
	require.NoError(t, err)

	_, err = f.cart.Add(ctx, CartItemRequest{ProductID: created.InsertedID, Name: "Mug", Price: 12, Quantity: 2})
	require.NoError(t, err)

	resp, err := f.sales.Place(ctx, OrderRequest{
		CartItems:     []trade.LineItem{{ProductID: created.InsertedID, Quantity: 2, Price: 12}},
		Total:         24,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	require.NotEmpty(t, resp.InsertedID)
	assert.Len(t, resp.Steps, 3)

	order, err := f.sales.GetByID(ctx, resp.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, pos.StatusPaid, order.Status)
	assert.Equal(t, trade.OrderTypePOS, order.OrderType)
	assert.Equal(t, "cash", order.PaymentMethod)
	assert.False(t, order.CreatedAt.IsZero())

	product, err := f.products.FindByID(ctx, mustID(t, created.InsertedID))
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	lines, err := f.cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOrderService_Place_RejectsEmptySale(t *testing.T) {
	f := newFixture()

	_, err := f.sales.Place(context.Background(), OrderRequest{Total: 10})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	all, err := f.sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCartService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.cart.Add(ctx, CartItemRequest{ProductID: "not-an-id", Quantity: 1})
	assert.ErrorIs(t, err, shared.ErrInvalidID)

	added, err := f.cart.Add(ctx, CartItemRequest{ProductID: "6650a1b2c3d4e5f601234567", Price: 5, Quantity: 1})
	require.NoError(t, err)

	upd, err := f.cart.UpdateQuantity(ctx, added.InsertedID, CartUpdateRequest{Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	lines, err := f.cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)

	del, err := f.cart.Remove(ctx, added.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}

func mustID(t *testing.T, raw string) primitive.ObjectID {
	t.Helper()
	id, err := shared.ParseID(raw)
	require.NoError(t, err)
	return id
}
