package memory

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	res, err := repo.Create(ctx, &catalog.Product{Name: "Shirt", Stock: 10, NewPrice: 450})
	require.NoError(t, err)
	id, err := primitive.ObjectIDFromHex(res.InsertedID)
	require.NoError(t, err)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", p.Name)
	assert.Equal(t, 10, p.Stock)

	upd, err := repo.Update(ctx, id, shared.Changes{"name": "Polo"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	upd, err = repo.Update(ctx, id, shared.Changes{"name": "Polo"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(0), upd.ModifiedCount, "unchanged document is not modified")

	upd, err = repo.Update(ctx, primitive.NewObjectID(), shared.Changes{"name": "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.MatchedCount)

	del, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	res, err := repo.Create(ctx, &catalog.Product{Name: "Hat", Images: []string{"a.png"}})
	require.NoError(t, err)
	id, _ := primitive.ObjectIDFromHex(res.InsertedID)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	p.Images[0] = "changed.png"

	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, again.Images)
}

func TestCollection_UniqueFields(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()

	_, err := users.Create(ctx, &identity.User{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = users.Create(ctx, &identity.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	u, err := users.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	_, err = users.FindByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	res, _ := repo.Create(ctx, &catalog.Product{Name: "Mug", Stock: 1})
	id, _ := primitive.ObjectIDFromHex(res.InsertedID)

	t.Run("goes negative without a floor", func(t *testing.T) {
		upd, err := repo.AdjustStock(ctx, id, -3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), upd.MatchedCount)

		p, _ := repo.FindByID(ctx, id)
		assert.Equal(t, -2, p.Stock)
	})

	t.Run("unknown product matches nothing", func(t *testing.T) {
		upd, err := repo.AdjustStock(ctx, primitive.NewObjectID(), -1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), upd.MatchedCount)
	})

	t.Run("non-numeric stock is an error", func(t *testing.T) {
		repo.SetRaw(id, "stock", "many")
		_, err := repo.AdjustStock(ctx, id, -1)
		assert.Error(t, err)
	})
}

func TestProductRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	_, _ = repo.Create(ctx, &catalog.Product{Name: "Blue T-Shirt", BrandID: "b1", Status: catalog.StatusActive})
	_, _ = repo.Create(ctx, &catalog.Product{Name: "Red Shirt", BrandID: "b2", Status: catalog.StatusActive})
	_, _ = repo.Create(ctx, &catalog.Product{Name: "Jeans", BrandID: "b1", Status: catalog.StatusInactive})

	items, err := repo.Search(ctx, catalog.ProductQuery{Search: "SHIRT"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.Search(ctx, catalog.ProductQuery{BrandID: "b1", Status: "active"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Blue T-Shirt", items[0].Name)
}

func TestProductRepository_LooseAmounts(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	res, _ := repo.Create(ctx, &catalog.Product{Name: "Cap"})
	id, _ := primitive.ObjectIDFromHex(res.InsertedID)

	repo.SetRaw(id, "newPrice", "199.5")
	repo.SetRaw(id, "oldPrice", "free")

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, shared.Amount(199.5), p.NewPrice)
	assert.Equal(t, shared.Amount(0), p.OldPrice)
}

func TestOrderRepository_NewestFirstAndDelivered(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lines := []trade.LineItem{{ProductID: primitive.NewObjectID().Hex(), Quantity: 1}}

	for i, status := range []trade.OrderStatus{trade.StatusDelivered, trade.StatusPending, trade.StatusDelivered} {
		o, err := trade.NewOrder("c@example.com", lines, 10, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		o.Status = status
		_, err = repo.Create(ctx, o)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))

	delivered, err := repo.FindDelivered(ctx)
	require.NoError(t, err)
	assert.Len(t, delivered, 2)

	pending, err := repo.FindAll(ctx, shared.Filter{}.Set("status", "pending"))
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestCartRepositories_Clear(t *testing.T) {
	ctx := context.Background()

	cart := NewCartRepository()
	_, _ = cart.Create(ctx, &trade.CartItem{Email: "a@example.com", Quantity: 1})
	_, _ = cart.Create(ctx, &trade.CartItem{Email: "a@example.com", Quantity: 2})
	_, _ = cart.Create(ctx, &trade.CartItem{Email: "b@example.com", Quantity: 1})

	res, err := cart.DeleteByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)
	left, _ := cart.FindAll(ctx, shared.Filter{})
	assert.Len(t, left, 1)

	posCart := NewPOSCartRepository()
	_, _ = posCart.Create(ctx, &pos.CartItem{Quantity: 1})
	_, _ = posCart.Create(ctx, &pos.CartItem{Quantity: 1})
	res, err = posCart.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)
	left2, _ := posCart.FindAll(ctx, shared.Filter{})
	assert.Empty(t, left2)
}
