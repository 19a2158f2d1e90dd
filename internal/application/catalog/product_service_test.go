package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService() *ProductService {
	repos := memory.NewRepositories()
	svc := NewProductService(repos.Products, repos.Reviews)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := newProductService()

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "xyz")
		assert.ErrorIs(t, err, shared.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "6650a1b2c3d4e5f601234567")
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Product not found", err.Error())
	})
}

func TestProductService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newProductService()

	res, err := svc.Create(ctx, ProductRequest{Name: " Linen Shirt ", NewPrice: 45, Stock: 10})
	require.NoError(t, err)

	p, err := svc.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", p.Name)
	assert.Equal(t, catalog.StatusActive, p.Status)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, 10, p.Stock)

	upd, err := svc.Update(ctx, res.InsertedID, ProductRequest{Name: "Linen Shirt", NewPrice: 40, Stock: 12, Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	p, err = svc.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, shared.Amount(40), p.NewPrice)
	assert.Equal(t, 12, p.Stock)
	assert.True(t, p.CreatedAt.Equal(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)))

	_, err = svc.Create(ctx, ProductRequest{Name: "Broken", Stock: -1})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	svc := newProductService()
	for _, req := range []ProductRequest{
		{Name: "Linen Shirt", BrandID: "6650a1b2c3d4e5f601234567"},
		{Name: "Cotton SHIRT", Status: "inactive"},
		{Name: "Wool Scarf"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	shirts, err := svc.List(ctx, ProductFilter{Search: "shirt"})
	require.NoError(t, err)
	assert.Len(t, shirts, 2)

	active, err := svc.List(ctx, ProductFilter{Search: "shirt", Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Linen Shirt", active[0].Name)

	branded, err := svc.List(ctx, ProductFilter{BrandID: "6650a1b2c3d4e5f601234567"})
	require.NoError(t, err)
	assert.Len(t, branded, 1)

	literal, err := svc.List(ctx, ProductFilter{Search: "(.*)"})
	require.NoError(t, err)
	assert.Empty(t, literal, "search text is matched literally")
}

func TestProductService_Reviews(t *testing.T) {
	ctx := context.Background()
	svc := newProductService()
	productID := "6650a1b2c3d4e5f601234567"

	_, err := svc.CreateReview(ctx, ReviewRequest{ProductID: productID, Rating: 6})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	res, err := svc.CreateReview(ctx, ReviewRequest{ProductID: productID, Rating: 5, Text: "Great", Email: "a@example.com"})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(ctx, ReviewFilter{ProductID: productID})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)

	del, err := svc.DeleteReview(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}

func TestAttributeService_UniqueNames(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewAttributeService(repos.Brands, repos.Sizes, repos.Colors)

	_, err := svc.CreateBrand(ctx, BrandRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = svc.CreateBrand(ctx, BrandRequest{Name: "Acme"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	_, err = svc.CreateColor(ctx, ColorRequest{Name: "Red", Hex: "#ff0000"})
	require.NoError(t, err)
	_, err = svc.CreateColor(ctx, ColorRequest{Name: "Red"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	_, err = svc.CreateSize(ctx, SizeRequest{Name: "XL"})
	require.NoError(t, err)
	_, err = svc.CreateSize(ctx, SizeRequest{Name: "XL"})
	require.NoError(t, err, "sizes may repeat")

	sizes, err := svc.ListSizes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sizes, 2)
}
