package integration

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	financeapp "github.com/storefront/backend/internal/application/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"github.com/storefront/backend/tests/testutil"
)

func newAPIClient(t *testing.T, tdb *TestDB) *testutil.APIClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.SetupValidator())

	handlers := router.NewHandlers(router.APIDeps{
		Repos: tdb.Repositories(),
		Payment: financeapp.PaymentServiceConfig{
			Currency:    "BDT",
			ServerURL:   "http://api.test",
			FrontendURL: "http://shop.test",
		},
		DB:     tdb.Database,
		Driver: "mongo",
		Logger: zap.NewNop(),
	})

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).Register(router.DomainGroups(handlers)...).Setup()
	return testutil.NewAPIClient(engine)
}

func createProduct(t *testing.T, c *testutil.APIClient, name string, stock int) string {
	t.Helper()
	w := c.Do(t, http.MethodPost, "/products", map[string]any{"name": name, "stock": stock, "newPrice": 100})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return testutil.DecodeData[shared.InsertResult](t, w).InsertedID
}

func productStock(t *testing.T, c *testutil.APIClient, id string) int {
	t.Helper()
	w := c.Do(t, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return testutil.DecodeData[struct {
		Stock int `json:"stock"`
	}](t, w).Stock
}

func TestAPIFlow_Health(t *testing.T) {
	c := newAPIClient(t, NewTestDB(t))

	w := c.Do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := testutil.DecodeData[handler.HealthResponse](t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "mongo", health.Driver)
}

func TestAPIFlow_Users(t *testing.T) {
	c := newAPIClient(t, NewTestDB(t))

	w := c.Do(t, http.MethodPost, "/users", map[string]any{"name": "Rahim", "email": "rahim@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userID := testutil.DecodeData[shared.InsertResult](t, w).InsertedID

	// a second registration is acknowledged without inserting
	w = c.Do(t, http.MethodPost, "/users", map[string]any{"name": "Rahim", "email": "rahim@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, testutil.DecodeData[map[string]any](t, w)["insertedId"])

	w = c.Do(t, http.MethodPatch, "/users/admin/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.Do(t, http.MethodGet, "/users/role?email=rahim@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", testutil.DecodeData[map[string]any](t, w)["role"])
}

func TestAPIFlow_CatalogUniqueNames(t *testing.T) {
	c := newAPIClient(t, NewTestDB(t))

	w := c.Do(t, http.MethodPost, "/brands", map[string]any{"name": "Aarong"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.Do(t, http.MethodPost, "/brands", map[string]any{"name": "Aarong"})
	testutil.AssertErrorResponse(t, w, http.StatusConflict, "ERR_ALREADY_EXISTS")
}

func TestAPIFlow_OrderAndPOSStock(t *testing.T) {
	c := newAPIClient(t, NewTestDB(t))
	productID := createProduct(t, c, "Shirt", 10)

	w := c.Do(t, http.MethodPost, "/orders", map[string]any{
		"email":     "rahim@example.com",
		"total":     300,
		"cartItems": []map[string]any{{"productId": productID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := testutil.DecodeData[shared.InsertResult](t, w).InsertedID

	w = c.Do(t, http.MethodPatch, "/orders/"+orderID+"/status", map[string]any{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 7, productStock(t, c, productID))

	w = c.Do(t, http.MethodPost, "/pos/cart", map[string]any{"productId": productID, "name": "Shirt", "price": 100, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.Do(t, http.MethodPost, "/pos/orders", map[string]any{
		"cartItems": []map[string]any{{"productId": productID, "quantity": 2, "price": 100}},
		"total":     200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 5, productStock(t, c, productID))

	w = c.Do(t, http.MethodGet, "/pos/cart", nil)
	assert.Empty(t, testutil.DecodeData[[]map[string]any](t, w))

	w = c.Do(t, http.MethodGet, "/sales-report", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := testutil.DecodeData[struct {
		AllTime   float64          `json:"allTime"`
		AllOrders []map[string]any `json:"allOrders"`
	}](t, w)
	assert.Equal(t, 500.0, report.AllTime)
	assert.Len(t, report.AllOrders, 2)
}

func TestAPIFlow_ApplyCoupon(t *testing.T) {
	c := newAPIClient(t, NewTestDB(t))

	w := c.Do(t, http.MethodPost, "/coupons", map[string]any{
		"code": "FLAT50", "discountType": "fixed", "discountValue": 50, "minOrderAmount": 200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.Do(t, http.MethodPost, "/apply-coupon", map[string]any{"code": "FLAT50", "totalAmount": 300})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	applied := testutil.DecodeData[map[string]any](t, w)
	assert.Equal(t, 50.0, applied["discount"])
	assert.Equal(t, 250.0, applied["finalAmount"])

	w = c.Do(t, http.MethodPost, "/apply-coupon", map[string]any{"code": "FLAT50", "totalAmount": 100})
	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_COUPON_REJECTED")
}
