package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics(t *testing.T) {
	t.Run("nil recorder passes through", func(t *testing.T) {
		router := newEngine(HTTPMetrics(nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("records route template", func(t *testing.T) {
		reader := sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		m, err := telemetry.NewHTTPMetrics(provider.Meter("test"))
		require.NoError(t, err)

		router := gin.New()
		router.Use(HTTPMetrics(m))
		router.GET("/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/abc", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(context.Background(), &rm))

		routes := map[string]bool{}
		for _, sm := range rm.ScopeMetrics {
			for _, mt := range sm.Metrics {
				sum, ok := mt.Data.(metricdata.Sum[int64])
				if !ok {
					continue
				}
				for _, dp := range sum.DataPoints {
					if v, ok := dp.Attributes.Value("http.route"); ok {
						routes[v.AsString()] = true
					}
				}
			}
		}
		assert.True(t, routes["/products/:id"])
		assert.True(t, routes[unmatchedRoute])
	})
}
