package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing(t *testing.T) {
	t.Run("disabled tracing passes through", func(t *testing.T) {
		router := newEngine(Tracing(TracingConfig{Enabled: false}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("names span after route and tags request id", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

		router := gin.New()
		router.Use(RequestID(), Tracing(TracingConfig{ServiceName: "storefront", Enabled: true, TracerProvider: tp}), SpanEnricher())
		router.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
		req.Header.Set(RequestIDHeader, "trace-req")
		router.ServeHTTP(httptest.NewRecorder(), req)
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 2)

		assert.Contains(t, spans[0].Name(), "/orders/:id")
		found := false
		for _, kv := range spans[0].Attributes() {
			if string(kv.Key) == "request_id" {
				found = true
				assert.Equal(t, "trace-req", kv.Value.AsString())
			}
		}
		assert.True(t, found)
		assert.Equal(t, codes.Error, spans[1].Status().Code)
	})
}
