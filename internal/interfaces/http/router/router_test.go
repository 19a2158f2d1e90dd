package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "/", r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/api"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	var order []string
	group := NewDomainGroup("things", "/things").Use(func(c *gin.Context) {
		order = append(order, "mw")
		c.Next()
	})
	group.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") })
	group.POST("", func(c *gin.Context) { c.String(http.StatusCreated, "create") })
	group.PUT("/:id", func(c *gin.Context) { c.String(http.StatusOK, "put "+c.Param("id")) })
	group.PATCH("/:id", func(c *gin.Context) { c.String(http.StatusOK, "patch "+c.Param("id")) })
	group.DELETE("/:id", func(c *gin.Context) { c.String(http.StatusOK, "delete "+c.Param("id")) })
	sub := group.Group("parts", "/:id/parts")
	sub.GET("", func(c *gin.Context) { c.String(http.StatusOK, "parts of "+c.Param("id")) })

	r.Register(group).Setup()

	assert.Equal(t, "things", group.Name())
	assert.Equal(t, "/things", group.Prefix())

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/things", http.StatusOK, "list"},
		{http.MethodPost, "/things", http.StatusCreated, "create"},
		{http.MethodPut, "/things/1", http.StatusOK, "put 1"},
		{http.MethodPatch, "/things/2", http.StatusOK, "patch 2"},
		{http.MethodDelete, "/things/3", http.StatusOK, "delete 3"},
		{http.MethodGet, "/things/4/parts", http.StatusOK, "parts of 4"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
	assert.Len(t, order, len(tests))
}
