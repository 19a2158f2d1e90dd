package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewS3MediaStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3MediaStorage(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3MediaStorage(ctx, &config.StorageConfig{AccessKeyID: "k", SecretAccessKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("half a key pair returns error", func(t *testing.T) {
		_, err := NewS3MediaStorage(ctx, &config.StorageConfig{Bucket: "b", AccessKeyID: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set together")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3MediaStorage(ctx, &config.StorageConfig{
			Bucket:          "shop-media",
			AccessKeyID:     "k",
			SecretAccessKey: "s",
			Region:          "ap-south-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "shop-media", s.GetBucket())
	})
}

func TestS3MediaStorage_ObjectURL(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{
			name: "aws virtual hosted",
			cfg:  config.StorageConfig{Bucket: "shop", Region: "ap-south-1"},
			want: "https://shop.s3.ap-south-1.amazonaws.com/products/a.png",
		},
		{
			name: "path style endpoint",
			cfg:  config.StorageConfig{Bucket: "shop", Endpoint: "http://localhost:9000", UsePathStyle: true},
			want: "http://localhost:9000/shop/products/a.png",
		},
		{
			name: "endpoint without scheme",
			cfg:  config.StorageConfig{Bucket: "shop", Endpoint: "cdn.example.com"},
			want: "https://shop.cdn.example.com/products/a.png",
		},
		{
			name: "public url wins",
			cfg:  config.StorageConfig{Bucket: "shop", Endpoint: "http://localhost:9000", PublicURL: "https://img.example.com/"},
			want: "https://img.example.com/products/a.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.AccessKeyID, tt.cfg.SecretAccessKey = "k", "s"
			s, err := NewS3MediaStorage(ctx, &tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.ObjectURL("/products/a.png"))
		})
	}
}

func TestS3MediaStorage_Upload(t *testing.T) {
	var (
		mu        sync.Mutex
		gotPath   string
		gotType   string
		gotBody   string
		gotMethod string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotMethod, gotPath, gotType, gotBody = r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(body)
		mu.Unlock()
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, err := NewS3MediaStorage(context.Background(), &config.StorageConfig{
		Bucket:          "shop",
		Endpoint:        server.URL,
		UsePathStyle:    true,
		AccessKeyID:     "k",
		SecretAccessKey: "s",
	}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), "products/a.png", strings.NewReader("pngbytes"), 8, "image/png")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/shop/products/a.png", url)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/shop/products/a.png", gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.Contains(t, gotBody, "pngbytes")
}

func TestS3MediaStorage_Upload_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`))
	}))
	defer server.Close()

	s, err := NewS3MediaStorage(context.Background(), &config.StorageConfig{
		Bucket: "shop", Endpoint: server.URL, UsePathStyle: true, AccessKeyID: "k", SecretAccessKey: "s",
	})
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), "", strings.NewReader("x"), 1, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key is required")

	_, err = s.Upload(context.Background(), "products/a.png", strings.NewReader("x"), 1, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}
