package catalog

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// MaxImageSize is the largest accepted product image upload
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MediaStorage stores uploaded objects and returns their public URL
type MediaStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// ImageUpload is a product image received from a multipart form
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageResponse carries the stored image location
type ImageResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// MediaService uploads product images to object storage
type MediaService struct {
	storage MediaStorage
	prefix  string
}

// NewMediaService creates a new MediaService writing under prefix
func NewMediaService(storage MediaStorage, prefix string) *MediaService {
	if prefix == "" {
		prefix = "products"
	}
	return &MediaService{storage: storage, prefix: strings.Trim(prefix, "/")}
}

// UploadProductImage validates and stores one image
func (s *MediaService) UploadProductImage(ctx context.Context, upload ImageUpload) (*ImageResponse, error) {
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, shared.InvalidInputError(fmt.Sprintf("Unsupported image type %q", upload.ContentType))
	}
	if upload.Size <= 0 || upload.Size > MaxImageSize {
		return nil, shared.InvalidInputError(fmt.Sprintf("Image must be between 1 byte and %d bytes", MaxImageSize))
	}

	key := path.Join(s.prefix, uuid.NewString()+ext)
	url, err := s.storage.Upload(ctx, key, upload.Body, upload.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}
	return &ImageResponse{URL: url, Key: key}, nil
}
