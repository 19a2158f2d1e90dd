// Package storage provides object storage for uploaded media.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	infraconfig "github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

var _ catalogapp.MediaStorage = (*S3MediaStorage)(nil)

// S3MediaStorage stores product images in an S3-compatible bucket
// (AWS S3, MinIO, R2) and serves them from a public base URL.
type S3MediaStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// S3MediaStorageOption configures S3MediaStorage
type S3MediaStorageOption func(*S3MediaStorage)

// WithLogger sets the storage logger
func WithLogger(logger *zap.Logger) S3MediaStorageOption {
	return func(s *S3MediaStorage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewS3MediaStorage creates S3MediaStorage from configuration.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func NewS3MediaStorage(ctx context.Context, cfg *infraconfig.StorageConfig, opts ...S3MediaStorageOption) (*S3MediaStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if (cfg.AccessKeyID == "") != (cfg.SecretAccessKey == "") {
		return nil, errors.New("storage access key and secret key must be set together")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if endpoint != "" {
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	s := &S3MediaStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg, endpoint, region),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// publicBaseURL picks where stored objects are served from
func publicBaseURL(cfg *infraconfig.StorageConfig, endpoint, region string) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case endpoint != "" && cfg.UsePathStyle:
		return endpoint + "/" + cfg.Bucket
	case endpoint != "":
		u, err := url.Parse(endpoint)
		if err != nil {
			return endpoint + "/" + cfg.Bucket
		}
		return u.Scheme + "://" + cfg.Bucket + "." + u.Host
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *S3MediaStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating storage bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload writes the object and returns its public URL.
// The body is buffered so the SDK can sign and checksum a seekable payload.
func (s *S3MediaStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	buf := bytes.NewBuffer(make([]byte, 0, max(size, 0)))
	if _, err := io.Copy(buf, body); err != nil {
		return "", fmt.Errorf("failed to read upload body: %w", err)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug("Stored media object",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("size", buf.Len()),
	)
	return s.ObjectURL(key), nil
}

// ObjectURL returns the public URL of key
func (s *S3MediaStorage) ObjectURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}

// GetBucket returns the bucket name
func (s *S3MediaStorage) GetBucket() string {
	return s.bucket
}
