package aws

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	httpclient "github.com/marketplace/invoicing/internal/client/http"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/logger"
)

// ObjectPutter is the part of the S3 API the artifact store uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ArtifactStoreConfig configures where artifacts are written and how their URLs are built.
type S3ArtifactStoreConfig struct {
	Bucket string
	Region string
	// PublicBaseURL is prepended to keys, for buckets fronted by a CDN.
	PublicBaseURL string
}

// S3ArtifactStore stores rendered invoices in S3.
type S3ArtifactStore struct {
	client ObjectPutter
	config S3ArtifactStoreConfig
	retry  *httpclient.RetryConfig
}

var _ interfaces.ArtifactStore = (*S3ArtifactStore)(nil)

// NewS3ArtifactStore creates an S3 store from the shared AWS configuration.
func NewS3ArtifactStore(ctx context.Context, config S3ArtifactStoreConfig) (*S3ArtifactStore, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config.Region == "" {
		config.Region = cfg.Region
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Emulators such as LocalStack only serve path-style requests.
		o.UsePathStyle = cfg.BaseEndpoint != nil
	})
	return NewS3ArtifactStoreWithClient(client, config), nil
}

// NewS3ArtifactStoreWithClient wraps an existing S3 API.
func NewS3ArtifactStoreWithClient(client ObjectPutter, config S3ArtifactStoreConfig) *S3ArtifactStore {
	return &S3ArtifactStore{
		client: client,
		config: config,
		retry:  httpclient.DefaultRetryConfig(),
	}
}

// WithRetryConfig overrides the retry policy.
func (s *S3ArtifactStore) WithRetryConfig(config *httpclient.RetryConfig) *S3ArtifactStore {
	s.retry = config
	return s
}

// Put uploads body under key and returns the object URL.
func (s *S3ArtifactStore) Put(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	err := httpclient.Retry(ctx, s.retry, "s3.put_object", func() error {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.config.Bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(body),
			ContentType:   aws.String(contentType),
			ContentLength: aws.Int64(int64(len(body))),
		})
		return err
	})
	if err != nil {
		logger.Error("Failed to upload artifact to S3",
			zap.String("bucket", s.config.Bucket),
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload %s to s3: %w", key, err)
	}

	return s.ObjectURL(key), nil
}

// ObjectURL returns the URL an artifact stored under key is served from.
func (s *S3ArtifactStore) ObjectURL(key string) string {
	if s.config.PublicBaseURL != "" {
		return strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.Bucket, s.config.Region, key)
}
