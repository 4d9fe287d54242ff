// Package storage is the object-storage side of file attachments: the
// bytes live here, the metadata rows live in Postgres.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/piksel-lt/orderdesk/internal/platform/config"
)

// ObjectStore stores and removes attachment objects and renders their
// public URLs.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type s3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store builds an ObjectStore backed by an S3-compatible service.
// S3Endpoint is optional; when set (MinIO, localstack) it overrides the
// AWS endpoint resolution.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (ObjectStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if publicURL == "" {
		if cfg.S3Endpoint != "" {
			publicURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return &s3Store{client: client, bucket: cfg.S3Bucket, publicURL: publicURL}, nil
}

func (s *s3Store) Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

func (s *s3Store) PublicURL(key string) string {
	return s.publicURL + "/" + key
}
