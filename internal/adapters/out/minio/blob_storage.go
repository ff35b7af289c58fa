// Package minio stores attachment files in an S3-compatible bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the externally reachable base of the object store,
	// e.g. https://files.example.pt. Empty means derive it from Endpoint.
	PublicURL string
}

type BlobStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewBlobStorage(cfg Config) (*BlobStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	return &BlobStorage{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// EnsureBucket creates the bucket when missing.
func (s *BlobStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *BlobStorage) Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// Remove deletes the object. Removing a missing object is not an error.
func (s *BlobStorage) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (s *BlobStorage) URL(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + "/" + url.PathEscape(s.bucket) + "/" + strings.Join(segments, "/")
}
