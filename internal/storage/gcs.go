package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage хранит резюме в бакете Google Cloud Storage
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage без CredentialsFile использует Application Default Credentials.
// Endpoint нужен только для эмулятора.
func NewGCSStorage(ctx context.Context, cfg Config) (*GCSStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required for GCS storage")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}

	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStorage{client: c, bucket: cfg.Bucket}, nil
}

func (s *GCSStorage) Close() error { return s.client.Close() }

func (s *GCSStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, reader); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to upload to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload to GCS: %w", err)
	}
	return nil
}

func (s *GCSStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(path).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to get from GCS: %w", err)
	}
	return r, nil
}

func (s *GCSStorage) Delete(ctx context.Context, path string) error {
	err := s.client.Bucket(s.bucket).Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete from GCS: %w", err)
	}
	return nil
}

func (s *GCSStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Object(path).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat GCS object: %w", err)
	}
	return true, nil
}

func (s *GCSStorage) GetSize(ctx context.Context, path string) (int64, error) {
	attrs, err := s.client.Bucket(s.bucket).Object(path).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return 0, ErrNotExist
		}
		return 0, fmt.Errorf("failed to get file info: %w", err)
	}
	return attrs.Size, nil
}
