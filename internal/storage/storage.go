package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotExist возвращается, когда объекта нет в хранилище
	ErrNotExist = errors.New("file does not exist")
	// ErrInvalidPath - имя выходит за пределы хранилища или пустое
	ErrInvalidPath = errors.New("invalid file path")
)

// Storage - хранилище файлов резюме
type Storage interface {
	// Save stores a file at the given path, overwriting an existing one
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get opens a file for reading; ErrNotExist if it is missing
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	Exists(ctx context.Context, path string) (bool, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration
type Config struct {
	Type            string // local, s3, cloudflare_r2, gcs
	BasePath        string // For local storage
	Bucket          string // For S3/R2/GCS
	Region          string // For S3
	AccessKey       string // For S3/R2
	SecretKey       string // For S3/R2
	Endpoint        string // For R2, MinIO or a GCS emulator
	CredentialsFile string // For GCS
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	case "gcs":
		return NewGCSStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
