package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"photodrop/internal/config"
	"photodrop/internal/core/port"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

var _ port.PhotoStorage = (*Adapter)(nil)

// NewAdapter returns Adapter, creating the bucket if it does not exist yet
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Put stores the photo bytes under the given key
func (a *Adapter) Put(ctx context.Context, storageKey string, data []byte, contentType string) error {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}

	_, err := a.client.PutObject(ctx, a.config.BucketName, storageKey, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Info("object stored",
		slog.String("storageKey", storageKey),
		slog.Int("size", len(data)))

	return nil
}

// GeneratePresignedURLForDownload generates a presigned GET url for the photo
func (a *Adapter) GeneratePresignedURLForDownload(ctx context.Context, storageKey string) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, storageKey, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.DownloadSignedURLDuration)

	return presignedURL.String(), &expiresAt, nil
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, storageKey string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, storageKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("storageKey", storageKey),
		slog.String("bucket", a.config.BucketName))

	return nil
}
