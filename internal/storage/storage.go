package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultPresignedURLExpiry is used when a caller passes a non-positive expiry.
const DefaultPresignedURLExpiry = 15 * time.Minute

// ErrNotConfigured is returned by the disabled storage used when no bucket is set.
var ErrNotConfigured = errors.New("object storage is not configured")

// ObjectStorage holds scanned InBody report images. Clients upload and
// download through presigned URLs so image bytes never pass through the API.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// Disabled answers every call with ErrNotConfigured.
type Disabled struct{}

func (Disabled) PresignUpload(context.Context, string, string, time.Duration) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) PresignDownload(context.Context, string, time.Duration) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) DeleteObject(context.Context, string) error {
	return ErrNotConfigured
}
