package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"alcyxob/workout-log/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewS3Storage_DisabledWithoutBucket(t *testing.T) {
	s, err := NewS3Storage(context.Background(), config.S3Config{}, zap.NewNop())
	require.NoError(t, err)

	_, err = s.PresignUpload(context.Background(), "k", "image/png", time.Minute)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, s.DeleteObject(context.Background(), "k"), ErrNotConfigured)
}

func TestS3Storage_PresignAgainstCustomEndpoint(t *testing.T) {
	s, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		BucketName:      "scans",
	}, zap.NewNop())
	require.NoError(t, err)

	raw, err := s.PresignUpload(context.Background(), "inbody/u/r/abc", "image/jpeg", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/scans/inbody/u/r/abc", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	raw, err = s.PresignDownload(context.Background(), "inbody/u/r/abc", 0)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "https://s3.example.com", endpointURL("s3.example.com", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://minio:9000", endpointURL("http://minio:9000", true))
}
