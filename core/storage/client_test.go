package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"locale-manager/core/storage"
	"locale-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "locales",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "locales").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "locales", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "locales").Return(false, nil)
		client.On("MakeBucket", ctx, "locales", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "locales", "eu-west-1"))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "locales").Return(false, errors.New("unreachable"))

		err := storage.EnsureBucket(ctx, client, "locales", "")
		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestConfig_HostAndTimeout(t *testing.T) {
	cfg := storage.Config{Endpoint: "https://s3.example.com"}
	assert.Equal(t, "s3.example.com", cfg.Host())
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	cfg = storage.Config{Endpoint: "minio:9000", TimeoutSeconds: 5}
	assert.Equal(t, "minio:9000", cfg.Host())
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}
