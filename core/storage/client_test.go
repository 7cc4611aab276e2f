package storage_test

import (
	"context"
	"errors"
	"testing"

	"levelcode/core/storage"
	"levelcode/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"PlainEndpoint", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "levelcode"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"}},
		{"ZeroTimeout", storage.Config{Endpoint: "localhost:9000", TimeoutSeconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(true, nil)

		created, err := storage.EnsureBucket(ctx, m, "levelcode", "")
		assert.NoError(t, err)
		assert.False(t, created)
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "levelcode", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		created, err := storage.EnsureBucket(ctx, m, "levelcode", "eu-west-1")
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(false, errors.New("denied"))

		_, err := storage.EnsureBucket(ctx, m, "levelcode", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestPutBytes(t *testing.T) {
	m := new(mocks.Client)
	m.On("PutObject", mock.Anything, "levelcode", "catalog/a.txt",
		mock.AnythingOfType("*bytes.Reader"),
		int64(5),
		minio.PutObjectOptions{ContentType: "text/plain"},
	).Return(minio.UploadInfo{}, nil)

	err := storage.PutBytes(context.Background(), m, "levelcode", "catalog/a.txt", []byte("hello"), "text/plain")
	assert.NoError(t, err)
	m.AssertExpectations(t)
}
