package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"levelcode/core/catalog"
	"levelcode/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFSSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/db/multi.txt", []byte(`"1": {"a":1}`), 0o644))

	src := catalog.NewFSSource(fs, "data")
	ctx := context.Background()

	data, err := src.ReadFile(ctx, "db/multi.txt")
	require.NoError(t, err)
	assert.Equal(t, `"1": {"a":1}`, string(data))

	ok, err := src.Exists(ctx, "db/multi.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = src.Exists(ctx, "db/none.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = src.ReadFile(ctx, "db/none.txt")
	assert.ErrorIs(t, err, catalog.ErrMissing)
	assert.Equal(t, "fs:data", src.Describe())
}

func TestBucketSource_ReadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "levelcode", "catalog/db/multi.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("content"))), nil)

		src := catalog.NewBucketSource(m, "levelcode", "catalog")
		data, err := src.ReadFile(ctx, "db/multi.txt")
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "levelcode", "catalog/db/none.txt", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		src := catalog.NewBucketSource(m, "levelcode", "catalog")
		_, err := src.ReadFile(ctx, "db/none.txt")
		assert.ErrorIs(t, err, catalog.ErrMissing)
	})

	t.Run("OtherError", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "levelcode", "db/x.txt", mock.Anything).
			Return(nil, errors.New("connection reset"))

		src := catalog.NewBucketSource(m, "levelcode", "")
		_, err := src.ReadFile(ctx, "db/x.txt")
		assert.ErrorContains(t, err, "connection reset")
		assert.NotErrorIs(t, err, catalog.ErrMissing)
	})
}

func TestBucketSource_Exists(t *testing.T) {
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "levelcode", "catalog/a.txt", mock.Anything).
		Return(minio.ObjectInfo{Key: "catalog/a.txt"}, nil)
	m.On("StatObject", mock.Anything, "levelcode", "catalog/b.txt", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	m.On("StatObject", mock.Anything, "levelcode", "catalog/c.txt", mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("timeout"))

	src := catalog.NewBucketSource(m, "levelcode", "catalog")
	ctx := context.Background()

	ok, err := src.Exists(ctx, "a.txt")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = src.Exists(ctx, "b.txt")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = src.Exists(ctx, "c.txt")
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := catalog.NewSource(catalog.Config{Source: catalog.SourceFS, Dir: "data"}, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &catalog.FSSource{}, src)

	_, err = catalog.NewSource(catalog.Config{Source: catalog.SourceBucket}, nil, "levelcode")
	assert.Error(t, err)

	src, err = catalog.NewSource(catalog.Config{Source: catalog.SourceBucket, Prefix: "catalog"}, new(mocks.Client), "levelcode")
	require.NoError(t, err)
	assert.Equal(t, "bucket:levelcode/catalog", src.Describe())

	_, err = catalog.NewSource(catalog.Config{Source: "ftp"}, nil, "")
	assert.Error(t, err)
}
