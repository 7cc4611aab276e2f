package catalog_test

import (
	"context"
	"errors"
	"testing"

	"levelcode/core/catalog"
	"levelcode/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func publishFixture(t *testing.T) catalog.Source {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"catalog.yaml":        testManifest,
		"db/plant_names.json": `{"200134":"Peashooter"}`,
		"db/levels.json":      `{"Level 1":{"a":1}}`,
		"db/multi_2_of_3.txt": `"200134 200143": {"i":"x","r":1,"e":"y"},`,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return catalog.NewFSSource(fs, "")
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	src := publishFixture(t)

	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "levelcode").Return(false, nil)
	m.On("MakeBucket", mock.Anything, "levelcode", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
	m.On("PutObject", mock.Anything, "levelcode", mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("minio.PutObjectOptions")).
		Return(minio.UploadInfo{}, nil)

	uploaded, err := catalog.Publish(ctx, src, "catalog.yaml", m, "levelcode", "us-east-1", "catalog")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"catalog/catalog.yaml",
		"catalog/db/plant_names.json",
		"catalog/db/levels.json",
		"catalog/db/multi_2_of_3.txt",
	}, uploaded)
	m.AssertNumberOfCalls(t, "PutObject", 4)
	m.AssertCalled(t, "PutObject", mock.Anything, "levelcode", "catalog/db/levels.json", mock.Anything, int64(len(`{"Level 1":{"a":1}}`)),
		minio.PutObjectOptions{ContentType: "application/json"})
}

func TestPublish_MissingFile(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "catalog.yaml", []byte(testManifest), 0o644))

	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "levelcode").Return(true, nil)
	m.On("PutObject", mock.Anything, "levelcode", "catalog.yaml", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	uploaded, err := catalog.Publish(ctx, catalog.NewFSSource(fs, ""), "catalog.yaml", m, "levelcode", "", "")
	assert.ErrorIs(t, err, catalog.ErrMissing)
	assert.Equal(t, []string{"catalog.yaml"}, uploaded)
}

func TestPublish_BucketFailure(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "levelcode").Return(false, errors.New("denied"))

	_, err := catalog.Publish(context.Background(), publishFixture(t), "catalog.yaml", m, "levelcode", "", "catalog")
	assert.ErrorContains(t, err, "denied")
	m.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_InvalidManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "catalog.yaml", []byte("modes: [{id: a}]"), 0o644))
	m := new(mocks.Client)

	_, err := catalog.Publish(context.Background(), catalog.NewFSSource(fs, ""), "catalog.yaml", m, "levelcode", "", "")
	assert.Error(t, err)
	m.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
}
