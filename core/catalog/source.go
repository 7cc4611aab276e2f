package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"levelcode/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// ErrMissing is returned when a catalog file does not exist in its source.
var ErrMissing = errors.New("catalog file not found")

// Source reads catalog files by name.
type Source interface {
	// ReadFile returns the full content of name.
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// Exists reports whether name is present.
	Exists(ctx context.Context, name string) (bool, error)
	// Describe returns a human readable location for logs.
	Describe() string
}

// NewSource builds the Source selected by cfg. store may be nil for the
// filesystem source.
func NewSource(cfg Config, store storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceFS, "":
		return NewFSSource(afero.NewOsFs(), cfg.Dir), nil
	case SourceBucket:
		if store == nil {
			return nil, fmt.Errorf("catalog source %q requires a storage client", cfg.Source)
		}
		return NewBucketSource(store, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// FSSource reads catalog files from a filesystem directory.
type FSSource struct {
	fs  afero.Fs
	dir string
}

// NewFSSource roots fs at dir. An empty dir uses fs as is.
func NewFSSource(fs afero.Fs, dir string) *FSSource {
	if dir != "" && dir != "." {
		fs = afero.NewBasePathFs(fs, dir)
	}
	return &FSSource{fs: fs, dir: dir}
}

func (s *FSSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *FSSource) Exists(_ context.Context, name string) (bool, error) {
	return afero.Exists(s.fs, name)
}

func (s *FSSource) Describe() string {
	return "fs:" + s.dir
}

// BucketSource reads catalog files from an object storage bucket.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource reads objects under prefix in bucket.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *BucketSource) object(name string) string {
	return path.Join(s.prefix, name)
}

func (s *BucketSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	objName := s.object(name)

	reader, err := s.client.GetObject(ctx, s.bucket, objName, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapObjectErr(objName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, wrapObjectErr(objName, err)
	}
	return data, nil
}

func (s *BucketSource) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.object(name), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNoSuchKey(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", s.object(name), err)
}

func (s *BucketSource) Describe() string {
	return "bucket:" + s.bucket + "/" + s.prefix
}

func wrapObjectErr(objName string, err error) error {
	if isNoSuchKey(err) {
		return fmt.Errorf("%w: %s", ErrMissing, objName)
	}
	return fmt.Errorf("failed to read object %s: %w", objName, err)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
