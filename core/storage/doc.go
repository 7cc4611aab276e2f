// Package storage provides an abstraction over S3-compatible object storage.
//
// It wraps the MinIO Go client so catalog files, names and level files can be
// served from a bucket instead of the local filesystem. The Client interface
// keeps the surface small enough to mock (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket preparation for `catalog push`.
//   - PutObject: uploads a validated catalog file.
//   - GetObject: streams a catalog file.
//   - StatObject: existence checks for integrity reports.
//   - ListObjects: lists the catalog prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	reader, err := client.GetObject(ctx, "levelcode", "catalog/catalog.yaml", minio.GetObjectOptions{})
package storage
