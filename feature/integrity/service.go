package integrity

import (
	"context"
	"errors"

	"levelcode/core/catalog"
	"levelcode/core/storage"
	"levelcode/feature/integrity/checks"
	"levelcode/feature/levels"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoBucket is returned by the bucket check when catalogs are read from the filesystem.
var ErrNoBucket = errors.New("catalog source is not a bucket")

// Sources locates the catalog files being checked.
type Sources struct {
	Source       catalog.Source
	Manifest     *catalog.Manifest
	ManifestName string
}

// Bucket is the object storage holding catalogs. Client is nil for the fs source.
type Bucket struct {
	Client storage.Client
	Name   string
	Region string
}

// Service handles integrity checks.
type Service struct {
	sources Sources
	bucket  Bucket
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(sources Sources, bucket Bucket, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sources: sources,
		bucket:  bucket,
		db:      db,
		logger:  logger,
	}
}

// CheckSources reports manifest files missing from the catalog source.
func (s *Service) CheckSources(ctx context.Context) (*checks.SourcesReport, error) {
	return checks.CheckSources(ctx, s.sources.Source, s.sources.ManifestName, s.sources.Manifest)
}

// CheckBucket reports whether the catalog bucket exists, creating it when fix is set.
func (s *Service) CheckBucket(ctx context.Context, fix bool) (*checks.BucketReport, error) {
	if s.bucket.Client == nil {
		return nil, ErrNoBucket
	}
	return checks.CheckBucket(ctx, s.bucket.Client, s.bucket.Name, s.bucket.Region, fix, s.logger)
}

// CheckCatalogs extracts every local catalog and reports its statistics.
func (s *Service) CheckCatalogs(ctx context.Context) *checks.CatalogsReport {
	if s.sources.Manifest == nil {
		return &checks.CatalogsReport{Healthy: false, Catalogs: []checks.CatalogReport{}}
	}
	return checks.CheckCatalogs(ctx, s.sources.Source, s.sources.Manifest, s.logger.Named("extract"))
}

// CheckSchema compares the custom level table with its model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, levels.CustomLevel{})
}

// CheckAll runs every check and collects the reports by name. A failing
// check is reported in place; it does not stop the others.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if r, err := s.CheckSources(ctx); err != nil {
		report["sources"] = errorEntry(err)
	} else {
		report["sources"] = r
	}

	if s.bucket.Client != nil {
		if r, err := s.CheckBucket(ctx, false); err != nil {
			report["bucket"] = errorEntry(err)
		} else {
			report["bucket"] = r
		}
	}

	report["catalogs"] = s.CheckCatalogs(ctx)

	if r, err := s.CheckSchema(); err != nil {
		report["schema"] = errorEntry(err)
	} else {
		report["schema"] = r
	}

	return report
}

func errorEntry(err error) map[string]any {
	return map[string]any{"status": checks.StatusError, "error": err.Error()}
}
