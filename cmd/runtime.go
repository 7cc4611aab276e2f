package cmd

import (
	"context"
	"fmt"

	"levelcode/core/catalog"
	"levelcode/core/config"
	"levelcode/core/database"
	"levelcode/core/logger"
	"levelcode/core/storage"
	"levelcode/feature/integrity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the components every command builds from the configuration.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Client
	source   catalog.Source
	manifest *catalog.Manifest
	names    map[string]string
}

// bootstrap loads the configuration, creates the logger and opens the
// catalog source. The storage client is only created for the bucket source.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if cfg.Catalog.Source == catalog.SourceBucket {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.store = store
	}

	src, err := catalog.NewSource(cfg.Catalog, rt.store, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	rt.source = src

	return rt, nil
}

// loadManifest reads the catalog manifest and the display names. An
// unusable names file is logged and the inline names still apply.
func (rt *runtime) loadManifest(ctx context.Context) error {
	m, err := catalog.LoadManifest(ctx, rt.source, rt.cfg.Catalog.Manifest)
	if err != nil {
		return fmt.Errorf("failed to load manifest from %s: %w", rt.source.Describe(), err)
	}
	rt.manifest = m

	names, err := m.LoadNames(ctx, rt.source)
	if err != nil {
		rt.logger.Warn("Display names unavailable", zap.Error(err))
	}
	rt.names = names

	return nil
}

// connectDB opens the custom level store. A failed connection is logged and
// the commands continue without it.
func (rt *runtime) connectDB() *gorm.DB {
	conn, err := database.Connect(rt.cfg.Database)
	if err != nil {
		rt.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	rt.logger.Info("Connected to level database", zap.String("driver", rt.cfg.Database.Driver))
	return conn
}

func (rt *runtime) integritySources() integrity.Sources {
	return integrity.Sources{
		Source:       rt.source,
		Manifest:     rt.manifest,
		ManifestName: rt.cfg.Catalog.Manifest,
	}
}

func (rt *runtime) integrityBucket() integrity.Bucket {
	return integrity.Bucket{
		Client: rt.store,
		Name:   rt.cfg.Storage.Bucket,
		Region: rt.cfg.Storage.Region,
	}
}
