package catalog

import (
	"context"
	"sync"
	"time"

	"levelcode/core/extract"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes catalogs by identifier. A catalog is built on first access
// and kept for the lifetime of the process; there is no eviction.
type Cache struct {
	source    Source
	extractor *extract.Extractor
	logger    *zap.Logger

	mu       sync.RWMutex
	catalogs map[string]*Catalog
	sf       singleflight.Group
}

// NewCache creates a cache reading catalog files from source.
func NewCache(source Source, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		source:    source,
		extractor: extract.New(logger.Named("extract")),
		logger:    logger,
		catalogs:  make(map[string]*Catalog),
	}
}

// Get returns the catalog id built from file. If the file cannot be read the
// result is an empty catalog that is not memoized, so a later call retries.
func (c *Cache) Get(ctx context.Context, id, file string) *Catalog {
	if cat, ok := c.cached(id); ok {
		return cat
	}

	v, _, _ := c.sf.Do(id, func() (interface{}, error) {
		if cat, ok := c.cached(id); ok {
			return cat, nil
		}

		cat, err := c.build(ctx, id, file)
		if err != nil {
			c.logger.Error("Catalog unavailable, serving empty catalog",
				zap.String("catalog", id),
				zap.String("file", file),
				zap.String("source", c.source.Describe()),
				zap.Error(err),
			)
			return Empty(id), nil
		}

		c.mu.Lock()
		c.catalogs[id] = cat
		c.mu.Unlock()
		return cat, nil
	})

	return v.(*Catalog)
}

// Loaded reports whether id has been built and memoized.
func (c *Cache) Loaded(id string) bool {
	_, ok := c.cached(id)
	return ok
}

// Preload builds every catalog in files (id -> file) concurrently.
func (c *Cache) Preload(ctx context.Context, files map[string]string) {
	start := time.Now()
	var g errgroup.Group
	g.SetLimit(4)

	for id, file := range files {
		id, file := id, file
		g.Go(func() error {
			c.Get(ctx, id, file)
			return nil
		})
	}
	_ = g.Wait()

	c.logger.Info("Catalogs preloaded",
		zap.Int("catalogs", len(files)),
		zap.Duration("took", time.Since(start)),
	)
}

func (c *Cache) cached(id string) (*Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.catalogs[id]
	return cat, ok
}

func (c *Cache) build(ctx context.Context, id, file string) (*Catalog, error) {
	data, err := c.source.ReadFile(ctx, file)
	if err != nil {
		return nil, err
	}

	entries, stats := c.extractor.Extract(string(data))
	c.logger.Info("Catalog loaded",
		zap.String("catalog", id),
		zap.Int("entries", stats.Entries),
		zap.Int("dropped", stats.Dropped),
		zap.Int("duplicates", stats.Duplicates),
	)
	return New(id, entries, stats), nil
}
