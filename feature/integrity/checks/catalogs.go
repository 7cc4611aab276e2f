package checks

import (
	"context"
	"sort"
	"sync"

	"levelcode/core/catalog"
	"levelcode/core/extract"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// CatalogReport is the extraction result of one mode's catalog file.
type CatalogReport struct {
	Mode   string        `json:"mode"`
	File   string        `json:"file"`
	Status string        `json:"status"`
	Stats  extract.Stats `json:"stats"`
	Error  string        `json:"error,omitempty"`
}

// CatalogsReport summarizes every locally served catalog.
type CatalogsReport struct {
	Healthy  bool            `json:"healthy"`
	Catalogs []CatalogReport `json:"catalogs"`
}

// CheckCatalogs extracts every local mode's catalog file and reports how many
// entries parsed, were dropped or were duplicated. Catalogs are read fresh,
// bypassing the serving cache.
func CheckCatalogs(ctx context.Context, src catalog.Source, manifest *catalog.Manifest, logger *zap.Logger) *CatalogsReport {
	ex := extract.New(logger)
	files := manifest.CatalogFiles()

	var (
		mu      sync.Mutex
		reports = make([]CatalogReport, 0, len(files))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for mode, file := range files {
		mode, file := mode, file
		g.Go(func() error {
			r := CatalogReport{Mode: mode, File: file, Status: StatusOK}

			data, err := src.ReadFile(ctx, file)
			if err != nil {
				r.Status = StatusError
				r.Error = err.Error()
			} else {
				_, r.Stats = ex.Extract(string(data))
				switch {
				case r.Stats.Entries == 0:
					r.Status = StatusError
					r.Error = "no entries"
				case r.Stats.Dropped > 0 || r.Stats.Duplicates > 0:
					r.Status = StatusWarning
				}
			}

			mu.Lock()
			reports = append(reports, r)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(reports, func(i, j int) bool { return reports[i].Mode < reports[j].Mode })

	report := &CatalogsReport{Healthy: true, Catalogs: reports}
	for _, r := range reports {
		if r.Status == StatusError {
			report.Healthy = false
		}
	}
	return report
}
