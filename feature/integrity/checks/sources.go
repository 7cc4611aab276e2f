package checks

import (
	"context"
	"fmt"

	"levelcode/core/catalog"
)

// SourcesReport lists the manifest files missing from the catalog source.
type SourcesReport struct {
	Source  string   `json:"source"`
	Checked int      `json:"checked"`
	Missing []string `json:"missing"`
}

// CheckSources verifies that the manifest and every file it references exist.
func CheckSources(ctx context.Context, src catalog.Source, manifestName string, manifest *catalog.Manifest) (*SourcesReport, error) {
	files := []string{manifestName}
	if manifest != nil {
		files = append(files, manifest.Files()...)
	}

	report := &SourcesReport{Source: src.Describe(), Missing: []string{}}
	seen := make(map[string]struct{}, len(files))
	for _, name := range files {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		report.Checked++

		ok, err := src.Exists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", name, err)
		}
		if !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	return report, nil
}
