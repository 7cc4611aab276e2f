package catalog

import (
	"context"
	"path"

	"levelcode/core/storage"
)

// Publish uploads the manifest and every file it references from src into
// bucket under prefix, creating the bucket first when it is missing. It
// returns the object names written.
func Publish(ctx context.Context, src Source, manifestName string, client storage.Client, bucket, region, prefix string) ([]string, error) {
	manifest, err := LoadManifest(ctx, src, manifestName)
	if err != nil {
		return nil, err
	}

	if _, err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return nil, err
	}

	files := append([]string{manifestName}, manifest.Files()...)
	seen := make(map[string]struct{}, len(files))
	uploaded := make([]string, 0, len(files))

	for _, name := range files {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		data, err := src.ReadFile(ctx, name)
		if err != nil {
			return uploaded, err
		}

		objName := path.Join(prefix, name)
		if err := storage.PutBytes(ctx, client, bucket, objName, data, contentType(name)); err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, objName)
	}

	return uploaded, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}
