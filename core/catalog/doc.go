// Package catalog serves combination codes from catalog files.
//
// A catalog is the immutable lookup table produced by the extract package for
// one file. The Cache builds catalogs on first access and keeps them for the
// lifetime of the process; concurrent first accesses share a single build.
//
// # Keys
//
// Catalog files are keyed by identifiers joined with a single space, ordered
// by the mode's reference pool (not by selection order). Pool.Key builds that
// canonical form; Catalog.Lookup only does exact matching:
//
//	pool := catalog.NewPool([]string{"100", "200", "300"})
//	key := pool.Key([]string{"300", "100"}) // "100 300"
//	payload, err := cat.Lookup(key)
//	if errors.Is(err, catalog.ErrNotFound) { ... }
//
// # Sources
//
// Files are read through a Source: FSSource for a local directory (afero) or
// BucketSource for S3/MinIO. An unreadable file yields an empty catalog that
// is logged and not memoized.
//
// # Manifest
//
// The YAML manifest lists the modes (pool, selection range, file) plus the
// names file and the built-in levels file.
package catalog
