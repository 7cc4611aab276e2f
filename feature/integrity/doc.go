// Package integrity provides health checks for the catalog data and the
// custom level store.
//
// # Checks Provided
//
//   - Sources: the manifest and every file it references exist in the catalog source.
//   - Bucket: the catalog bucket exists (bucket source only, supports ?fix=true).
//   - Catalogs: every local catalog extracts, with entry, dropped and duplicate counts.
//   - Schema: the custom_levels table matches its gorm model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/sources : Runs the sources check.
//   - GET /integrity/bucket : Runs the bucket check.
//   - GET /integrity/catalogs : Runs the catalog check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
