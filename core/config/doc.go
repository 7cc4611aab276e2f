// Package config loads the application configuration.
//
// Values come from an optional .env file and from environment variables,
// using Viper with nested keys mapped from upper snake case
// (CATALOG_SOURCE -> catalog.source). Defaults are declared next to each
// field with a `default:"..."` struct tag.
//
// # Sections
//
//   - Server: listen port, API key, shutdown bound
//   - Storage: S3/MinIO credentials and the catalog bucket
//   - Log: level and format
//   - Database: driver and connection for custom levels
//   - Catalog: fs or bucket source and the manifest name
//   - Remote: code search backend, license key and retry policy
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
