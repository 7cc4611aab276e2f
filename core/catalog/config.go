package catalog

const (
	SourceFS     = "fs"
	SourceBucket = "bucket"
)

// Config holds configuration for catalog data files.
type Config struct {
	// Source selects where catalog files are read from (fs, bucket).
	Source string `mapstructure:"source" default:"fs"`
	// Dir is the catalog directory for the fs source.
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is the object prefix for the bucket source.
	Prefix string `mapstructure:"prefix" default:"catalog"`
	// Manifest is the manifest file name relative to the source root.
	Manifest string `mapstructure:"manifest" default:"catalog.yaml"`
}
