package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"levelcode/core/catalog"
	"levelcode/core/database"
	"levelcode/core/logger"
	"levelcode/core/remote"
	"levelcode/core/server"
	"levelcode/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Each section is owned by the package that consumes it.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the custom level store.
	Database database.Config `mapstructure:"database"`
	// Catalog selects where catalog files are read from.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Remote holds configuration for the code search backend.
	Remote remote.Config `mapstructure:"remote"`
}

// LoadConfig loads configuration from the .env file in path and from
// environment variables.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine in production.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key in Viper
// with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set, even if empty, so AutomaticEnv sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
