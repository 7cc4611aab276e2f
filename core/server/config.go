package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ShutdownSeconds bounds graceful shutdown.
	ShutdownSeconds int `mapstructure:"shutdown_seconds" default:"10"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks the port is set.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port is required")
	}
	return nil
}
