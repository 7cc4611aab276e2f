package remote

import "time"

// Config holds configuration for the code search backend.
type Config struct {
	// BaseURL is the backend root, e.g. http://host:3000.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:3000"`
	// LicenseKey is the activated license sent with code searches.
	LicenseKey string `mapstructure:"license_key" default:""`
	// DeviceID identifies this installation to the backend.
	DeviceID string `mapstructure:"device_id" default:""`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Attempts is the number of tries for transport failures.
	Attempts int `mapstructure:"attempts" default:"3"`
	// RetryDelayMs is the base delay between tries.
	RetryDelayMs int `mapstructure:"retry_delay_ms" default:"500"`
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the base delay between attempts.
func (c Config) RetryDelay() time.Duration {
	if c.RetryDelayMs < 0 {
		return 0
	}
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// Activated reports whether a license key is configured.
func (c Config) Activated() bool {
	return c.LicenseKey != ""
}
