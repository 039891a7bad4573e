package contact

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the form relay, read from the
// environment.
type Config struct {
	// Endpoint is the form-handling URL. Empty means not configured.
	Endpoint string `env:"LANDING_FORM_ENDPOINT"`
	// Timeout bounds a single dispatch. Zero means no timeout.
	Timeout time.Duration `env:"LANDING_FORM_TIMEOUT" envDefault:"0s"`
	// NotifyFor is how long a notification stays up before auto-hiding.
	NotifyFor time.Duration `env:"LANDING_FORM_NOTIFY_FOR" envDefault:"8s"`
}

// LoadConfig loads Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Configured reports whether an endpoint is set.
func (c Config) Configured() bool {
	return c.Endpoint != ""
}
