package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// FetchMode selects how the page load orders its content requests
type FetchMode string

const (
	// FetchIndependent runs all four collection requests in parallel
	FetchIndependent FetchMode = "independent"
	// FetchGated only requests brands and projects once a homepage record exists,
	// and treats any failure in that chain as a missing homepage
	FetchGated FetchMode = "gated"
)

// UnmarshalText validates the mode name
func (m *FetchMode) UnmarshalText(text []byte) error {
	switch mode := FetchMode(strings.ToLower(strings.TrimSpace(string(text)))); mode {
	case FetchIndependent, FetchGated:
		*m = mode
		return nil
	case "":
		*m = FetchIndependent
		return nil
	default:
		return fmt.Errorf("unknown fetch mode %q", string(text))
	}
}

// Config holds all application configuration
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:":8080"`
	ContentURL     string        `env:"CONTENT_URL"`
	ContentTimeout time.Duration `env:"CONTENT_TIMEOUT" envDefault:"10s"`
	FetchMode      FetchMode     `env:"FETCH_MODE" envDefault:"independent"`
	OTelEndpoint   string        `env:"OTEL_ENDPOINT"`
	ServiceName    string        `env:"SERVICE_NAME" envDefault:"boco-landing"`
	Debug          bool          `env:"DEBUG"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that flags may have overridden after Load
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ServerAddr) == "" {
		errs = append(errs, errors.New("server address is required"))
	}

	raw := strings.TrimSpace(c.ContentURL)
	if raw == "" {
		errs = append(errs, errors.New("CONTENT_URL is required"))
	} else if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("CONTENT_URL %q must be an absolute http(s) url", raw))
	}

	if c.ContentTimeout < 0 {
		errs = append(errs, fmt.Errorf("CONTENT_TIMEOUT must not be negative, got %s", c.ContentTimeout))
	}

	switch c.FetchMode {
	case FetchIndependent, FetchGated:
	default:
		errs = append(errs, fmt.Errorf("unknown fetch mode %q", c.FetchMode))
	}

	return errors.Join(errs...)
}
