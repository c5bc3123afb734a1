package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/roster/internal/engine"
	"github.com/rshade/roster/internal/fetch"
)

// Batch size bounds: the source API caps single-request batches, and the
// table view is not virtualized, so very large batches are rejected.
const (
	MinResults  = 1
	MaxResults  = 5000
	MinPageSize = 1
	MaxPageSize = 100
)

// Validation errors.
var (
	ErrInvalidResults  = fmt.Errorf("results must be between %d and %d", MinResults, MaxResults)
	ErrInvalidPageSize = fmt.Errorf("page_size must be between %d and %d", MinPageSize, MaxPageSize)
)

// APIConfig controls the record source.
type APIConfig struct {
	// URL is the user batch endpoint.
	URL string `yaml:"url"`

	// Results is the batch size requested per fetch.
	Results int `yaml:"results"`
}

// UIConfig controls the table view.
type UIConfig struct {
	// PageSize is the number of rows per page.
	PageSize int `yaml:"page_size"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full application configuration, layered as defaults, then
// an optional YAML file, then ROSTER_* environment overrides.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			URL:     fetch.DefaultBaseURL,
			Results: fetch.DefaultResults,
		},
		UI: UIConfig{
			PageSize: engine.DefaultPageSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from the YAML file at path layered over
// the defaults, then applies environment overrides. A missing file is not
// an error when path is empty; an explicitly given path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	} else if data, err := os.ReadFile(defaultPath()); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// defaultPath is the conventional config location under the user's home.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.roster.yaml"
}

// applyEnv layers ROSTER_* environment variables over the current values.
func (c *Config) applyEnv() {
	if v := os.Getenv("ROSTER_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("ROSTER_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.Results = n
		}
	}
	if v := os.Getenv("ROSTER_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.PageSize = n
		}
	}
	if v := os.Getenv("ROSTER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROSTER_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("ROSTER_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate checks value bounds after all layers have been applied.
func (c Config) Validate() error {
	if c.API.URL == "" {
		return errors.New("api.url cannot be empty")
	}
	if c.API.Results < MinResults || c.API.Results > MaxResults {
		return ErrInvalidResults
	}
	if c.UI.PageSize < MinPageSize || c.UI.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}
