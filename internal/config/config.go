package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable that overrides the config file's
// API key.
const EnvAPIKey = "MAPQUEST_API_KEY"

// ErrConfigNotFound is returned when an explicitly requested config file
// does not exist. The default config file is optional and its absence is not
// an error.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config holds parkscout settings.
type Config struct {
	// APIKey authenticates calls to the MapQuest places API.
	APIKey string `yaml:"api_key"`
	// CacheFile overrides the default request-cache location.
	CacheFile string `yaml:"cache_file"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/parkscout/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "parkscout", "config.yaml")
}

// DefaultCachePath returns the default request-cache location,
// $XDG_DATA_HOME/parkscout/cache.json.
func DefaultCachePath() string {
	return filepath.Join(xdg.DataHome, "parkscout", "cache.json")
}

// Load reads configuration from path, falling back to DefaultPath when path
// is empty. A missing default file yields an empty Config; a missing explicit
// file yields ErrConfigNotFound. The MAPQUEST_API_KEY environment variable,
// when set, overrides the file's api_key in either case.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if cfg.CacheFile == "" {
		cfg.CacheFile = DefaultCachePath()
	}
	return cfg, nil
}
