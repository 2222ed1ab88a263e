// Package config loads shade settings from a YAML file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/shade/internal/scene"
)

const (
	// EnvBackend overrides the backend setting.
	EnvBackend = "SHADE_BACKEND"
	// EnvOutput overrides the output setting.
	EnvOutput = "SHADE_OUTPUT"
	// EnvPlugin overrides the plugin setting.
	EnvPlugin = "SHADE_PLUGIN"

	// DefaultBackend is used when nothing else is configured.
	DefaultBackend = "terminal"
)

// Config holds everything a generate run needs besides the primary colour.
type Config struct {
	Backend string       `yaml:"backend"`
	Output  string       `yaml:"output"`
	Plugin  string       `yaml:"plugin"`
	Layout  scene.Layout `yaml:"layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: DefaultBackend,
		Layout:  scene.DefaultLayout(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/shade/config.yaml (or the platform
// equivalent). It returns "" if no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shade", "config.yaml")
}

// Load reads path over the defaults. When optional is true a missing file
// is not an error.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables read via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvPlugin); v != "" {
		c.Plugin = v
	}
}

// Validate checks the backend name is set and the layout is usable.
func (c Config) Validate() error {
	if c.Backend == "" {
		return errors.New("backend must not be empty")
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
