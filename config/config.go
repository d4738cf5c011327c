package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rgeraads/cityclock/clock"
	"github.com/rgeraads/cityclock/registry"
)

// City represents a clock configuration for a city
type City struct {
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// Config represents the optional seed-file contents
type Config struct {
	Cities []City `yaml:"cities"`
}

// DefaultPath returns the path to the seed file, ~/.config/cityclock.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "cityclock.yaml"), nil
}

// Load reads the seed file at the given path. A missing file is not an
// error: it returns (nil, nil) and the caller falls back to the built-in
// seed. The file is never created or written — the city set is session
// state only.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every entry has a name and a recognized timezone
func (c *Config) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("no cities configured")
	}

	for i, city := range c.Cities {
		if city.Name == "" {
			return fmt.Errorf("city at index %d has no name", i)
		}
		if city.Timezone == "" {
			return fmt.Errorf("city %q has no timezone", city.Name)
		}
		if _, err := clock.LoadZone(city.Timezone); err != nil {
			return fmt.Errorf("city %q: %w", city.Name, err)
		}
	}

	return nil
}

// Seed converts the config into registry seed entries
func (c *Config) Seed() []registry.City {
	seed := make([]registry.City, 0, len(c.Cities))
	for _, city := range c.Cities {
		seed = append(seed, registry.City{Name: city.Name, Timezone: city.Timezone})
	}
	return seed
}
