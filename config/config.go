// Package config loads the quote calculator settings from a YAML file, with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "QUOTE_CONFIG"
	EnvStaticDir  = "QUOTE_STATIC_DIR"
	EnvDebug      = "QUOTE_DEBUG"

	DefaultConfigPath = "quote.yaml"
)

// Config holds the display and runtime settings. Rates are not configurable.
type Config struct {
	Title             string `yaml:"title"`
	Company           string `yaml:"company"`
	FilePrefix        string `yaml:"file_prefix"`
	DefaultTravelMode string `yaml:"default_travel_mode"`
	StaticDir         string `yaml:"static_dir"`
	Debug             bool   `yaml:"debug"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Title:             "Training Price Calculation",
		FilePrefix:        "training-quote",
		DefaultTravelMode: "itemized",
		StaticDir:         "./static",
	}
}

// LoadEnv loads a .env file into the process environment. A missing file is
// not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the YAML config at path (or $QUOTE_CONFIG, or quote.yaml) over
// the defaults and then applies environment overrides. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvStaticDir); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DefaultTravelMode {
	case "itemized", "flat":
	case "":
		c.DefaultTravelMode = "itemized"
	default:
		return fmt.Errorf("default_travel_mode must be itemized or flat, got %q", c.DefaultTravelMode)
	}
	if c.Title == "" {
		c.Title = Default().Title
	}
	if c.FilePrefix == "" {
		c.FilePrefix = Default().FilePrefix
	}
	return nil
}
