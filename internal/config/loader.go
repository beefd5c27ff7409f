package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "quotes.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvMaxPages  = "QUOTES_MAX_PAGES"
	EnvDelay     = "QUOTES_DELAY"
	EnvTimeout   = "QUOTES_TIMEOUT"
	EnvUserAgent = "QUOTES_USER_AGENT"
	EnvWorkers   = "QUOTES_WORKERS"
	EnvFetcher   = "QUOTES_FETCHER"
	EnvOutputDir = "QUOTES_OUTPUT_DIR"
)

// Load reads a YAML configuration file on top of the defaults. Keys the
// file leaves out keep their default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile returns the configuration file to load:
//  1. configPath, if given (ErrConfigNotFound when it does not exist)
//  2. quotes.yaml in the current directory
//  3. quotes-go/config.yaml in the XDG config directories
//
// It returns "" with a nil error when no file was requested or found.
func FindConfigFile(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return configPath, nil
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}

	if p, err := xdg.SearchConfigFile(XDGConfigFile()); err == nil {
		return p, nil
	}
	return "", nil
}

// XDGConfigFile is the config file path relative to an XDG config directory.
func XDGConfigFile() string {
	return filepath.Join(AppName, "config.yaml")
}

// ApplyEnv overrides cfg with the QUOTES_* variables that lookup reports as
// set. os.LookupEnv is the usual lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxPages); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxPages, err)
		}
		cfg.MaxPages = n
	}
	if v, ok := lookup(EnvDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelay, err)
		}
		cfg.Delay = d
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(EnvUserAgent); ok {
		cfg.UserAgent = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvFetcher); ok {
		cfg.Fetcher = v
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.Output.Dir = v
	}
	return nil
}

// Marshal renders cfg as YAML, the format Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
