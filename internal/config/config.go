// Package config builds the configuration value object the commands pass
// down into the sync and backup flows. Values come from (in increasing
// precedence) defaults, an optional seratosync.yaml config file, and
// environment variables; command flags override on top at the call site.
// No other package reads ambient configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSourceMusic is the fallback music root for the sync flow.
const DefaultSourceMusic = "/Users/berrio/Music"

// ErrMissingKey is returned (wrapped with the key name) when a required
// value is not set.
var ErrMissingKey = errors.New("required configuration value is not set")

// Config holds every value the flows consume.
type Config struct {
	// Source is the backup flow's library metadata directory (the
	// _Serato_ folder to export). Required by backup only.
	Source string

	// Target is the destination drive's mount point. Required by both
	// flows.
	Target string

	// SourceMusic is the sync flow's music root; _Serato_ lives directly
	// under it.
	SourceMusic string

	// CratePrefix is prepended to synced crate file names on the
	// destination.
	CratePrefix string
}

// keys are the configuration keys, also accepted as environment variables
// in either case (the original tooling used lowercase .env names).
var keys = []string{"source", "target", "source_music", "crate_prefix"}

// Load reads configuration from the environment and, if present, a
// seratosync.yaml file in the working directory or $HOME.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("source_music", DefaultSourceMusic)
	v.SetDefault("crate_prefix", "")

	v.SetConfigName("seratosync")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	for _, key := range keys {
		_ = v.BindEnv(key, strings.ToUpper(key), key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		Source:      v.GetString("source"),
		Target:      v.GetString("target"),
		SourceMusic: v.GetString("source_music"),
		CratePrefix: v.GetString("crate_prefix"),
	}, nil
}

// ValidateSync checks the values the sync flow needs.
func (c *Config) ValidateSync() error {
	if c.Target == "" {
		return fmt.Errorf("%w: target", ErrMissingKey)
	}
	if c.SourceMusic == "" {
		return fmt.Errorf("%w: source_music", ErrMissingKey)
	}
	return nil
}

// ValidateBackup checks the values the backup flow needs.
func (c *Config) ValidateBackup() error {
	if c.Source == "" {
		return fmt.Errorf("%w: source", ErrMissingKey)
	}
	if c.Target == "" {
		return fmt.Errorf("%w: target", ErrMissingKey)
	}
	return nil
}
