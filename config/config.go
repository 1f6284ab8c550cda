// SPDX-License-Identifier: MIT
// Package: bspmatch/config
//
// Package config resolves a run's parameters (process count, partition
// strategy, log level, telemetry on/off) the same way the example
// pack's viper-backed CLI tools layer config: defaults, then an
// optional config file, then environment variables, each overriding
// the last. cmd/bspmatch's flags are bound on top of this as the final,
// highest-priority layer via viper's BindPFlag, so a flag always wins
// over the file and the file always wins over the built-in default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/katalvlaran/bspmatch/partition"
)

// Config holds the resolved parameters for one run of cmd/bspmatch.
type Config struct {
	Processes         int    `mapstructure:"processes"`
	PartitionStrategy string `mapstructure:"partition_strategy"`
	LogLevel          string `mapstructure:"log_level"`
	TelemetryEnabled  bool   `mapstructure:"telemetry_enabled"`
}

// setDefaults installs the built-in defaults, the lowest-priority
// layer: a single-process, block-partitioned, info-level run with
// telemetry off.
func setDefaults(v *viper.Viper) {
	v.SetDefault("processes", 1)
	v.SetDefault("partition_strategy", "block")
	v.SetDefault("log_level", "info")
	v.SetDefault("telemetry_enabled", false)
}

// Load resolves a Config from defaults, an optional config file at
// path (ignored if empty or not found), and environment variables
// prefixed BSPMATCH_ (e.g. BSPMATCH_PROCESSES=4). Flags are layered on
// top of the returned *viper.Viper by the caller before Unmarshal, so
// Load returns the Viper instance alongside the Config to let
// cmd/bspmatch bind its pflag set before finalizing.
func Load(path string) (*viper.Viper, *Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("bspmatch")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !errors.Is(err, fs.ErrNotExist) {
				return nil, nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

// LoadFromReader parses a config of the given viper format (e.g.
// "yaml") from content, defaults applied first. Used by tests that
// want a config file without touching the filesystem.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: parsing %s content: %w", configType, err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the resolved Config for values the engine could not
// otherwise act on.
func (c *Config) Validate() error {
	if c.Processes < 1 {
		return fmt.Errorf("processes must be >= 1, got %d", c.Processes)
	}
	if _, err := partition.ParseStrategy(c.PartitionStrategy); err != nil {
		return fmt.Errorf("partition_strategy: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug|info|warn|error, got %q", c.LogLevel)
	}
	return nil
}

// Strategy resolves PartitionStrategy into a partition.Strategy value.
// Validate having already run, the error here is unreachable on valid
// inputs and only surfaces if a caller mutated the Config after Load.
func (c *Config) Strategy() (partition.Strategy, error) {
	return partition.ParseStrategy(c.PartitionStrategy)
}
