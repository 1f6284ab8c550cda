package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspmatch/partition"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	cfg, err := LoadFromReader("yaml", []byte(""))
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Processes)
	require.Equal(t, "block", cfg.PartitionStrategy)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.TelemetryEnabled)
}

func TestLoadFromReader_OverridesDefaults(t *testing.T) {
	yaml := []byte("processes: 4\npartition_strategy: cyclic\nlog_level: debug\ntelemetry_enabled: true\n")
	cfg, err := LoadFromReader("yaml", yaml)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Processes)
	require.Equal(t, "cyclic", cfg.PartitionStrategy)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.TelemetryEnabled)
}

func TestValidate_RejectsZeroProcesses(t *testing.T) {
	cfg := &Config{Processes: 0, PartitionStrategy: "block", LogLevel: "info"}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownStrategy(t *testing.T) {
	cfg := &Config{Processes: 1, PartitionStrategy: "bogus", LogLevel: "info"}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := &Config{Processes: 1, PartitionStrategy: "block", LogLevel: "verbose"}
	require.Error(t, cfg.Validate())
}

func TestStrategy_ResolvesParsedValue(t *testing.T) {
	cfg := &Config{Processes: 1, PartitionStrategy: "cyclic", LogLevel: "info"}
	s, err := cfg.Strategy()
	require.NoError(t, err)
	require.Equal(t, partition.Cyclic, s)
}

func TestLoad_EmptyPathUsesDefaultsOnly(t *testing.T) {
	_, cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Processes)
}
