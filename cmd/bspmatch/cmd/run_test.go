package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLogLevel(in), "input %q", in)
	}
}

func TestBuildDemoGraph_KnownTopologies(t *testing.T) {
	flagDemoSize = 6
	flagDemoProb = 0.5
	flagDemoSeed = 42
	flagDemoDegree = 3

	for _, topology := range []string{"complete", "path", "cycle", "star", "wheel", "random-sparse", "random-regular"} {
		flagDemo = topology
		g, err := buildDemoGraph()
		require.NoError(t, err, "topology %s", topology)
		require.Equal(t, uint64(6), g.NGlobal, "topology %s", topology)
		require.NotEmpty(t, g.Edges, "topology %s", topology)
	}
}

func TestBuildDemoGraph_UnknownTopology(t *testing.T) {
	flagDemo = "nonsense"
	_, err := buildDemoGraph()
	require.Error(t, err)
}
