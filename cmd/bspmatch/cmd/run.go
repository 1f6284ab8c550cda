// SPDX-License-Identifier: MIT
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/bsp/emulator"
	"github.com/katalvlaran/bspmatch/edgeio"
	"github.com/katalvlaran/bspmatch/engine"
	"github.com/katalvlaran/bspmatch/graphgen"
	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/logging"
	"github.com/katalvlaran/bspmatch/partition"
	"github.com/katalvlaran/bspmatch/telemetry"

	"github.com/katalvlaran/bspmatch/config"
)

var (
	flagProcesses         int
	flagStdinProcessCount bool
	flagPartitionStrategy string
	flagLogLevel          string
	flagTelemetry         bool
	flagMetricsAddr       string
	flagTimeout           time.Duration
	flagRunID             string

	flagDemo       string
	flagDemoSize   int
	flagDemoSeed   int64
	flagDemoProb   float64
	flagDemoDegree int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a maximal matching from an edge list on stdin, or a generated demo graph",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&flagProcesses, "processes", 0, "number of BSP processes (0: read from stdin if --stdin-process-count, else config/default)")
	f.BoolVar(&flagStdinProcessCount, "stdin-process-count", false, "read P from a leading integer line on stdin, ahead of the edge list")
	f.StringVar(&flagPartitionStrategy, "partition-strategy", "", "vertex partition strategy: block or cyclic (default: config value, itself defaulting to block)")
	f.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, or error (default: config value, itself defaulting to info)")
	f.BoolVar(&flagTelemetry, "telemetry", false, "expose OpenTelemetry/Prometheus metrics over HTTP while running")
	f.StringVar(&flagMetricsAddr, "metrics-addr", ":9090", "address the /metrics endpoint listens on when --telemetry is set")
	f.DurationVar(&flagTimeout, "timeout", 0, "cancel the run if it has not finished after this duration (0: no timeout)")
	f.StringVar(&flagRunID, "run-id", "", "id tagging this run's logs and metrics (default: a generated uuid)")

	f.StringVar(&flagDemo, "demo", "", "skip stdin and compute on a generated graph instead: complete, path, cycle, star, wheel, random-sparse, random-regular")
	f.IntVar(&flagDemoSize, "demo-size", 10, "vertex count for --demo")
	f.Int64Var(&flagDemoSeed, "demo-seed", 1, "RNG seed for random-sparse/random-regular demos")
	f.Float64Var(&flagDemoProb, "demo-prob", 0.3, "edge probability for --demo random-sparse")
	f.IntVar(&flagDemoDegree, "demo-degree", 3, "target degree for --demo random-regular")
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// resolveConfig layers defaults -> optional config file -> environment ->
// this command's explicit flags, in that priority order (flags win).
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	v, cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	bind := func(flag string, key string) error {
		if cmd.Flags().Changed(flag) {
			return v.BindPFlag(key, cmd.Flags().Lookup(flag))
		}
		return nil
	}
	if err := bind("processes", "processes"); err != nil {
		return nil, err
	}
	if err := bind("partition-strategy", "partition_strategy"); err != nil {
		return nil, err
	}
	if err := bind("log-level", "log_level"); err != nil {
		return nil, err
	}
	if err := bind("telemetry", "telemetry_enabled"); err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("processes") && !cmd.Flags().Changed("partition-strategy") &&
		!cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("telemetry") {
		return cfg, nil
	}
	var resolved config.Config
	if err := v.Unmarshal(&resolved); err != nil {
		return nil, fmt.Errorf("run: re-resolving config over flags: %w", err)
	}
	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	return &resolved, nil
}

func loadGraph(cmd *cobra.Command, stdin *bufio.Reader) (uint64, []edgeio.Edge, int, error) {
	if flagDemo != "" {
		g, err := buildDemoGraph()
		if err != nil {
			return 0, nil, 0, err
		}
		return g.NGlobal, g.Edges, 0, nil
	}

	processesFromStdin := 0
	if flagStdinProcessCount {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return 0, nil, 0, fmt.Errorf("run: reading process count line: %w", err)
		}
		p, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, nil, 0, fmt.Errorf("run: parsing process count line %q: %w", line, err)
		}
		processesFromStdin = p
	}

	nGlobal, edges, err := edgeio.ReadEdgeList(stdin)
	if err != nil {
		return 0, nil, 0, err
	}
	return nGlobal, edges, processesFromStdin, nil
}

func buildDemoGraph() (graphgen.Graph, error) {
	switch flagDemo {
	case "complete":
		return graphgen.Complete(flagDemoSize)
	case "path":
		return graphgen.Path(flagDemoSize)
	case "cycle":
		return graphgen.Cycle(flagDemoSize)
	case "star":
		return graphgen.Star(flagDemoSize)
	case "wheel":
		return graphgen.Wheel(flagDemoSize)
	case "random-sparse":
		return graphgen.RandomSparse(flagDemoSize, flagDemoProb, flagDemoSeed)
	case "random-regular":
		return graphgen.RandomRegular(flagDemoSize, flagDemoDegree, flagDemoSeed)
	default:
		return graphgen.Graph{}, fmt.Errorf("run: unknown --demo topology %q", flagDemo)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	runID := flagRunID
	if runID == "" {
		runID = uuid.New().String()
	}
	logger := logging.New(os.Stderr, parseLogLevel(cfg.LogLevel)).WithRunID(runID)
	logger.Info("run starting")

	stdin := bufio.NewReader(os.Stdin)
	nGlobal, edges, stdinProcesses, err := loadGraph(cmd, stdin)
	if err != nil {
		logger.Error("failed to load graph", "error", err)
		return err
	}

	numProcs := cfg.Processes
	if flagStdinProcessCount && !cmd.Flags().Changed("processes") {
		numProcs = stdinProcesses
	}
	maxProcs := runtime.NumCPU() * emulator.MaxOversubscription
	if numProcs <= 0 || numProcs > maxProcs {
		err := fmt.Errorf("run: processes must be in [1, %d], got %d", maxProcs, numProcs)
		logger.Error("invalid process count", "error", err)
		return err
	}

	// resolveConfig has already folded --partition-strategy into cfg when
	// the flag was set, so cfg.PartitionStrategy is the single source of
	// truth here.
	strategy, err := partition.ParseStrategy(cfg.PartitionStrategy)
	if err != nil {
		logger.Error("invalid partition strategy", "error", err)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	var meter *telemetry.Meter
	if cfg.TelemetryEnabled {
		meter, err = telemetry.New(ctx, 0, runID)
		if err != nil {
			logger.Error("failed to initialize telemetry", "error", err)
			return fmt.Errorf("run: %w", err)
		}
		defer meter.Shutdown(ctx)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: flagMetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("telemetry enabled", "addr", flagMetricsAddr)
	}

	cluster := emulator.New(numProcs)
	scattered := edgeio.Scatter(nGlobal, edges, numProcs, strategy)
	results := make([][]localgraph.Pair, numProcs)

	runErr := cluster.Run(ctx, func(ctx context.Context, sub bsp.Substrate, pid int) error {
		e := engine.New(sub, engine.Config{PartitionStrategy: strategy, Logger: logger, Meter: meter})
		if err := e.Initialize(ctx, nGlobal, scattered[pid]); err != nil {
			return err
		}
		pairs, err := e.Run(ctx)
		if err != nil {
			return err
		}
		results[pid] = pairs
		return nil
	})
	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		return runErr
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for pid := 0; pid < numProcs; pid++ {
		if err := edgeio.WriteMatching(out, pid, results[pid]); err != nil {
			return err
		}
	}
	return nil
}
