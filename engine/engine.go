// SPDX-License-Identifier: MIT
// Package: bspmatch/engine
//
// Package engine is the top-level orchestration layer: initialize a
// process's local graph from a scattered edge list, drive Phase I to
// quiescence, hand the leftovers to Phase II, and collect the final
// matching. cmd/bspmatch's run command is the only intended caller, but
// nothing here depends on Cobra or stdin/stdout — that split keeps the
// engine directly unit-testable against bsp/emulator the same way
// phase1 and phase2 already are.
package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bspmatch/bsp"
	"github.com/katalvlaran/bspmatch/edgeio"
	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/logging"
	"github.com/katalvlaran/bspmatch/partition"
	"github.com/katalvlaran/bspmatch/phase1"
	"github.com/katalvlaran/bspmatch/phase2"
	"github.com/katalvlaran/bspmatch/snake"
	"github.com/katalvlaran/bspmatch/telemetry"
)

// Config holds the parameters and ambient collaborators one process's
// Engine needs. Logger and Meter may both be nil: a nil Logger falls
// back to logging.Discard(), a nil Meter disables all instrumentation
// (every telemetry.Meter method is a nil-receiver no-op already).
type Config struct {
	PartitionStrategy partition.Strategy
	Logger            *logging.Logger
	Meter             *telemetry.Meter
}

// Engine drives one process's share of the matching computation over a
// given bsp.Substrate.
type Engine struct {
	sub bsp.Substrate
	cfg Config
	log *logging.Logger

	lg *localgraph.Graph
}

// New returns an Engine bound to sub, the substrate this process will
// run its supersteps over. Initialize must be called before Run.
func New(sub bsp.Substrate, cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		sub: sub,
		cfg: cfg,
		log: log.WithProcess(sub.PID()),
	}
}

// Initialize builds this process's local graph from edges, the global
// vertex count, and the configured partition strategy. edges should
// already be this process's share of a edgeio.Scatter call — Initialize
// does not re-scatter, since every process already received only the
// edges it needs.
func (e *Engine) Initialize(ctx context.Context, nGlobal uint64, edges []edgeio.Edge) error {
	e.lg = localgraph.New(nGlobal, e.sub.PID(), e.sub.NumProcs(), e.cfg.PartitionStrategy)
	e.lg.Load(edges)
	e.log.Info("initialized local graph", "vertices", e.lg.VertexCount(), "nGlobal", nGlobal)
	return nil
}

// Run drives Phase I singleton elimination to quiescence, then hands
// whatever this process still holds to Phase II's snake engine, and
// returns this process's final matching. Initialize must have been
// called first.
func (e *Engine) Run(ctx context.Context) ([]localgraph.Pair, error) {
	if e.lg == nil {
		return nil, fmt.Errorf("engine: Run called before Initialize")
	}

	e.log.Info("phase1 starting", "vertices", e.lg.VertexCount())
	phase1Rounds, err := phase1.Run(ctx, e.sub, e.lg, e.cfg.Meter)
	if err != nil {
		return nil, fmt.Errorf("engine: phase1: %w", err)
	}
	e.cfg.Meter.RecordQuiescence(ctx, "phase1", phase1Rounds)
	e.log.Info("phase1 quiesced", "remaining", e.lg.VertexCount(), "matched", len(e.lg.Matching()), "rounds", phase1Rounds)

	e.log.Info("phase2 starting", "vertices", e.lg.VertexCount())
	phase2Rounds, err := phase2.Run(ctx, e.sub, e.lg, snake.NewRegistry(), e.cfg.Meter)
	if err != nil {
		return nil, fmt.Errorf("engine: phase2: %w", err)
	}
	e.cfg.Meter.RecordQuiescence(ctx, "phase2", phase2Rounds)

	pairs := e.lg.Matching()
	e.cfg.Meter.RecordMatchingSize(ctx, len(pairs))
	e.log.Info("phase2 quiesced", "matched", len(pairs))

	return pairs, nil
}
