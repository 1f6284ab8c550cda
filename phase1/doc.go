// Package phase1 implements the singleton-elimination driver that runs
// before Phase II's snake engine.
// Run sweeps each process's degree-1 vertices every superstep, proposes
// matches via the wire protocol for cross-process neighbors, and loops
// to global quiescence.
package phase1
