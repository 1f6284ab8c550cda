// Package bspmatch computes a maximal matching on an arbitrary undirected
// simple graph using a bulk-synchronous-parallel (BSP) algorithm split
// across P cooperating processes, each owning a disjoint slice of the
// vertex set.
//
// Computation proceeds in two phases, separated by a round of BSP
// supersteps each:
//
//	Phase I  — singleton elimination: degree-1 vertices cascade MOVE/
//	           CONFIRM/REJECT instructions across process boundaries
//	           until no process has a pending singleton anywhere.
//	Phase II — snake-based augmenting paths: the remaining vertices grow
//	           cross-process "snake" chains and resolve them into matched
//	           pairs via the same instruction protocol.
//
// Subpackages:
//
//	instruction/  the wire protocol between processes, one BSP round at a time
//	localgraph/   a process's local view of its partition: vertices, edges, matching
//	partition/    the vertex-ownership function shared by every process
//	outbox/       per-destination todo lists queued between supersteps
//	bsp/          the substrate interface a BSP runtime must satisfy, plus
//	              bsp/emulator, an in-process goroutine-based implementation
//	interpreter/  applies a received instruction to a process's local graph
//	phase1/       singleton elimination driver
//	phase2/       snake/augmenting-path driver
//	snake/        the cross-process linked-chain abstraction Phase II grows
//	engine/       top-level orchestration: initialize -> phase1 -> phase2 -> collect
//	edgeio/       edge-list parsing, process-to-process scatter, matching output
//	graphgen/     synthetic graph generators for tests and the CLI's --demo mode
//	logging/      structured logging, one process-tagged *slog.Logger per Engine
//	telemetry/    OpenTelemetry metrics over a Prometheus exporter
//	config/       viper-backed run configuration (process count, partition
//	              strategy, log level, telemetry)
//	cmd/bspmatch/ the Cobra CLI entry point
//
// None of the core algorithm packages (instruction, localgraph, partition,
// outbox, bsp, interpreter, phase1, phase2, snake) import anything outside
// this module; the ambient packages (engine, edgeio, graphgen, logging,
// telemetry, config, cmd/bspmatch) are the only places third-party
// dependencies and external I/O appear.
package bspmatch
