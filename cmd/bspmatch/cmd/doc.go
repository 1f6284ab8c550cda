// SPDX-License-Identifier: MIT

// Package cmd implements the bspmatch Cobra command tree: a root command
// carrying global flags (--config) and a single "run" subcommand that reads
// an edge list (from stdin, or a generated --demo graph), drives the engine
// package's orchestration over an in-process bsp/emulator.Cluster, and
// writes the resulting matching to stdout.
//
// Everything that actually computes a matching lives in engine, edgeio, and
// the core packages; this package's only job is flag parsing, config
// layering via the config package, and gluing stdin/stdout to the engine.
package cmd
