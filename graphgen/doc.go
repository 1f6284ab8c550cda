// SPDX-License-Identifier: MIT
// Package: bspmatch/graphgen
//
// Package graphgen produces small, deterministic graph corpora for the
// engine's property tests and cmd/bspmatch's --demo mode: complete
// graphs, paths, cycles, stars, wheels, and randomized sparse/regular
// graphs. Every generator takes plain positional parameters (the
// stochastic ones a seed as well) and follows the same fail-fast
// sentinel-error discipline as this module's other packages, emitting edgeio.Edge
// values over 1-based uint64 vertex ids since that is what
// localgraph.Load consumes directly.
package graphgen
