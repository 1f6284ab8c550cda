// SPDX-License-Identifier: MIT
// Package: bspmatch/edgeio
//
// edgeio.go — the external collaborator handling this module's input/output
// contract: parsing a stdin-style edge list on process 0, scattering it
// into per-process edge slices, and writing a process's matching back out.
// None of this touches the BSP core directly; engine glues the two
// together.
package edgeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/bspmatch/localgraph"
	"github.com/katalvlaran/bspmatch/partition"
)

// Edge is an alias for localgraph.Edge: edgeio produces exactly the
// value Load consumes, so there is nothing to convert between the two
// package boundaries.
type Edge = localgraph.Edge

// Sentinel errors for malformed input. Surfaced on process 0 before any
// Substrate is constructed.
var (
	// ErrMalformedHeader indicates the first line was not "V E" with V, E
	// non-negative integers.
	ErrMalformedHeader = errors.New("edgeio: malformed header line")

	// ErrEdgeOutOfRange indicates an edge line named vertex id 0 or an id
	// greater than V (ids are 1-based, in [1, V]).
	ErrEdgeOutOfRange = errors.New("edgeio: edge endpoint out of range")

	// ErrTruncatedInput indicates fewer than E edge lines were present,
	// or a line could not be parsed as "u v".
	ErrTruncatedInput = errors.New("edgeio: truncated or malformed edge line")
)

// ReadEdgeList parses the module's wire format from r: a header line "V E"
// followed by E lines of "u v", all 1-based vertex ids in [1, V]. It
// returns the declared vertex count and the parsed edges in file order.
//
// ReadEdgeList does not deduplicate or symmetry-check edges — it is a
// pure syntactic parse; Load's invariants are the caller's concern via
// Scatter.
func ReadEdgeList(r io.Reader) (nGlobal uint64, edges []Edge, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return 0, nil, fmt.Errorf("edgeio: empty input: %w", ErrMalformedHeader)
	}
	var v, e uint64
	if _, scanErr := fmt.Sscanf(sc.Text(), "%d %d", &v, &e); scanErr != nil {
		return 0, nil, fmt.Errorf("edgeio: header %q: %w", sc.Text(), ErrMalformedHeader)
	}

	out := make([]Edge, 0, e)
	for i := uint64(0); i < e; i++ {
		if !sc.Scan() {
			return 0, nil, fmt.Errorf("edgeio: expected %d edges, got %d: %w", e, i, ErrTruncatedInput)
		}
		var u, w uint64
		if _, scanErr := fmt.Sscanf(sc.Text(), "%d %d", &u, &w); scanErr != nil {
			return 0, nil, fmt.Errorf("edgeio: edge line %q: %w", sc.Text(), ErrTruncatedInput)
		}
		if u == 0 || w == 0 || u > v || w > v {
			return 0, nil, fmt.Errorf("edgeio: edge (%d,%d) outside [1,%d]: %w", u, w, v, ErrEdgeOutOfRange)
		}
		out = append(out, Edge{U: u, V: w})
	}
	if scanErr := sc.Err(); scanErr != nil {
		return 0, nil, fmt.Errorf("edgeio: scanning input: %w", scanErr)
	}

	return v, out, nil
}

// Scatter assigns every edge to each process owning at least one of its
// endpoints, satisfying §4.B's load constraint ("each edge appears once
// per incident partition"). The returned slice has length numProcs;
// result[p] is the edge subset process p's Load call needs.
//
// An edge with both endpoints owned by the same process appears once in
// that process's slice; an edge crossing a partition boundary appears
// once in each of the two owning processes' slices.
func Scatter(nGlobal uint64, edges []Edge, numProcs int, strategy partition.Strategy) [][]Edge {
	result := make([][]Edge, numProcs)
	for _, e := range edges {
		ownerU := partition.Owner(e.U, nGlobal, numProcs, strategy)
		ownerV := partition.Owner(e.V, nGlobal, numProcs, strategy)

		result[ownerU] = append(result[ownerU], e)
		if ownerV != ownerU {
			result[ownerV] = append(result[ownerV], e)
		}
	}
	return result
}

// WriteMatching writes one process's matching to w as newline-delimited
// "u v" pairs, smaller id first. Formatting is implementation-defined
// per §6; this keeps the format stable so cmd/bspmatch can merge process
// outputs without re-parsing them.
func WriteMatching(w io.Writer, pid int, pairs []localgraph.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		a, b := p.A, p.B
		if a > b {
			a, b = b, a
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", a, b); err != nil {
			return fmt.Errorf("edgeio: writing matching for process %d: %w", pid, err)
		}
	}
	return bw.Flush()
}
