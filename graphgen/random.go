package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bspmatch/edgeio"
)

const maxStubMatchingAttempts = 8

// RandomSparse builds an Erdos-Renyi-style sparse graph over n vertices
// (n >= 1): each of the n*(n-1)/2 unordered pairs is included
// independently with probability p, sampled in ascending (i,j) order so
// the result is fully determined by (n, p, seed).
//
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64, seed int64) (Graph, error) {
	if n < 1 {
		return Graph{}, fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return Graph{}, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	var edges []edgeio.Edge
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() < p {
				edges = append(edges, edgeio.Edge{U: uint64(i), V: uint64(j)})
			}
		}
	}
	return Graph{NGlobal: uint64(n), Edges: edges}, nil
}

// RandomRegular builds an undirected, simple d-regular graph over n
// vertices via stub-matching: n*d stubs (each vertex repeated d times)
// are shuffled and paired consecutively; a pairing with a self-loop or
// a repeated edge is rejected and reshuffled, up to a bounded number of
// attempts.
//
// Requires n >= 1, 0 <= d < n, and n*d even (else ErrTooFewVertices).
func RandomRegular(n, d int, seed int64) (Graph, error) {
	if n < minRRVertices {
		return Graph{}, fmt.Errorf("RandomRegular: n=%d < min=%d: %w", n, minRRVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return Graph{}, fmt.Errorf("RandomRegular: degree must be in [0,%d), got %d: %w", n, d, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return Graph{}, fmt.Errorf("RandomRegular: n*d must be even (n=%d, d=%d): %w", n, d, ErrTooFewVertices)
	}

	stubCount := n * d
	if stubCount == 0 {
		return Graph{NGlobal: uint64(n)}, nil
	}

	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]struct{}, stubCount/2)
		valid := true
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		edges := make([]edgeio.Edge, 0, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			edges = append(edges, edgeio.Edge{U: uint64(stubs[i] + 1), V: uint64(stubs[i+1] + 1)})
		}
		return Graph{NGlobal: uint64(n), Edges: edges}, nil
	}

	return Graph{}, fmt.Errorf("RandomRegular: failed to construct after %d attempts: %w", maxStubMatchingAttempts, ErrConstructFailed)
}
