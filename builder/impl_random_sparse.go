// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Ordered pairs (i, j) are tried i asc, then j asc; self-loops are skipped.
//   • An accepted pair gets one edge with cost cfg.costFn(cfg.rng).
//
// Complexity: O(n²) trials, O(n + E) memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples a directed graph over n nodes where every ordered pair
// of distinct nodes is an edge with probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if !(p >= probMin && p <= probMax) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)

	g := core.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// p == 1 must include every pair; Float64 is in [0, 1).
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			c := cfg.costFn(cfg.rng)
			if err := g.AddEdge(core.NodeID(i), core.NodeID(j), c); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d, c=%d): %w", methodRandomSparse, i, j, c, err)
			}
		}
	}

	return g, nil
}
