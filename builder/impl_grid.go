// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node r*cols+c sits at (origin.lat + r*spacing, origin.lon + c*spacing).
//     The whole grid must stay within latitude [-90, 90] (else ErrBadOption).
//   • For each cell, the Right then Bottom neighbour is linked in both
//     directions with the same cost.
//   • cost = ceil(haversine(u, v) * (1 + U[0, slack))), at least 1.
//
// Complexity: O(rows*cols) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols bidirectional grid with geographic coordinates.
func Grid(rows, cols int, opts ...BuilderOption) (*core.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	top := cfg.originLat + float64(rows-1)*cfg.spacing
	if top > 90 {
		return nil, fmt.Errorf("%s: last row at latitude %.4f: %w", methodGrid, top, ErrBadOption)
	}

	g := core.New(rows * cols)
	id := func(r, c int) core.NodeID { return core.NodeID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			lon := wrapLon(cfg.originLon + float64(c)*cfg.spacing)
			if err := g.SetNode(id(r, c), cfg.originLat+float64(r)*cfg.spacing, lon); err != nil {
				return nil, fmt.Errorf("%s: SetNode(%d): %w", methodGrid, id(r, c), err)
			}
		}
	}

	link := func(u, v core.NodeID) error {
		a, _ := g.Node(u)
		b, _ := g.Node(v)
		w := gridCost(a.DistanceTo(&b), cfg.slack*cfg.rng.Float64())
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, c=%d): %w", methodGrid, u, v, w, err)
		}
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, c=%d): %w", methodGrid, v, u, w, err)
		}
		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := link(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// gridCost rounds metres*(1+extra) up, never below 1.
func gridCost(metres, extra float64) uint64 {
	c := uint64(math.Ceil(metres * (1 + extra)))
	if c < 1 {
		return 1
	}
	return c
}

// wrapLon maps a longitude into [-180, 180).
func wrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
