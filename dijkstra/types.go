package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/cost"
)

// Sentinel errors returned by searches.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates a source or target outside the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrUnreachable indicates no path exists from source to target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognised name.
	ErrUnknownHeuristic = errors.New("dijkstra: unknown heuristic")

	// ErrInvalidScale is returned by ParseHeuristic for a negative or non-finite scale.
	ErrInvalidScale = errors.New("dijkstra: invalid heuristic scale")
)

// Heuristic estimates the remaining cost from n to goal.
type Heuristic func(n, goal *core.Node) cost.Cost

// Options holds search parameters.
type Options struct {
	// Heuristic turns ShortestPath into A*. Ignored by Dijkstra.
	Heuristic Heuristic

	// LinearLookup locates frontier entries with an O(n) scan instead of the
	// key index.
	LinearLookup bool

	// MaxCost bounds exploration: paths costing more are not followed.
	MaxCost cost.Cost

	// OnSettle, if set, is called once per node as it becomes final.
	OnSettle func(id core.NodeID, c cost.Cost)
}

// Option configures a search.
type Option func(*Options)

// DefaultOptions returns an unbounded plain Dijkstra search.
func DefaultOptions() Options {
	return Options{MaxCost: cost.Infinite}
}

// WithHeuristic enables A* with h.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithLinearLookup selects the linear frontier lookup.
func WithLinearLookup() Option {
	return func(o *Options) { o.LinearLookup = true }
}

// WithMaxCost stops the search from following paths costing more than c.
func WithMaxCost(c uint64) Option {
	return func(o *Options) { o.MaxCost = cost.Finite(c) }
}

// WithOnSettle registers fn to observe settled nodes in settle order.
func WithOnSettle(fn func(id core.NodeID, c cost.Cost)) Option {
	return func(o *Options) { o.OnSettle = fn }
}

// Path is the result of ShortestPath.
type Path struct {
	// Nodes runs from the source to the target inclusive.
	Nodes []core.Node

	// Cost is the sum of the edge costs along Nodes.
	Cost cost.Cost

	// Settled is the number of nodes finalised during the search.
	Settled int
}

// IDs returns the node ids of p in order.
func (p *Path) IDs() []core.NodeID {
	ids := make([]core.NodeID, len(p.Nodes))
	for i := range p.Nodes {
		ids[i] = p.Nodes[i].ID
	}

	return ids
}

// Haversine estimates the great-circle distance in metres times scale,
// rounded down. Panics if scale is negative or NaN.
func Haversine(scale float64) Heuristic {
	checkScale(scale)

	return func(n, goal *core.Node) cost.Cost {
		return floorCost(n.DistanceTo(goal) * scale)
	}
}

// Euclidean estimates the straight-line distance between the raw
// latitude/longitude pairs times scale, rounded down. Panics if scale is
// negative or NaN.
func Euclidean(scale float64) Heuristic {
	checkScale(scale)

	return func(n, goal *core.Node) cost.Cost {
		dLat := n.Lat - goal.Lat
		dLon := n.Lon - goal.Lon

		return floorCost(math.Sqrt(dLat*dLat+dLon*dLon) * scale)
	}
}

// ParseHeuristic maps a name to a Heuristic. "" and "none" yield nil
// (plain Dijkstra).
func ParseHeuristic(name string, scale float64) (Heuristic, error) {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "dijkstra":
		return nil, nil
	case "haversine":
		return Haversine(scale), nil
	case "euclidean":
		return Euclidean(scale), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func checkScale(scale float64) {
	if scale < 0 || math.IsNaN(scale) {
		panic(fmt.Sprintf("dijkstra: heuristic scale must be non-negative, got %v", scale))
	}
}

func floorCost(v float64) cost.Cost {
	if v <= 0 || math.IsNaN(v) {
		return cost.Zero
	}
	if v >= math.MaxUint64 {
		return cost.Infinite
	}

	return cost.Finite(uint64(math.Floor(v)))
}
