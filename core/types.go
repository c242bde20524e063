package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/cost"
)

// Sentinel errors for graph construction, loading and lookup.
var (
	// ErrIO indicates a node or edge file could not be opened or read.
	ErrIO = errors.New("core: i/o error")

	// ErrFormat indicates a malformed record or header.
	ErrFormat = errors.New("core: malformed input")

	// ErrCountMismatch indicates the number of records differs from the declared count.
	ErrCountMismatch = errors.New("core: record count mismatch")

	// ErrDanglingReference indicates an edge endpoint outside the node range.
	ErrDanglingReference = errors.New("core: edge references a nonexistent node")

	// ErrNodeNotFound indicates an id outside the node range.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID identifies a node; it is also the node's index in the Graph.
type NodeID uint32

// Edge is a directed arc owned by its source node's edge list.
type Edge struct {
	From NodeID
	To   NodeID
	Cost cost.Cost
}

// Node is a vertex with coordinates and its outgoing edges.
type Node struct {
	ID    NodeID
	Lat   float64
	Lon   float64
	Edges []Edge
}

// Graph owns a dense, zero-indexed array of nodes.
type Graph struct {
	nodes []Node
	edges int
}

// LoadError reports where loading failed. Err wraps one of the sentinels.
type LoadError struct {
	Path string // file name, or "" for readers
	Line int    // 1-based line number, 0 if not line-specific
	Err  error
}

func (e *LoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", where, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadOptions configures Load and Read.
type LoadOptions struct {
	// CostColumn selects which value column after "from to" holds the edge
	// cost. Road-network edge files carry several (drive time, length, ...).
	CostColumn int
}

// LoadOption is a functional option for Load and Read.
type LoadOption func(*LoadOptions)

// WithCostColumn selects the n-th value column (0-based, after from and to)
// as the edge cost. Panics if n < 0.
func WithCostColumn(n int) LoadOption {
	return func(o *LoadOptions) {
		if n < 0 {
			panic("core: cost column must be non-negative")
		}
		o.CostColumn = n
	}
}
