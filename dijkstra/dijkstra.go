package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/cost"
)

// Tree is a single-source shortest-path tree.
type Tree struct {
	// Source is the root of the tree.
	Source core.NodeID

	// Dist[i] is the least cost from Source to node i, Infinite if unreachable.
	Dist []cost.Cost

	prev []core.NodeID
}

// Dijkstra computes least costs from source to every node of g.
// A heuristic set through WithHeuristic is ignored: there is no single goal.
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, cfg)
	if err := r.run(source); err != nil {
		return nil, err
	}

	return &Tree{Source: source, Dist: r.dist, prev: r.prev}, nil
}

// Reachable reports whether id has a finite distance.
func (t *Tree) Reachable(id core.NodeID) bool {
	return int64(id) < int64(len(t.Dist)) && !t.Dist[id].IsInfinite()
}

// Prev returns the predecessor of id on its shortest path. ok is false for
// the source and for unreachable or unknown nodes.
func (t *Tree) Prev(id core.NodeID) (core.NodeID, bool) {
	if int64(id) >= int64(len(t.prev)) || t.prev[id] == none {
		return 0, false
	}

	return t.prev[id], true
}

// PathTo returns the node ids from Source to id inclusive.
func (t *Tree) PathTo(id core.NodeID) ([]core.NodeID, error) {
	if int64(id) >= int64(len(t.Dist)) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if t.Dist[id].IsInfinite() {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, t.Source, id)
	}

	return trace(t.prev, id), nil
}
