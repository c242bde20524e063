package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPath returns a least-cost path from from to to.
//
// With WithHeuristic the search is A*; the returned cost is always the true
// sum of edge costs, never including estimates. A path of one node with cost
// 0 is returned when from == to.
func ShortestPath(g *core.Graph, from, to core.NodeID, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w: target %d", ErrNodeNotFound, to)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, cfg)
	if err := r.setGoal(to); err != nil {
		return nil, err
	}
	if err := r.run(from); err != nil {
		return nil, err
	}
	if !r.settled[to] {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, from, to)
	}

	ids := trace(r.prev, to)
	p := &Path{Nodes: make([]core.Node, len(ids)), Cost: r.dist[to], Settled: r.count}
	for i, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		p.Nodes[i] = n
	}

	return p, nil
}
