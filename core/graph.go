package core

import (
	"fmt"

	"github.com/katalvlaran/lvroute/cost"
)

// New returns a Graph with capacity placeholder nodes (ids 0..capacity-1,
// coordinates (0, 0), no edges). Panics if capacity < 0.
func New(capacity int) *Graph {
	if capacity < 0 {
		panic("core: capacity must be non-negative")
	}
	g := &Graph{nodes: make([]Node, capacity)}
	for i := range g.nodes {
		g.nodes[i].ID = NodeID(i)
	}

	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// HasNode reports whether id is inside the node range.
func (g *Graph) HasNode(id NodeID) bool { return int64(id) < int64(len(g.nodes)) }

// Node returns a copy of node id. The Edges slice is shared and must not be modified.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeNotFound, id, len(g.nodes))
	}
	n := &g.nodes[id]

	return Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Edges: n.Edges}, nil
}

// SetNode sets the coordinates of node id.
func (g *Graph) SetNode(id NodeID, lat, lon float64) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeNotFound, id, len(g.nodes))
	}
	g.nodes[id].Lat = lat
	g.nodes[id].Lon = lon

	return nil
}

// AddEdge appends the directed edge from→to with the given finite cost.
// Returns ErrDanglingReference if either endpoint is outside the node range.
func (g *Graph) AddEdge(from, to NodeID, c uint64) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("%w: edge %d→%d, graph has nodes 0..%d",
			ErrDanglingReference, from, to, len(g.nodes)-1)
	}
	g.nodes[from].Edges = append(g.nodes[from].Edges, Edge{From: from, To: to, Cost: cost.Finite(c)})
	g.edges++

	return nil
}

// Edges returns the outgoing edges of id, or nil if id is out of range.
// The slice is shared and must not be modified.
func (g *Graph) Edges(id NodeID) []Edge {
	if !g.HasNode(id) {
		return nil
	}

	return g.nodes[id].Edges
}

// Reverse returns a new Graph with the same nodes and every edge flipped.
// Edge order per node follows the order of the original edges' sources.
func (g *Graph) Reverse() *Graph {
	r := New(len(g.nodes))
	for i := range g.nodes {
		r.nodes[i].Lat = g.nodes[i].Lat
		r.nodes[i].Lon = g.nodes[i].Lon
	}
	for i := range g.nodes {
		for _, e := range g.nodes[i].Edges {
			r.nodes[e.To].Edges = append(r.nodes[e.To].Edges, Edge{From: e.To, To: e.From, Cost: e.Cost})
		}
	}
	r.edges = g.edges

	return r
}
