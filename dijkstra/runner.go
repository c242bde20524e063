package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/cost"
	"github.com/katalvlaran/lvroute/minheap"
)

// none marks a node without a predecessor.
const none = ^core.NodeID(0)

// entry is a frontier element: a node keyed by id, ordered by priority.
type entry struct {
	id core.NodeID
	c  cost.Cost
}

func (e *entry) Key() core.NodeID    { return e.id }
func (e *entry) Cost() cost.Cost     { return e.c }
func (e *entry) SetCost(c cost.Cost) { e.c = c }

// runner holds the per-query state of one search.
type runner struct {
	g    *core.Graph
	opts Options

	goal     core.NodeID
	goalNode core.Node
	hasGoal  bool

	// heuristic values for this query only, filled on first use
	est    []cost.Cost
	estSet []bool

	dist    []cost.Cost
	prev    []core.NodeID
	settled []bool
	count   int

	pq    *minheap.MinHeap[core.NodeID, *entry]
	probe entry
}

func newRunner(g *core.Graph, opts Options) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		opts:    opts,
		dist:    make([]cost.Cost, n),
		prev:    make([]core.NodeID, n),
		settled: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = cost.Infinite
		r.prev[i] = none
	}
	if opts.LinearLookup {
		r.pq = minheap.New[core.NodeID, *entry]()
	} else {
		r.pq = minheap.New[core.NodeID, *entry](minheap.WithIndex())
	}

	return r
}

// setGoal makes the search stop at goal and, with a heuristic, run as A*.
func (r *runner) setGoal(goal core.NodeID) error {
	n, err := r.g.Node(goal)
	if err != nil {
		return err
	}
	r.goal, r.goalNode, r.hasGoal = goal, n, true
	if r.opts.Heuristic != nil {
		r.est = make([]cost.Cost, r.g.Len())
		r.estSet = make([]bool, r.g.Len())
	}

	return nil
}

// estimate returns the heuristic value of v, computing it once per query.
func (r *runner) estimate(v core.NodeID) cost.Cost {
	if r.estSet[v] {
		return r.est[v]
	}
	n, err := r.g.Node(v)
	if err != nil {
		return cost.Infinite
	}
	h := r.opts.Heuristic(&n, &r.goalNode)
	r.est[v], r.estSet[v] = h, true

	return h
}

// priority is the frontier order of v reached at cost g.
func (r *runner) priority(v core.NodeID, g cost.Cost) cost.Cost {
	if r.opts.Heuristic == nil || !r.hasGoal {
		return g
	}

	return g.Add(r.estimate(v))
}

// run searches from source until the frontier empties or the goal settles.
func (r *runner) run(source core.NodeID) error {
	r.dist[source] = cost.Zero
	r.pq.Push(&entry{id: source, c: r.priority(source, cost.Zero)})

	for {
		e, ok := r.pq.PopMin()
		if !ok {
			return nil
		}
		u := e.id
		r.settled[u] = true
		r.count++
		if r.opts.OnSettle != nil {
			r.opts.OnSettle(u, r.dist[u])
		}
		if r.hasGoal && u == r.goal {
			return nil
		}

		for _, ed := range r.g.Edges(u) {
			v := ed.To
			if r.settled[v] {
				continue
			}
			cand := r.dist[u].Add(ed.Cost)
			if !cand.Less(r.dist[v]) || cand.Compare(r.opts.MaxCost) > 0 {
				continue
			}
			r.dist[v] = cand
			r.prev[v] = u

			prio := r.priority(v, cand)
			r.probe.id = v
			if i, found := r.pq.FindIndex(&r.probe); found {
				if err := r.pq.DecreaseKey(i, prio); err != nil {
					return fmt.Errorf("dijkstra: relax %d→%d: %w", u, v, err)
				}
				continue
			}
			r.pq.Push(&entry{id: v, c: prio})
		}
	}
}

// trace follows predecessors from id back to the source, returning ids in
// source→id order.
func trace(prev []core.NodeID, id core.NodeID) []core.NodeID {
	var rev []core.NodeID
	for v := id; v != none; v = prev[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
