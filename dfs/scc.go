package dfs

import (
	"github.com/katalvlaran/lvroute/core"
)

// FinishOrder returns every node of g in decreasing DFS finish time.
// Only WithContext is meaningful among opts; traversal is always full.
func FinishOrder(g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := DFS(g, 0, append(opts, WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	order := res.Order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// StronglyConnected partitions g into strongly connected components.
//
// Steps:
//  1. Finish order on g.
//  2. Reverse every edge.
//  3. In finish order, each node not yet assigned roots a DFS over the
//     reversed graph; every node it reaches (and that is unassigned) joins
//     the root's component.
func StronglyConnected(g *core.Graph, opts ...Option) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order, err := FinishOrder(g, opts...)
	if err != nil {
		return nil, err
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	rev := g.Reverse()
	c := &Components{comp: make([]int, g.Len())}
	for i := range c.comp {
		c.comp[i] = -1
	}

	var stack []core.NodeID
	for _, root := range order {
		if c.comp[root] >= 0 {
			continue
		}
		select {
		case <-dopts.Ctx.Done():
			return nil, dopts.Ctx.Err()
		default:
		}

		id := len(c.Groups)
		var members []core.NodeID
		c.comp[root] = id
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, u)
			for _, e := range rev.Edges(u) {
				if c.comp[e.To] < 0 {
					c.comp[e.To] = id
					stack = append(stack, e.To)
				}
			}
		}
		sortIDs(members)
		c.Groups = append(c.Groups, members)
	}

	return c, nil
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.Groups) }

// Of returns the component index of id.
func (c *Components) Of(id core.NodeID) (int, bool) {
	if int64(id) >= int64(len(c.comp)) {
		return 0, false
	}

	return c.comp[id], true
}

// Same reports whether a and b are mutually reachable.
func (c *Components) Same(a, b core.NodeID) bool {
	ca, okA := c.Of(a)
	cb, okB := c.Of(b)

	return okA && okB && ca == cb
}

// Largest returns the index of the biggest component, the first one on ties,
// or -1 for an empty graph.
func (c *Components) Largest() int {
	best := -1
	for i, grp := range c.Groups {
		if best < 0 || len(grp) > len(c.Groups[best]) {
			best = i
		}
	}

	return best
}
