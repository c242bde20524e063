package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    core.NodeID
	depth int
	next  int // index of the next edge to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from startID. With WithFullTraversal
// it covers every node and startID is ignored.
// Returns DFSResult, or a partial result and an error if aborted by context
// or hook; an aborted result has an empty Order.
func DFS(g *core.Graph, startID core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.Len()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]core.NodeID, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = NoParent
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for i := 0; i < n; i++ {
			if !res.Visited[i] {
				if err := w.traverse(core.NodeID(i)); err != nil {
					res.Order = nil
					return res, err
				}
			}
		}
	} else if err := w.traverse(startID); err != nil {
		res.Order = nil
		return res, err
	}

	return res, nil
}

// visit marks id discovered at depth and pushes its frame.
func (w *dfsWalker) visit(id core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth})

	return nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root core.NodeID) error {
	if err := w.visit(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		edges := w.graph.Edges(top.id)

		descended := false
		for top.next < len(edges) {
			nid := edges[top.next].To
			top.next++

			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}

			w.res.Parent[nid] = top.id
			if err := w.visit(nid, top.depth+1); err != nil {
				return err
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// all edges examined: finish the node
		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}
