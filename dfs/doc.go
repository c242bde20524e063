// Package dfs implements depth-first search and strongly connected
// components on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, from one root or over the whole forest. Supports
//     pre-order and post-order hooks, cancellation via context.Context,
//     depth limiting and neighbour filtering.
//   - FinishOrder: all nodes in decreasing DFS finish time.
//   - StronglyConnected: Kosaraju's algorithm. A finish-order pass on g,
//     then a sweep over g.Reverse() in that order; every tree of the sweep
//     is one component.
//
// Why:
//   - A road graph loaded from files is rarely strongly connected. Routing
//     between two nodes in different components always fails, so tools
//     report components before (or instead of) searching.
//
// The traversal uses an explicit stack, so depth is bounded by memory rather
// than the goroutine stack, which matters on country-sized road networks.
//
// Complexity:
//
//   - DFS, FinishOrder:   Time O(V+E), Memory O(V)
//   - StronglyConnected:  Time O(V+E), Memory O(V+E) (reversed graph)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
