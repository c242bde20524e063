// Package dijkstra finds least-cost paths in a core.Graph.
//
// ShortestPath answers a single from→to query. Without a heuristic it is
// Dijkstra's algorithm; WithHeuristic turns it into A*, ordering the frontier
// by g + h where g is the cost of the best known path and h an estimate of the
// remaining cost. Estimates live in the query's own state, so a heuristic is
// evaluated at most once per node per query and concurrent queries with
// different heuristics never see each other's values.
//
// Dijkstra computes the full single-source tree instead: every reachable
// node's distance and predecessor, from which any path can be read back.
//
// Algorithm outline:
//  1. dist[*] = ∞, dist[source] = 0; only the source enters the frontier.
//  2. Pop the frontier minimum u and settle it. A settled node is final and
//     is never reopened. ShortestPath stops as soon as the target settles.
//  3. For each edge u→v with v not settled: candidate = dist[u] + cost.
//     If candidate < dist[v], record it and the predecessor u, then either
//     decrease v's frontier priority (v is found by key) or push v.
//  4. An empty frontier before the target settles means no path.
//
// Heuristics must be admissible (never above the true remaining cost) for
// A* results to be optimal. Haversine(1) over metre costs is admissible;
// a distance estimate over a time metric in general is not, and the search
// then returns a valid but possibly suboptimal path.
//
// Complexity: O((V + E) log V) with the indexed frontier (the default).
// WithLinearLookup switches to the linear key scan, O(V) per lookup.
//
// Errors:
//
//	ErrNilGraph     - graph is nil.
//	ErrNodeNotFound - an endpoint is not a node of the graph.
//	ErrUnreachable  - the target cannot be reached from the source.
package dijkstra
