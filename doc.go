// Package lvroute finds least-cost routes in road networks held in memory.
//
// What is lvroute?
//
//	A small routing toolkit built around a dense, zero-indexed graph:
//		• cost/      - finite-or-infinite path costs with saturating addition
//		• minheap/   - generic binary min-heap with lookup by key and decrease-key
//		• core/      - Graph, Node, Edge; node/edge and edge-list file loaders
//		• dijkstra/  - Dijkstra and A* (haversine or euclidean estimates)
//		• dfs/       - depth-first search and strongly connected components
//		• builder/   - synthetic grid and random graphs for tests and benchmarks
//
//	Binaries:
//		• cmd/lvroute   - route, table, components and gen subcommands
//		• cmd/lvrouted  - HTTP service over internal/api
//
// Quick example:
//
//	g, err := core.Load("noder.txt", "kanter.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := dijkstra.ShortestPath(g, 0, 42, dijkstra.WithHeuristic(dijkstra.Haversine(1)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, n := range p.Nodes {
//		fmt.Printf("%v, %v\n", n.Lat, n.Lon)
//	}
//
// File formats:
//
//	node file:  "<count>" then "<id> <lat> <lon>" per line
//	edge file:  "<count>" then "<from> <to> <cost> [<more values>...]" per line
//	edge list:  "<nodes> <edges>" then "<from> <to> [cost]" per line
//
// Heuristic estimates are only as good as their units: a distance estimate
// over travel-time costs must be scaled down (or disabled) to stay
// admissible. See package dijkstra.
package lvroute
