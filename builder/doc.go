// Package builder generates synthetic core.Graph instances for tests,
// benchmarks and the lvroute gen command.
//
// Constructors:
//
//   - RandomSparse(n, p): directed Erdős–Rényi graph. Each ordered pair
//     (i, j), i ≠ j, becomes an edge with probability p. Node coordinates are
//     left at (0, 0).
//   - Grid(rows, cols): 4-neighbour grid laid out on the globe from an origin
//     with a fixed spacing in degrees. Every neighbour pair gets one edge in
//     each direction. An edge costs its great-circle length in metres, rounded
//     up, times a random slack factor in [1, 1+slack]. Costs therefore never
//     fall below the Haversine distance, which keeps dijkstra.Haversine(1)
//     admissible on grid graphs.
//
// Determinism: for a fixed seed and options the output is identical, with
// nodes numbered row-major (grid) or 0..n-1 (sparse) and edges emitted in a
// stable order.
//
// Option constructors panic on meaningless arguments. Constructors return
// sentinel errors wrapped with the method name.
package builder
