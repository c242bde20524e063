// Package core provides the weighted, directed, geographic Graph that the
// shortest-path engine runs on, plus the text loaders that build it.
//
// The Graph is a dense, zero-indexed array of Nodes. Node i has ID i, a
// latitude/longitude pair and an ordered list of outgoing Edges. Every edge's
// endpoints are validated on insertion, so a loaded Graph can never reference
// a missing node at search time.
//
// Building:
//
//	New(capacity int) *Graph                    // placeholder nodes 0..capacity-1 at (0, 0)
//	SetNode(id NodeID, lat, lon float64) error  // place a node
//	AddEdge(from, to NodeID, cost uint64) error // append a directed edge
//
// Loading (two-file format):
//
//	nodes file:  <count>\n  <id> <lat> <lon>\n ...
//	edges file:  <count>\n  <from> <to> <cost> [more value columns]\n ...
//
//	Load(nodePath, edgePath string, opts ...LoadOption) (*Graph, error)
//	Read(nodes, edges io.Reader, opts ...LoadOption) (*Graph, error)
//
// Loading (single-file edge list, nodes are 0..n-1 without coordinates):
//
//	<nodes> <edges>\n  <from> <to> [cost]\n ...
//
//	LoadEdgeList(path string) (*Graph, error)
//	ReadEdgeList(r io.Reader) (*Graph, error)
//
// Writing: Write / WriteFiles emit the two-file format.
//
// Errors:
//
//	ErrIO                – a file cannot be opened or read
//	ErrFormat            – unparsable field, short record, bad or repeated node id,
//	                       node count above MaxNodes
//	ErrCountMismatch     – record count differs from the declared count
//	ErrDanglingReference – an edge endpoint is outside the node range
//	ErrNodeNotFound      – accessor given an id outside the node range
//
// Every load failure is a *LoadError carrying the path and line number and
// wrapping one of the sentinels above.
//
// Concurrency:
//
// Topology is meant to be built once and then only read. Searches keep their
// state (including heuristic estimates) outside the Graph, so concurrent
// searches over one Graph are safe. Building (SetNode, AddEdge) is not
// synchronised with searches.
package core
