// File: load.go
// Role: Text loaders for the two-file node/edge format and the single-file
//       edge-list format.
// Policy:
//   - Malformed input is fatal: no partially built Graph is ever returned.
//   - Every error is a *LoadError (path + line) wrapping a core sentinel.
//   - Blank lines are skipped and do not count as records.
//   - Memory follows the records actually read, not the declared counts.

package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// MaxNodes is the largest node count a file header may declare.
const MaxNodes = 1 << 25

// capHint bounds slice preallocation taken from a header count.
const capHint = 1 << 16

// Load reads a Graph from a node file and an edge file.
func Load(nodePath, edgePath string, opts ...LoadOption) (*Graph, error) {
	nf, err := os.Open(nodePath)
	if err != nil {
		return nil, &LoadError{Path: nodePath, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer nf.Close()

	ef, err := os.Open(edgePath)
	if err != nil {
		return nil, &LoadError{Path: edgePath, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer ef.Close()

	return read(nf, nodePath, ef, edgePath, opts)
}

// Read is Load over readers. Error paths are reported as "<input>".
func Read(nodes, edges io.Reader, opts ...LoadOption) (*Graph, error) {
	return read(nodes, "", edges, "", opts)
}

func read(nodes io.Reader, nodePath string, edges io.Reader, edgePath string, opts []LoadOption) (*Graph, error) {
	var cfg LoadOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := readNodes(nodes, nodePath)
	if err != nil {
		return nil, err
	}
	if err = readEdges(g, edges, edgePath, cfg.CostColumn); err != nil {
		return nil, err
	}

	return g, nil
}

// nodeRecord is one parsed node line, kept until the count is confirmed.
type nodeRecord struct {
	id       NodeID
	lat, lon float64
}

// readNodes parses "<count>" then "<id> <lat> <lon>" records.
func readNodes(r io.Reader, path string) (*Graph, error) {
	sc := newRecordScanner(r, path)
	hdr, err := sc.header(1)
	if err != nil {
		return nil, err
	}
	declared := hdr[0]
	if err = sc.checkNodeCount(declared); err != nil {
		return nil, err
	}

	recs := make([]nodeRecord, 0, min(declared, capHint))
	var seen []bool
	count := 0
	for sc.next() {
		f := sc.fields
		if len(f) < 3 {
			return nil, sc.errorf(ErrFormat, "node record needs 3 fields, got %d", len(f))
		}
		id, err := sc.parseUint(f[0], "node id")
		if err != nil {
			return nil, err
		}
		lat, err := sc.parseFloat(f[1], "latitude")
		if err != nil {
			return nil, err
		}
		lon, err := sc.parseFloat(f[2], "longitude")
		if err != nil {
			return nil, err
		}
		count++
		if count > declared {
			// surplus records are counted for the mismatch report only
			continue
		}
		if id >= uint64(declared) {
			return nil, sc.errorf(ErrFormat, "node id %d outside declared range 0..%d", id, declared-1)
		}
		if id >= uint64(len(seen)) {
			seen = append(seen, make([]bool, int(id)+1-len(seen))...)
		}
		if seen[id] {
			return nil, sc.errorf(ErrFormat, "node id %d repeated", id)
		}
		seen[id] = true
		recs = append(recs, nodeRecord{id: NodeID(id), lat: lat, lon: lon})
	}
	if err = sc.err(); err != nil {
		return nil, err
	}
	if count != declared {
		return nil, sc.errorf(ErrCountMismatch, "declared %d nodes, read %d", declared, count)
	}

	g := New(declared)
	for _, rec := range recs {
		g.nodes[rec.id].Lat = rec.lat
		g.nodes[rec.id].Lon = rec.lon
	}

	return g, nil
}

// readEdges parses "<count>" then "<from> <to> <v0> [<v1> ...]" records,
// taking column as the cost.
func readEdges(g *Graph, r io.Reader, path string, column int) error {
	sc := newRecordScanner(r, path)
	hdr, err := sc.header(1)
	if err != nil {
		return err
	}
	declared := hdr[0]
	need := 3 + column

	count := 0
	for sc.next() {
		f := sc.fields
		if len(f) < need {
			return sc.errorf(ErrFormat, "edge record needs %d fields, got %d", need, len(f))
		}
		from, err := sc.parseUint(f[0], "from")
		if err != nil {
			return err
		}
		to, err := sc.parseUint(f[1], "to")
		if err != nil {
			return err
		}
		c, err := sc.parseUint(f[2+column], "cost")
		if err != nil {
			return err
		}
		if err = g.addEdge64(from, to, c); err != nil {
			return sc.wrap(err)
		}
		count++
	}
	if err = sc.err(); err != nil {
		return err
	}
	if count != declared {
		return sc.errorf(ErrCountMismatch, "declared %d edges, read %d", declared, count)
	}

	return nil
}

// LoadEdgeList reads the single-file format: "<nodes> <edges>" then
// "<from> <to> [cost]" records. Nodes have no coordinates; a missing cost is 1.
func LoadEdgeList(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()

	return readEdgeList(f, path)
}

// ReadEdgeList is LoadEdgeList over a reader.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	return readEdgeList(r, "")
}

// edgeRecord is one parsed edge-list line, kept until the count is confirmed.
type edgeRecord struct {
	from, to NodeID
	c        uint64
}

func readEdgeList(r io.Reader, path string) (*Graph, error) {
	sc := newRecordScanner(r, path)
	hdr, err := sc.header(2)
	if err != nil {
		return nil, err
	}
	nodes, declared := hdr[0], hdr[1]
	if err = sc.checkNodeCount(nodes); err != nil {
		return nil, err
	}

	recs := make([]edgeRecord, 0, min(declared, capHint))
	count := 0
	for sc.next() {
		f := sc.fields
		if len(f) < 2 {
			return nil, sc.errorf(ErrFormat, "edge record needs at least 2 fields, got %d", len(f))
		}
		from, err := sc.parseUint(f[0], "from")
		if err != nil {
			return nil, err
		}
		to, err := sc.parseUint(f[1], "to")
		if err != nil {
			return nil, err
		}
		c := uint64(1)
		if len(f) > 2 {
			if c, err = sc.parseUint(f[2], "cost"); err != nil {
				return nil, err
			}
		}
		if from >= uint64(nodes) || to >= uint64(nodes) {
			return nil, sc.errorf(ErrDanglingReference, "edge %d→%d, graph has %d nodes", from, to, nodes)
		}
		recs = append(recs, edgeRecord{from: NodeID(from), to: NodeID(to), c: c})
		count++
	}
	if err = sc.err(); err != nil {
		return nil, err
	}
	if count != declared {
		return nil, sc.errorf(ErrCountMismatch, "declared %d edges, read %d", declared, count)
	}

	g := New(nodes)
	for _, rec := range recs {
		if err = g.AddEdge(rec.from, rec.to, rec.c); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}

	return g, nil
}

// addEdge64 is AddEdge for ids parsed as uint64, which may exceed NodeID.
func (g *Graph) addEdge64(from, to, c uint64) error {
	if from >= uint64(len(g.nodes)) || to >= uint64(len(g.nodes)) {
		return fmt.Errorf("%w: edge %d→%d, graph has %d nodes", ErrDanglingReference, from, to, len(g.nodes))
	}

	return g.AddEdge(NodeID(from), NodeID(to), c)
}

// recordScanner walks whitespace-delimited records, tracking line numbers.
type recordScanner struct {
	sc     *bufio.Scanner
	path   string
	line   int
	fields []string
}

func newRecordScanner(r io.Reader, path string) *recordScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &recordScanner{sc: sc, path: path}
}

// header reads line 1 and parses its first n fields as counts.
func (s *recordScanner) header(n int) ([]int, error) {
	if !s.sc.Scan() {
		if err := s.err(); err != nil {
			return nil, err
		}
		return nil, &LoadError{Path: s.path, Line: 1, Err: fmt.Errorf("%w: missing header", ErrFormat)}
	}
	s.line = 1
	s.fields = strings.Fields(s.sc.Text())
	if len(s.fields) < n {
		return nil, s.errorf(ErrFormat, "header needs %d count(s), got %d field(s)", n, len(s.fields))
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(s.fields[i], 10, 31)
		if err != nil {
			return nil, s.errorf(ErrFormat, "bad count %q", s.fields[i])
		}
		out[i] = int(v)
	}

	return out, nil
}

// checkNodeCount rejects a declared node count above MaxNodes.
func (s *recordScanner) checkNodeCount(n int) error {
	if n > MaxNodes {
		return s.errorf(ErrFormat, "header declares %d nodes, limit is %d", n, MaxNodes)
	}

	return nil
}

// next advances to the next non-blank line.
func (s *recordScanner) next() bool {
	for s.sc.Scan() {
		s.line++
		s.fields = strings.Fields(s.sc.Text())
		if len(s.fields) > 0 {
			return true
		}
	}

	return false
}

func (s *recordScanner) err() error {
	if err := s.sc.Err(); err != nil {
		return &LoadError{Path: s.path, Line: s.line + 1, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}

	return nil
}

func (s *recordScanner) parseUint(field, what string) (uint64, error) {
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, s.errorf(ErrFormat, "bad %s %q", what, field)
	}

	return v, nil
}

func (s *recordScanner) parseFloat(field, what string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, s.errorf(ErrFormat, "bad %s %q", what, field)
	}

	return v, nil
}

func (s *recordScanner) errorf(kind error, format string, args ...interface{}) error {
	return &LoadError{Path: s.path, Line: s.line, Err: fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)}
}

func (s *recordScanner) wrap(err error) error {
	return &LoadError{Path: s.path, Line: s.line, Err: err}
}
