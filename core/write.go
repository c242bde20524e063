package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits g in the two-file format Read accepts.
func Write(g *Graph, nodes, edges io.Writer) error {
	nw := bufio.NewWriter(nodes)
	fmt.Fprintln(nw, len(g.nodes))
	var buf []byte
	for i := range g.nodes {
		n := &g.nodes[i]
		buf = buf[:0]
		buf = strconv.AppendUint(buf, uint64(n.ID), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, n.Lat, 'f', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, n.Lon, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := nw.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := nw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	ew := bufio.NewWriter(edges)
	fmt.Fprintln(ew, g.edges)
	for i := range g.nodes {
		for _, e := range g.nodes[i].Edges {
			buf = buf[:0]
			buf = strconv.AppendUint(buf, uint64(e.From), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(e.To), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, e.Cost.Uint64(), 10)
			buf = append(buf, '\n')
			if _, err := ew.Write(buf); err != nil {
				return fmt.Errorf("%w: %w", ErrIO, err)
			}
		}
	}
	if err := ew.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// WriteFiles writes g to nodePath and edgePath, creating or truncating them.
func WriteFiles(g *Graph, nodePath, edgePath string) (err error) {
	nf, err := os.Create(nodePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := nf.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	ef, err := os.Create(edgePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := ef.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	return Write(g, nf, ef)
}
