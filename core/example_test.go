package core_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

func ExampleRead() {
	nodes := "2\n0 63.4305 10.3951\n1 59.9139 10.7522\n"
	edges := "1\n0 1 27000 495000\n"

	g, err := core.Read(strings.NewReader(nodes), strings.NewReader(edges), core.WithCostColumn(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	e := g.Edges(0)[0]
	fmt.Println(g.Len(), "nodes;", e.From, "→", e.To, "costs", e.Cost)
	// Output: 2 nodes; 0 → 1 costs 495000
}

func ExampleLoadError() {
	_, err := core.Read(strings.NewReader("1\n0 63.4 10.4\n"), strings.NewReader("1\n0 7 60\n"))

	var le *core.LoadError
	if errors.As(err, &le) {
		fmt.Println("line", le.Line, errors.Is(err, core.ErrDanglingReference))
	}
	// Output: line 2 true
}
