package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/builder"
)

func ExampleGrid() {
	g, err := builder.Grid(2, 3, builder.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Len(), "nodes,", g.EdgeCount(), "edges")
	// Output: 6 nodes, 14 edges
}
