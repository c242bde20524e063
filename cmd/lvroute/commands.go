package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/config"
)

var errUsage = errors.New("invalid arguments")

// graphFlags registers the common graph source flags on fs.
func graphFlags(fs *flag.FlagSet, cfg *config.Config) *config.Config {
	c := *cfg
	fs.StringVar(&c.NodesPath, "nodes", cfg.NodesPath, "node file")
	fs.StringVar(&c.EdgesPath, "edges", cfg.EdgesPath, "edge file")
	fs.StringVar(&c.EdgeListPath, "graph", cfg.EdgeListPath, "single-file edge list (used when -nodes/-edges are empty)")
	fs.IntVar(&c.CostColumn, "column", cfg.CostColumn, "edge value column used as cost (0 = first)")

	return &c
}

func loadGraph(c *config.Config) (*core.Graph, error) {
	start := time.Now()
	g, err := c.LoadGraph()
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d nodes, %d edges in %s", g.Len(), g.EdgeCount(), time.Since(start).Round(time.Millisecond))

	return g, nil
}

// nodeID narrows a flag value to a NodeID.
func nodeID(flagName string, v uint64) (core.NodeID, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: -%s %d exceeds the node id range", errUsage, flagName, v)
	}

	return core.NodeID(v), nil
}

func runRoute(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	c := graphFlags(fs, cfg)
	from := fs.Uint64("from", 0, "source node id")
	to := fs.Uint64("to", 0, "target node id")
	fs.StringVar(&c.Heuristic, "heuristic", cfg.Heuristic, "none, haversine or euclidean")
	fs.Float64Var(&c.HeuristicScale, "scale", cfg.HeuristicScale, "heuristic multiplier")
	linear := fs.Bool("linear", false, "use the linear frontier lookup")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := nodeID("from", *from)
	if err != nil {
		return err
	}
	dst, err := nodeID("to", *to)
	if err != nil {
		return err
	}
	h, err := c.SearchHeuristic()
	if err != nil {
		return err
	}
	g, err := loadGraph(c)
	if err != nil {
		return err
	}

	var opts []dijkstra.Option
	if h != nil {
		opts = append(opts, dijkstra.WithHeuristic(h))
	}
	if *linear {
		opts = append(opts, dijkstra.WithLinearLookup())
	}

	start := time.Now()
	p, err := dijkstra.ShortestPath(g, src, dst, opts...)
	if err != nil {
		return err
	}
	log.Printf("settled %d nodes in %s", p.Settled, time.Since(start).Round(time.Microsecond))

	w := bufio.NewWriter(out)
	for _, n := range p.Nodes {
		fmt.Fprintf(w, "%v, %v\n", n.Lat, n.Lon)
	}
	fmt.Fprintf(w, "cost: %s\n", p.Cost)

	return w.Flush()
}

func runTable(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	c := graphFlags(fs, cfg)
	source := fs.Uint64("source", 0, "source node id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := nodeID("source", *source)
	if err != nil {
		return err
	}
	g, err := loadGraph(c)
	if err != nil {
		return err
	}
	tree, err := dijkstra.Dijkstra(g, src)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-8s %-8s %s\n", "node", "prev", "dist")
	for i, d := range tree.Dist {
		id := core.NodeID(i)
		prev := "-"
		if p, ok := tree.Prev(id); ok {
			prev = fmt.Sprint(p)
		} else if !tree.Reachable(id) {
			prev = ""
		}
		dist := d.String()
		if d.IsInfinite() {
			dist = "unreachable"
		}
		fmt.Fprintf(w, "%-8d %-8s %s\n", i, prev, dist)
	}

	return w.Flush()
}

func runComponents(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("components", flag.ContinueOnError)
	c := graphFlags(fs, cfg)
	list := fs.Bool("list", true, "print the members of multi-node components")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := loadGraph(c)
	if err != nil {
		return err
	}
	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "components: %d\n", comps.Count())
	if *list {
		for i, grp := range comps.Groups {
			if len(grp) > 1 {
				fmt.Fprintf(w, "%d: %v\n", i, grp)
			}
		}
	}

	return w.Flush()
}

func runGen(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	kind := fs.String("kind", "grid", "grid or sparse")
	rows := fs.Int("rows", 10, "grid rows")
	cols := fs.Int("cols", 10, "grid columns")
	n := fs.Int("n", 100, "sparse node count")
	p := fs.Float64("p", 0.05, "sparse edge probability")
	maxCost := fs.Uint64("max-cost", 100, "sparse maximum edge cost")
	seed := fs.Int64("seed", 1, "random seed")
	nodesOut := fs.String("out-nodes", "", "node file to write")
	edgesOut := fs.String("out-edges", "", "edge file to write")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nodesOut == "" || *edgesOut == "" {
		return fmt.Errorf("%w: -out-nodes and -out-edges are required", errUsage)
	}

	var (
		g   *core.Graph
		err error
	)
	switch *kind {
	case "grid":
		g, err = builder.Grid(*rows, *cols, builder.WithSeed(*seed))
	case "sparse":
		if *maxCost == 0 {
			return fmt.Errorf("%w: -max-cost must be positive", errUsage)
		}
		g, err = builder.RandomSparse(*n, *p, builder.WithSeed(*seed), builder.WithMaxCost(*maxCost))
	default:
		return fmt.Errorf("%w: unknown -kind %q", errUsage, *kind)
	}
	if err != nil {
		return err
	}
	if err = core.WriteFiles(g, *nodesOut, *edgesOut); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d nodes, %d edges\n", g.Len(), g.EdgeCount())

	return nil
}
