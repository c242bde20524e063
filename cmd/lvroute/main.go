// Command lvroute loads a road graph and answers routing questions.
//
// Usage:
//
//	lvroute route      -nodes N -edges E -from A -to B [-heuristic H -scale S -column C]
//	lvroute table      -graph F -source S
//	lvroute components -graph F | -nodes N -edges E
//	lvroute gen        -kind grid|sparse [-rows -cols -n -p -seed] -out-nodes N -out-edges E
//
// Flag defaults come from LVROUTE_* environment variables and an optional
// .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvroute/internal/config"
)

const usage = `usage: lvroute <command> [flags]

commands:
  route       shortest path between two nodes, one "lat, lon" per line
  table       single-source distance table
  components  strongly connected components
  gen         write a synthetic graph
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvroute: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run dispatches one subcommand, writing results to out.
func run(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	switch args[0] {
	case "route":
		return runRoute(args[1:], cfg, out)
	case "table":
		return runTable(args[1:], cfg, out)
	case "components":
		return runComponents(args[1:], cfg, out)
	case "gen":
		return runGen(args[1:], out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	}

	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}
