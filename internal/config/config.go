// Package config resolves lvroute settings from an optional .env file and
// LVROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Environment variable names.
const (
	EnvNodes          = "LVROUTE_NODES"
	EnvEdges          = "LVROUTE_EDGES"
	EnvEdgeList       = "LVROUTE_EDGE_LIST"
	EnvAddr           = "LVROUTE_ADDR"
	EnvHeuristic      = "LVROUTE_HEURISTIC"
	EnvHeuristicScale = "LVROUTE_HEURISTIC_SCALE"
	EnvCostColumn     = "LVROUTE_COST_COLUMN"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultAddr      = ":8080"
	DefaultHeuristic = "none"
	DefaultScale     = 1.0
)

var (
	// ErrInvalid indicates a variable that is set but cannot be parsed.
	ErrInvalid = errors.New("config: invalid value")

	// ErrNoGraph indicates neither a node/edge pair nor an edge list is configured.
	ErrNoGraph = errors.New("config: no graph source configured")
)

// Config is the resolved runtime configuration.
type Config struct {
	NodesPath    string
	EdgesPath    string
	EdgeListPath string

	Addr           string
	Heuristic      string
	HeuristicScale float64
	CostColumn     int
}

// Load reads files (default ".env") into the environment without overriding
// variables already set, then resolves Config from the environment. Missing
// .env files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv resolves Config from the process environment only.
func FromEnv() (*Config, error) {
	c := &Config{
		NodesPath:      os.Getenv(EnvNodes),
		EdgesPath:      os.Getenv(EnvEdges),
		EdgeListPath:   os.Getenv(EnvEdgeList),
		Addr:           DefaultAddr,
		Heuristic:      DefaultHeuristic,
		HeuristicScale: DefaultScale,
	}

	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHeuristic)); v != "" {
		c.Heuristic = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHeuristicScale)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvHeuristicScale, v)
		}
		c.HeuristicScale = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvCostColumn)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvCostColumn, v)
		}
		c.CostColumn = n
	}

	if _, err := c.SearchHeuristic(); err != nil {
		return nil, fmt.Errorf("%w: %s=%q scale %v: %w", ErrInvalid, EnvHeuristic, c.Heuristic, c.HeuristicScale, err)
	}

	return c, nil
}

// SearchHeuristic returns the configured heuristic, nil for plain Dijkstra.
func (c *Config) SearchHeuristic() (dijkstra.Heuristic, error) {
	return dijkstra.ParseHeuristic(c.Heuristic, c.HeuristicScale)
}

// LoadGraph loads the configured graph. A node/edge pair wins over an edge
// list when both are set.
func (c *Config) LoadGraph() (*core.Graph, error) {
	switch {
	case c.NodesPath != "" && c.EdgesPath != "":
		return core.Load(c.NodesPath, c.EdgesPath, core.WithCostColumn(c.CostColumn))
	case c.EdgeListPath != "":
		return core.LoadEdgeList(c.EdgeListPath)
	}

	return nil, fmt.Errorf("%w: set %s and %s, or %s", ErrNoGraph, EnvNodes, EnvEdges, EnvEdgeList)
}
