package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/config"
)

var allVars = []string{
	config.EnvNodes, config.EnvEdges, config.EnvEdgeList, config.EnvAddr,
	config.EnvHeuristic, config.EnvHeuristicScale, config.EnvCostColumn,
}

// clearEnv unsets every LVROUTE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "") // registers restore on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, c.Addr)
	assert.Equal(t, "none", c.Heuristic)
	assert.Equal(t, 1.0, c.HeuristicScale)
	assert.Zero(t, c.CostColumn)

	h, err := c.SearchHeuristic()
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvNodes, "/data/noder.txt")
	t.Setenv(config.EnvEdges, "/data/kanter.txt")
	t.Setenv(config.EnvAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvHeuristic, "Haversine")
	t.Setenv(config.EnvHeuristicScale, "0.036")
	t.Setenv(config.EnvCostColumn, "1")

	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/data/noder.txt", c.NodesPath)
	assert.Equal(t, "/data/kanter.txt", c.EdgesPath)
	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, "haversine", c.Heuristic)
	assert.Equal(t, 0.036, c.HeuristicScale)
	assert.Equal(t, 1, c.CostColumn)

	h, err := c.SearchHeuristic()
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"scale not a number":  {config.EnvHeuristicScale, "fast"},
		"negative scale":      {config.EnvHeuristicScale, "-2"},
		"column not a number": {config.EnvCostColumn, "drivetime"},
		"negative column":     {config.EnvCostColumn, "-1"},
		"unknown heuristic":   {config.EnvHeuristic, "manhattan"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		for _, k := range allVars {
			_ = os.Unsetenv(k)
		}
	})
	t.Setenv(config.EnvAddr, ":7000") // already set: the file must not override it

	p := filepath.Join(t.TempDir(), "lvroute.env")
	require.NoError(t, os.WriteFile(p, []byte("LVROUTE_EDGE_LIST=/tmp/vg1\nLVROUTE_ADDR=:9999\n"), 0o644))

	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vg1", c.EdgeListPath)
	assert.Equal(t, ":7000", c.Addr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	np, ep, lp := filepath.Join(dir, "n"), filepath.Join(dir, "e"), filepath.Join(dir, "l")
	require.NoError(t, os.WriteFile(np, []byte("2\n0 1 1\n1 2 2\n"), 0o644))
	require.NoError(t, os.WriteFile(ep, []byte("1\n0 1 9 4\n"), 0o644))
	require.NoError(t, os.WriteFile(lp, []byte("3 2\n0 1\n1 2\n"), 0o644))

	g, err := (&config.Config{NodesPath: np, EdgesPath: ep, CostColumn: 1}).LoadGraph()
	require.NoError(t, err)
	v, _ := g.Edges(0)[0].Cost.Value()
	assert.Equal(t, uint64(4), v)

	g, err = (&config.Config{EdgeListPath: lp}).LoadGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	_, err = (&config.Config{NodesPath: np}).LoadGraph()
	assert.ErrorIs(t, err, config.ErrNoGraph)
}
