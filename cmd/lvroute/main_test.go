package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/config"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func fixture(t *testing.T) (string, string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	np, ep := filepath.Join(dir, "noder.txt"), filepath.Join(dir, "kanter.txt")
	require.NoError(t, os.WriteFile(np, []byte("4\n0 63.4 10.4\n1 63.41 10.41\n2 63.42 10.42\n3 0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(ep, []byte("4\n0 1 5 100\n1 2 3 100\n0 2 10 50\n2 0 1 1\n"), 0o644))

	return np, ep, &config.Config{Heuristic: "none", HeuristicScale: 1}
}

func TestRun_Route(t *testing.T) {
	np, ep, cfg := fixture(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"route", "-nodes", np, "-edges", ep, "-from", "0", "-to", "2"}, cfg, &out))
	assert.Equal(t, "63.4, 10.4\n63.41, 10.41\n63.42, 10.42\ncost: 8\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"route", "-nodes", np, "-edges", ep, "-from", "0", "-to", "2", "-column", "1"}, cfg, &out))
	assert.Equal(t, "63.4, 10.4\n63.42, 10.42\ncost: 50\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"route", "-nodes", np, "-edges", ep, "-from", "0", "-to", "2",
		"-heuristic", "haversine", "-scale", "0.001", "-linear"}, cfg, &out))
	assert.True(t, strings.HasSuffix(out.String(), "cost: 8\n"))

	err := run([]string{"route", "-nodes", np, "-edges", ep, "-from", "0", "-to", "3"}, cfg, &out)
	assert.ErrorContains(t, err, "unreachable")
	err = run([]string{"route", "-nodes", np, "-edges", ep, "-heuristic", "bogus"}, cfg, &out)
	assert.Error(t, err)
}

func TestRun_NodeIDRange(t *testing.T) {
	np, ep, cfg := fixture(t)
	var out bytes.Buffer

	err := run([]string{"route", "-nodes", np, "-edges", ep, "-from", "4294967296", "-to", "2"}, cfg, &out)
	assert.ErrorIs(t, err, errUsage)
	err = run([]string{"route", "-nodes", np, "-edges", ep, "-from", "0", "-to", "4294967298"}, cfg, &out)
	assert.ErrorIs(t, err, errUsage)
	err = run([]string{"table", "-nodes", np, "-edges", ep, "-source", "4294967296"}, cfg, &out)
	assert.ErrorIs(t, err, errUsage)
	assert.Empty(t, out.String())

	err = run([]string{"route", "-nodes", np, "-edges", ep, "-from", "4294967295", "-to", "2"}, cfg, &out)
	assert.ErrorContains(t, err, "node not found")
}

func TestRun_TableAndComponents(t *testing.T) {
	dir := t.TempDir()
	lp := filepath.Join(dir, "vg1")
	require.NoError(t, os.WriteFile(lp, []byte("4 4\n0 1 2\n1 2 2\n0 2 5\n2 0 1\n"), 0o644))
	cfg := &config.Config{Heuristic: "none", HeuristicScale: 1}

	var out bytes.Buffer
	require.NoError(t, run([]string{"table", "-graph", lp, "-source", "0"}, cfg, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"0", "-", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "1", "4"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"3", "unreachable"}, strings.Fields(lines[4]))

	out.Reset()
	require.NoError(t, run([]string{"components", "-graph", lp}, cfg, &out))
	// node 3 finishes last, so its singleton component is found first
	assert.Equal(t, "components: 2\n1: [0 1 2]\n", out.String())
}

func TestRun_GenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	np, ep := filepath.Join(dir, "n"), filepath.Join(dir, "e")
	cfg := &config.Config{Heuristic: "none", HeuristicScale: 1}

	var out bytes.Buffer
	require.NoError(t, run([]string{"gen", "-kind", "grid", "-rows", "3", "-cols", "3", "-out-nodes", np, "-out-edges", ep}, cfg, &out))
	assert.Equal(t, "wrote 9 nodes, 24 edges\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"components", "-nodes", np, "-edges", ep, "-list=false"}, cfg, &out))
	assert.Equal(t, "components: 1\n", out.String())

	assert.ErrorIs(t, run([]string{"gen", "-kind", "grid"}, cfg, &out), errUsage)
	assert.ErrorIs(t, run([]string{"gen", "-kind", "ring", "-out-nodes", np, "-out-edges", ep}, cfg, &out), errUsage)
}

func TestRun_Dispatch(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{}
	assert.Error(t, run(nil, cfg, &out))
	assert.ErrorContains(t, run([]string{"teleport"}, cfg, &out), "unknown command")
	require.NoError(t, run([]string{"help"}, cfg, &out))
	assert.Contains(t, out.String(), "components")
	assert.Error(t, run([]string{"route", "-nope"}, cfg, &out))
}
