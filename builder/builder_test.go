package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.RandomSparse(0, 0.5)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomSparse(3, -0.1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(3, 1.5)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.RandomSparse(5, 1, builder.WithCostFn(builder.ConstantCostFn(7)))
	require.NoError(t, err)
	assert.Equal(t, 5*4, g.EdgeCount(), "complete digraph without self-loops")
	for i := 0; i < 5; i++ {
		for _, e := range g.Edges(core.NodeID(i)) {
			assert.NotEqual(t, e.From, e.To)
			v, _ := e.Cost.Value()
			assert.Equal(t, uint64(7), v)
		}
	}
}

func TestRandomSparse_DeterministicAndBounded(t *testing.T) {
	a, err := builder.RandomSparse(30, 0.2, builder.WithSeed(42), builder.WithMaxCost(9))
	require.NoError(t, err)
	b, err := builder.RandomSparse(30, 0.2, builder.WithSeed(42), builder.WithMaxCost(9))
	require.NoError(t, err)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for i := 0; i < a.Len(); i++ {
		id := core.NodeID(i)
		require.Equal(t, a.Edges(id), b.Edges(id))
		for _, e := range a.Edges(id) {
			v, ok := e.Cost.Value()
			require.True(t, ok)
			assert.True(t, v >= 1 && v <= 9, "cost %d outside [1,9]", v)
		}
	}
}

func TestGrid(t *testing.T) {
	_, err := builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Grid(20, 2, builder.WithOrigin(89.5, 0), builder.WithSpacing(0.1))
	assert.ErrorIs(t, err, builder.ErrBadOption)

	g, err := builder.Grid(3, 4, builder.WithOrigin(60, 10), builder.WithSpacing(0.01), builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 12, g.Len())
	// 3 rows × 3 horizontal links + 2 × 4 vertical links, both directions
	assert.Equal(t, 2*(3*3+2*4), g.EdgeCount())

	n, err := g.Node(1*4 + 2)
	require.NoError(t, err)
	assert.InDelta(t, 60.01, n.Lat, 1e-9)
	assert.InDelta(t, 10.02, n.Lon, 1e-9)

	for i := 0; i < g.Len(); i++ {
		u, _ := g.Node(core.NodeID(i))
		for _, e := range u.Edges {
			v, _ := g.Node(e.To)
			c, _ := e.Cost.Value()
			d := u.DistanceTo(&v)
			assert.GreaterOrEqual(t, float64(c), d, "edge %d→%d cheaper than its length", e.From, e.To)
			assert.LessOrEqual(t, float64(c), d*1.5+1)
		}
	}
}

func TestGrid_NoSlack(t *testing.T) {
	g, err := builder.Grid(1, 2, builder.WithSlack(0))
	require.NoError(t, err)
	a, _ := g.Node(0)
	b, _ := g.Node(1)
	c, _ := g.Edges(0)[0].Cost.Value()
	assert.Equal(t, uint64(math.Ceil(a.DistanceTo(&b))), c)
	assert.Equal(t, g.Edges(0)[0].Cost, g.Edges(1)[0].Cost)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxCost(0) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.WithOrigin(91, 0) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithSlack(-1) })
	assert.Panics(t, func() { builder.UniformCostFn(5, 4) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}
