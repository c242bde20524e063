package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/cost"
	"github.com/katalvlaran/lvroute/minheap"
)

// job is a minimal Item: id is the lookup key, c the priority.
type job struct {
	id int
	c  cost.Cost
}

func (j *job) Key() int            { return j.id }
func (j *job) Cost() cost.Cost     { return j.c }
func (j *job) SetCost(c cost.Cost) { j.c = c }

func newJob(id int, c uint64) *job { return &job{id: id, c: cost.Finite(c)} }
func infJob(id int) *job           { return &job{id: id, c: cost.Infinite} }

type heapT = minheap.MinHeap[int, *job]

// requireHeapOrder checks parent <= child for every non-root position.
func requireHeapOrder(t *testing.T, h *heapT) {
	t.Helper()
	for i := 1; i < h.Len(); i++ {
		child, _ := h.At(i)
		parent, _ := h.At((i - 1) / 2)
		require.False(t, child.Cost().Less(parent.Cost()),
			"heap order broken at %d: parent %v > child %v", i, parent.Cost(), child.Cost())
	}
}

type HeapSuite struct {
	suite.Suite
	indexed bool
}

func (s *HeapSuite) newHeap() *heapT {
	if s.indexed {
		return minheap.New[int, *job](minheap.WithIndex())
	}

	return minheap.New[int, *job]()
}

func (s *HeapSuite) TestEmpty() {
	h := s.newHeap()
	s.True(h.Empty())
	_, ok := h.PopMin()
	s.False(ok)
	_, ok = h.Peek()
	s.False(ok)
	_, ok = h.FindIndex(newJob(1, 0))
	s.False(ok)
	s.Equal(s.indexed, h.Indexed())
}

func (s *HeapSuite) TestPushPopSorted() {
	h := s.newHeap()
	for i, c := range []uint64{9, 4, 7, 1, 8, 2, 6, 3, 5, 0} {
		h.Push(newJob(i, c))
		requireHeapOrder(s.T(), h)
	}
	s.Equal(10, h.Len())

	var got []uint64
	for !h.Empty() {
		j, ok := h.PopMin()
		s.Require().True(ok)
		v, _ := j.Cost().Value()
		got = append(got, v)
		requireHeapOrder(s.T(), h)
	}
	s.Equal([]uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func (s *HeapSuite) TestInfiniteSinksToBottom() {
	h := s.newHeap()
	h.Push(infJob(0))
	h.Push(newJob(1, 100))
	h.Push(infJob(2))
	h.Push(newJob(3, 1))

	first, _ := h.PopMin()
	second, _ := h.PopMin()
	s.Equal(3, first.id)
	s.Equal(1, second.id)
	third, _ := h.PopMin()
	s.True(third.Cost().IsInfinite())
}

func (s *HeapSuite) TestFindIndexIgnoresCost() {
	h := s.newHeap()
	h.Push(newJob(10, 5))
	h.Push(newJob(20, 3))
	h.Push(newJob(30, 8))

	// probe with a different cost: lookup equality is on the key only
	i, ok := h.FindIndex(infJob(30))
	s.Require().True(ok)
	at, _ := h.At(i)
	s.Equal(30, at.id)
	s.Equal(cost.Finite(8), at.Cost())

	_, ok = h.FindIndex(newJob(99, 8))
	s.False(ok)
}

func (s *HeapSuite) TestDecreaseKeyRoundTrip() {
	h := s.newHeap()
	for i := 0; i < 8; i++ {
		h.Push(newJob(i, uint64(10+i)))
	}

	i, ok := h.FindIndex(newJob(7, 0))
	s.Require().True(ok)
	s.Require().NoError(h.DecreaseKey(i, cost.Finite(1)))
	requireHeapOrder(s.T(), h)

	// the same logical element is found again, now at the root
	j, ok := h.FindIndex(newJob(7, 0))
	s.Require().True(ok)
	s.Equal(0, j)
	root, _ := h.Peek()
	s.Equal(7, root.id)
	s.Equal(cost.Finite(1), root.Cost())
}

func (s *HeapSuite) TestIncreaseKeySiftsDown() {
	h := s.newHeap()
	for i := 0; i < 8; i++ {
		h.Push(newJob(i, uint64(i)))
	}
	s.Require().NoError(h.DecreaseKey(0, cost.Infinite))
	requireHeapOrder(s.T(), h)
	root, _ := h.Peek()
	s.Equal(1, root.id)

	i, ok := h.FindIndex(newJob(0, 0))
	s.Require().True(ok)
	at, _ := h.At(i)
	s.True(at.Cost().IsInfinite())
}

func (s *HeapSuite) TestDecreaseKeyOutOfRange() {
	h := s.newHeap()
	h.Push(newJob(1, 1))
	s.ErrorIs(h.DecreaseKey(1, cost.Zero), minheap.ErrIndexOutOfRange)
	s.ErrorIs(h.DecreaseKey(-1, cost.Zero), minheap.ErrIndexOutOfRange)
	root, _ := h.Peek()
	s.Equal(cost.Finite(1), root.Cost(), "failed DecreaseKey must not mutate")
}

func (s *HeapSuite) TestRandomOperationsKeepRootMinimum() {
	rng := rand.New(rand.NewSource(7))
	h := s.newHeap()
	model := map[int]uint64{}
	next := 0

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(model) == 0:
			c := uint64(rng.Intn(1000))
			h.Push(newJob(next, c))
			model[next] = c
			next++
		case op == 1:
			j, ok := h.PopMin()
			s.Require().True(ok)
			v, _ := j.Cost().Value()
			for _, mv := range model {
				s.Require().LessOrEqual(v, mv)
			}
			delete(model, j.id)
		default:
			keys := make([]int, 0, len(model))
			for k := range model {
				keys = append(keys, k)
			}
			sort.Ints(keys)
			k := keys[rng.Intn(len(keys))]
			i, ok := h.IndexOf(k)
			s.Require().True(ok)
			c := uint64(rng.Intn(1000))
			s.Require().NoError(h.DecreaseKey(i, cost.Finite(c)))
			model[k] = c
		}
		requireHeapOrder(s.T(), h)
		s.Require().Equal(len(model), h.Len())
	}
}

func TestHeapLinear(t *testing.T)  { suite.Run(t, &HeapSuite{indexed: false}) }
func TestHeapIndexed(t *testing.T) { suite.Run(t, &HeapSuite{indexed: true}) }

func TestFromSlice(t *testing.T) {
	items := []*job{newJob(0, 5), newJob(1, 3), newJob(2, 9), newJob(3, 1), newJob(4, 4)}
	h := minheap.FromSlice[int, *job](items, minheap.WithIndex())
	requireHeapOrder(t, h)
	require.Equal(t, 5, h.Len())

	for _, it := range items {
		i, ok := h.FindIndex(it)
		require.True(t, ok)
		at, _ := h.At(i)
		require.Same(t, it, at)
	}
	root, _ := h.PopMin()
	require.Equal(t, 3, root.id)
}

func TestIndexedDuplicatePanics(t *testing.T) {
	h := minheap.New[int, *job](minheap.WithIndex())
	h.Push(newJob(1, 1))
	require.Panics(t, func() { h.Push(newJob(1, 2)) })

	require.Panics(t, func() {
		minheap.FromSlice[int, *job]([]*job{newJob(1, 1), newJob(1, 2)}, minheap.WithIndex())
	})
}

func TestLinearAllowsDuplicateKeys(t *testing.T) {
	h := minheap.New[int, *job]()
	h.Push(newJob(1, 4))
	h.Push(newJob(1, 2))
	require.Equal(t, 2, h.Len())
	root, _ := h.PopMin()
	require.Equal(t, cost.Finite(2), root.Cost())
}

func TestWithCapacityNegativePanics(t *testing.T) {
	require.Panics(t, func() { minheap.New[int, *job](minheap.WithCapacity(-1)) })
}
