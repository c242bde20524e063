package minheap

import (
	"errors"

	"github.com/katalvlaran/lvroute/cost"
)

// Sentinel errors for heap operations.
var (
	// ErrIndexOutOfRange indicates DecreaseKey was given a position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("minheap: index out of range")

	// ErrDuplicateKey indicates a Push of a key that is already present in an indexed heap.
	ErrDuplicateKey = errors.New("minheap: key already present")
)

// Item is the payload contract of a MinHeap.
//
// Key is the lookup identity used by FindIndex; Cost is the heap order.
// The two are deliberately separate: two items with the same Key are the same
// logical element whatever their costs.
//
// SetCost is called on the stored value, so T is normally a pointer type.
type Item[K comparable] interface {
	Key() K
	Cost() cost.Cost
	SetCost(cost.Cost)
}

// Options configures a MinHeap.
type Options struct {
	// Indexed keeps a Key → position side table so FindIndex is O(1).
	Indexed bool

	// Capacity preallocates the backing slice.
	Capacity int
}

// Option is a functional option for New and FromSlice.
type Option func(*Options)

// WithIndex enables the Key → position side table.
func WithIndex() Option {
	return func(o *Options) { o.Indexed = true }
}

// WithCapacity preallocates room for n items. Panics if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("minheap: capacity must be non-negative")
		}
		o.Capacity = n
	}
}
