// Package cost defines Cost, the tagged value used for edge weights, tentative
// distances and heap priorities across lvroute.
//
// A Cost is either a finite non-negative integer or Infinite (unreachable).
//
//   - Add:     Infinite absorbs; a finite sum that overflows uint64 saturates to Infinite.
//   - Compare: strict total order, Infinite is greater than every finite value.
//
// The zero value is Finite(0).
package cost

import (
	"encoding/json"
	"math"
	"strconv"
)

// Cost is a finite non-negative cost or the Infinite sentinel.
type Cost struct {
	value uint64
	inf   bool
}

// Infinite is the unreachable cost.
var Infinite = Cost{inf: true}

// Zero is Finite(0).
var Zero = Cost{}

// Finite returns the finite cost v.
func Finite(v uint64) Cost {
	return Cost{value: v}
}

// IsInfinite reports whether c is the Infinite sentinel.
func (c Cost) IsInfinite() bool { return c.inf }

// Value returns the finite value of c and true, or 0 and false for Infinite.
func (c Cost) Value() (uint64, bool) {
	if c.inf {
		return 0, false
	}

	return c.value, true
}

// Uint64 returns the finite value, or math.MaxUint64 for Infinite.
func (c Cost) Uint64() uint64 {
	if c.inf {
		return math.MaxUint64
	}

	return c.value
}

// Add returns c + o. Infinite + anything = Infinite.
func (c Cost) Add(o Cost) Cost {
	if c.inf || o.inf {
		return Infinite
	}
	sum := c.value + o.value
	if sum < c.value {
		// overflow
		return Infinite
	}

	return Cost{value: sum}
}

// Compare returns -1, 0 or +1 as c is less than, equal to or greater than o.
func (c Cost) Compare(o Cost) int {
	switch {
	case c.inf && o.inf:
		return 0
	case c.inf:
		return 1
	case o.inf:
		return -1
	case c.value < o.value:
		return -1
	case c.value > o.value:
		return 1
	}

	return 0
}

// Less reports whether c < o.
func (c Cost) Less(o Cost) bool { return c.Compare(o) < 0 }

// Min returns the smaller of a and b.
func Min(a, b Cost) Cost {
	if b.Less(a) {
		return b
	}

	return a
}

// String renders the value, or "∞" for Infinite.
func (c Cost) String() string {
	if c.inf {
		return "∞"
	}

	return strconv.FormatUint(c.value, 10)
}

// MarshalJSON encodes a finite cost as a number and Infinite as null.
func (c Cost) MarshalJSON() ([]byte, error) {
	if c.inf {
		return []byte("null"), nil
	}

	return strconv.AppendUint(nil, c.value, 10), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cost) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Infinite
		return nil
	}
	var v uint64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Finite(v)

	return nil
}
