package builder

import "math/rand"

// CostFn draws one edge cost from rng.
type CostFn func(rng *rand.Rand) uint64

// ConstantCostFn always returns c.
func ConstantCostFn(c uint64) CostFn {
	return func(*rand.Rand) uint64 { return c }
}

// UniformCostFn draws uniformly from [min, max]. Panics if min > max.
func UniformCostFn(min, max uint64) CostFn {
	if min > max {
		panic("builder: UniformCostFn(min>max)")
	}
	span := max - min + 1
	return func(rng *rand.Rand) uint64 {
		if span == 0 { // full uint64 range
			return rng.Uint64()
		}
		return min + rng.Uint64()%span
	}
}
