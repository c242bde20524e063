// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors and never panic.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed seeds the generator for reproducible output.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxCost draws RandomSparse edge costs uniformly from [1, max].
// Panics if max == 0.
func WithMaxCost(max uint64) BuilderOption {
	if max == 0 {
		panic("builder: WithMaxCost(0)")
	}
	return func(c *builderConfig) {
		c.costFn = UniformCostFn(1, max)
	}
}

// WithCostFn overrides the RandomSparse edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithOrigin places grid node 0 at (lat, lon). Panics outside the valid
// coordinate range.
func WithOrigin(lat, lon float64) BuilderOption {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		panic("builder: WithOrigin out of range")
	}
	return func(c *builderConfig) {
		c.originLat, c.originLon = lat, lon
	}
}

// WithSpacing sets the grid step in degrees along both axes. Panics unless
// 0 < deg <= 10.
func WithSpacing(deg float64) BuilderOption {
	if !(deg > 0 && deg <= maxSpacing) {
		panic("builder: WithSpacing out of range")
	}
	return func(c *builderConfig) {
		c.spacing = deg
	}
}

// WithSlack sets the maximum extra fraction added to grid edge costs.
// 0 makes every grid cost its rounded-up length. Panics if s < 0.
func WithSlack(s float64) BuilderOption {
	if !(s >= 0) {
		panic("builder: WithSlack(s<0)")
	}
	return func(c *builderConfig) {
		c.slack = s
	}
}
