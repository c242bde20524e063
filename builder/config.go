// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng     = seeded with defaultSeed
//   • costFn  = UniformCostFn(1, defaultMaxCost)
//   • origin  = (defaultOriginLat, defaultOriginLon)
//   • spacing = defaultSpacing degrees
//   • slack   = defaultSlack

package builder

import "math/rand"

const (
	defaultSeed      = 1
	defaultMaxCost   = 100
	defaultOriginLat = 63.43 // Trondheim
	defaultOriginLon = 10.39
	defaultSpacing   = 0.01 // ~1.1 km north–south
	defaultSlack     = 0.5
	maxSpacing       = 10.0
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng    *rand.Rand
	costFn CostFn

	originLat float64
	originLon float64
	spacing   float64
	slack     float64
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       rand.New(rand.NewSource(defaultSeed)),
		costFn:    UniformCostFn(1, defaultMaxCost),
		originLat: defaultOriginLat,
		originLon: defaultOriginLon,
		spacing:   defaultSpacing,
		slack:     defaultSlack,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
