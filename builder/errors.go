// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the method name and
// offending values with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadOption indicates a combination of options that cannot produce a valid
// graph, such as a grid extending past a pole.
var ErrBadOption = errors.New("builder: invalid option combination")
