// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "Cycle: n=2 < min=3: <sentinel>".
//   • Runtime code never panics; option constructors (WithX) may.
//
// Priority when several validations fail:
//   ErrTooFewVertices -> ErrInvalidProbability -> ErrNeedRandSource -> ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, n1, n2)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not run a constructor, or the
// core graph rejected a mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
