// SPDX-License-Identifier: MIT
// Package: lvbatch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil   (pure/deterministic unless seeded)
//   • bidirectional = false (one canonical orientation per edge)
//   • selfLoops     = false (RandomSparse skips i==i trials)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Mirror each non-loop edge u→v with v→u.
	bidirectional bool
	// Allow RandomSparse to sample self-loops.
	selfLoops bool
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
