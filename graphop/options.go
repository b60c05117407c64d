// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// options.go — functional options for MapParentIDToSubgraphID.
//
// Contract:
//   • Options resolve into an immutable mapConfig (later options win).
//   • Option constructors panic on meaningless inputs; the transforms
//     themselves never panic.

package graphop

import "runtime"

// Strategy selects how parent ids are indexed for lookup.
type Strategy int

const (
	// StrategyAuto uses binary search when the parent ids are sorted and a
	// hash map otherwise.
	StrategyAuto Strategy = iota
	// StrategySorted forces binary search; the parent must be sorted.
	StrategySorted
	// StrategyHashed forces a hash map regardless of order.
	StrategyHashed
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategySorted:
		return "sorted"
	case StrategyHashed:
		return "hashed"
	default:
		return "auto"
	}
}

// defaultGrain is the smallest number of queries handed to one worker.
const defaultGrain = 4096

// MapOption customizes MapParentIDToSubgraphID.
type MapOption func(*mapConfig)

type mapConfig struct {
	workers  int      // max concurrent workers; resolved to GOMAXPROCS when 0
	grain    int      // minimum queries per worker
	strategy Strategy // lookup structure
}

func newMapConfig(opts ...MapOption) mapConfig {
	cfg := mapConfig{grain: defaultGrain, strategy: StrategyAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// WithWorkers caps the number of goroutines resolving queries. Zero means
// GOMAXPROCS. Panics on a negative value.
func WithWorkers(n int) MapOption {
	if n < 0 {
		panic("graphop: WithWorkers(n<0)")
	}
	return func(c *mapConfig) { c.workers = n }
}

// WithGrain sets the minimum number of queries per worker; small query
// arrays are then resolved on the calling goroutine. Panics if n < 1.
func WithGrain(n int) MapOption {
	if n < 1 {
		panic("graphop: WithGrain(n<1)")
	}
	return func(c *mapConfig) { c.grain = n }
}

// WithStrategy forces a lookup strategy.
func WithStrategy(s Strategy) MapOption {
	return func(c *mapConfig) { c.strategy = s }
}
