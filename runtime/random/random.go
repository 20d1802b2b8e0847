// Package random provides the pseudo-random capability consumed by the
// simulator: a uniform draw in [0,1) and a uniform choice from a list.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is an injectable random source.
type Source interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// IntN returns a uniform draw in [0,n).
	IntN(n int) int
}

// New returns a PCG backed source. A zero seed draws one from the clock.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Choice returns a uniformly chosen element of items, which must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
