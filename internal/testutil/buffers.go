// Package testutil provides deterministic buffers and tolerance helpers shared
// by the slicesimd test suites.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-slicesimd/internal/lane"
)

// DeterministicNoise generates zero-mean uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise[T lane.Floats](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DeterministicBits generates integers from uniformly random bits, so sums
// overflow and wrap frequently.
func DeterministicBits[T lane.Integers](seed int64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(rng.Uint64())
	}
	return out
}

// Ramp returns 1, 2, ..., length converted to T.
func Ramp[T lane.Element](length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// Clone returns a copy of x.
func Clone[T any](x []T) []T {
	return append([]T(nil), x...)
}

// Offset returns a length-element view of a fresh buffer starting skip
// elements past its first element, so the view's address is misaligned
// relative to the allocation.
func Offset[T any](src []T, skip int) []T {
	buf := make([]T, len(src)+skip)
	view := buf[skip : skip+len(src)]
	copy(view, src)
	return view
}
