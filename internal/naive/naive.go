// Package naive holds the scalar implementations of every slicesimd
// operation. They are used when the build target has no vector width and as
// the reference the vector paths are tested against.
package naive

import "github.com/cwbudde/algo-slicesimd/internal/lane"

// Sum returns the left-to-right sum of x. Integer sums wrap.
// Returns 0 for an empty slice.
func Sum[T lane.Element](x []T) T {
	var sum T
	for i := range x {
		sum += x[i]
	}
	return sum
}
