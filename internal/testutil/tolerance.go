package testutil

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-slicesimd/internal/lane"
)

// Epsilon returns the machine epsilon of T.
func Epsilon[T lane.Floats]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return float64(math.Nextafter32(1, 2) - 1)
	}
	return math.Nextafter(1, 2) - 1
}

// SumTolerance bounds the difference between two summation orders of x:
// a small multiple of epsilon, scaled by log2(len(x)) and by the sum of
// magnitudes.
func SumTolerance[T lane.Floats](x []T) float64 {
	var mag float64
	for _, v := range x {
		mag += math.Abs(float64(v))
	}
	levels := math.Log2(float64(len(x))+1) + 1
	return 2 * Epsilon[T]() * levels * mag
}

// RequireSumClose fails t if got and want differ by more than SumTolerance(x).
func RequireSumClose[T lane.Floats](t *testing.T, x []T, got, want T) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if tol := SumTolerance(x); diff > tol {
		t.Fatalf("sum of %d elements: got %v, want %v (diff %v > tol %v)", len(x), got, want, diff, tol)
	}
}

// RequireSliceEqual fails t if got and want differ in length or at any index.
func RequireSliceEqual[T lane.Element](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T lane.Floats](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// SizeStr formats a sub-test name for a buffer length.
func SizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}
