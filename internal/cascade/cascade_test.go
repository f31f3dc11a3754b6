package cascade

import (
	"testing"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/lane"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
	"github.com/cwbudde/algo-slicesimd/internal/testutil"
)

var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 127, 128, 129, 1000, 1023, 1024, 1025, 4097}

func checkIntegers[T lane.Integers](t *testing.T, set capability.Set) {
	t.Helper()
	for _, n := range sizes {
		x := testutil.DeterministicBits[T](int64(n), n)
		want := naive.Sum(x)

		space := make([]T, n)
		if got := InSpace(set, x, space); got != want {
			t.Fatalf("%s InSpace %s: got %v, want %v", set, testutil.SizeStr(n), got, want)
		}

		work := testutil.Clone(x)
		got := InPlace(set, work)
		if got != want {
			t.Fatalf("%s InPlace %s: got %v, want %v", set, testutil.SizeStr(n), got, want)
		}
		if n > 0 && work[0] != got {
			t.Fatalf("%s InPlace %s: work[0] = %v, want %v", set, testutil.SizeStr(n), work[0], got)
		}
	}
}

func checkFloats[T lane.Floats](t *testing.T, set capability.Set) {
	t.Helper()
	for _, n := range sizes {
		x := testutil.DeterministicNoise[T](int64(n), 100, n)
		want := naive.Sum(x)

		space := make([]T, n)
		got := InSpace(set, x, space)
		testutil.RequireSumClose(t, x, got, want)

		work := testutil.Clone(x)
		inPlace := InPlace(set, work)
		if inPlace != got {
			t.Fatalf("%s %s: InPlace = %v, InSpace = %v", set, testutil.SizeStr(n), inPlace, got)
		}
		if n > 0 && work[0] != inPlace {
			t.Fatalf("%s %s: work[0] = %v, want %v", set, testutil.SizeStr(n), work[0], inPlace)
		}
	}
}

func TestReduceMatchesNaive(t *testing.T) {
	for _, set := range capability.Known() {
		t.Run(set.Name, func(t *testing.T) {
			checkIntegers[int8](t, set)
			checkIntegers[uint8](t, set)
			checkIntegers[int16](t, set)
			checkIntegers[uint16](t, set)
			checkIntegers[int32](t, set)
			checkIntegers[uint32](t, set)
			checkIntegers[int64](t, set)
			checkIntegers[uint64](t, set)
			checkFloats[float32](t, set)
			checkFloats[float64](t, set)
		})
	}
}

func TestReduceLargeBuffers(t *testing.T) {
	if testing.Short() {
		t.Skip("large buffers skipped in short mode")
	}
	for _, set := range capability.Known() {
		for _, n := range []int{65_537, 120_315, 200_000} {
			ints := testutil.DeterministicBits[int32](int64(n), n)
			if got, want := InPlace(set, testutil.Clone(ints)), naive.Sum(ints); got != want {
				t.Fatalf("%s %s: got %d, want %d", set, testutil.SizeStr(n), got, want)
			}

			floats := testutil.DeterministicNoise[float32](int64(n), 100, n)
			got := InSpace(set, floats, make([]float32, n))
			testutil.RequireSumClose(t, floats, got, naive.Sum(floats))
		}
	}
}

func TestIdentity(t *testing.T) {
	for _, set := range capability.Known() {
		if got := InPlace(set, []float32{}); got != 0 {
			t.Errorf("%s: InPlace(empty) = %v, want 0", set, got)
		}
		if got := InSpace(set, nil, []float64(nil)); got != 0 {
			t.Errorf("%s: InSpace(empty) = %v, want 0", set, got)
		}
		if got := InPlace(set, []float32{-2.5}); got != -2.5 {
			t.Errorf("%s: InPlace([x]) = %v, want -2.5", set, got)
		}
		if got := InSpace(set, []int64{7}, make([]int64, 1)); got != 7 {
			t.Errorf("%s: InSpace([x]) = %v, want 7", set, got)
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	for _, set := range capability.Known() {
		buf := []int32{1, 2, 3, 4, 5}
		if got := InSpace(set, buf, make([]int32, len(buf))); got != 15 {
			t.Errorf("%s: InSpace = %d, want 15", set, got)
		}
		if got := InPlace(set, buf); got != 15 || buf[0] != 15 {
			t.Errorf("%s: InPlace = %d, buf[0] = %d, want 15", set, got, buf[0])
		}
	}
}

func TestInSpaceLeavesBufferUntouched(t *testing.T) {
	for _, set := range capability.Known() {
		x := testutil.DeterministicNoise[float64](7, 1, 1025)
		orig := testutil.Clone(x)
		space := make([]float64, len(x))
		for i := range space {
			space[i] = 1e300
		}
		_ = InSpace(set, x, space)
		testutil.RequireSliceEqual(t, x, orig)
	}
}

// TestInSpaceIgnoresScratchContents guards against partial sums being folded
// back into themselves: garbage in space must never reach the result.
func TestInSpaceIgnoresScratchContents(t *testing.T) {
	for _, set := range capability.Known() {
		for _, n := range sizes {
			x := testutil.Ramp[int64](n)
			want := naive.Sum(x)

			space := make([]int64, n+5)
			for i := range space {
				space[i] = int64(i*1_000_003 + 17)
			}
			if got := InSpace(set, x, space); got != want {
				t.Fatalf("%s %s: got %d, want %d", set, testutil.SizeStr(n), got, want)
			}
		}
	}
}

// TestWidthBoundaries sums buffers of width-1, width and width+1 elements of
// ones, so any element dropped or counted twice at the chunk edges shows up.
func TestWidthBoundaries(t *testing.T) {
	for _, set := range capability.Known() {
		for _, w := range []capability.Width{capability.W128, capability.W256, capability.W512} {
			lanes := capability.Lanes[float32](w)
			for _, n := range []int{lanes - 1, lanes, lanes + 1, 2*lanes - 1, 2 * lanes, 2*lanes + 1} {
				x := make([]float32, n)
				for i := range x {
					x[i] = 1
				}
				if got := InSpace(set, x, make([]float32, n)); got != float32(n) {
					t.Errorf("%s %v %s: InSpace = %v, want %d", set, w, testutil.SizeStr(n), got, n)
				}
				if got := InPlace(set, x); got != float32(n) {
					t.Errorf("%s %v %s: InPlace = %v, want %d", set, w, testutil.SizeStr(n), got, n)
				}
			}
		}
	}
}
