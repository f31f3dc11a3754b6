package slicesimd

import (
	"testing"

	"github.com/cwbudde/algo-slicesimd/internal/naive"
)

var raceEnabled bool

// maxSlowdown bounds how much slower a vector path may run than the scalar
// loop on the same input. The bound is loose so scheduling noise does not
// trip it; a path that copies whole registers per chunk is well past it.
const maxSlowdown = 3.0

func nsPerOp(fn func()) float64 {
	r := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fn()
		}
	})
	return float64(r.T.Nanoseconds()) / float64(r.N)
}

func checkSlowdown(t *testing.T, name string, vector, scalar func()) {
	t.Helper()
	v, s := nsPerOp(vector), nsPerOp(scalar)
	t.Logf("%s: %.0f ns/op, scalar %.0f ns/op (%.2fx)", name, v, s, v/s)
	if v > maxSlowdown*s {
		t.Errorf("%s is %.1fx slower than the scalar loop", name, v/s)
	}
}

func TestVectorPathsKeepUpWithScalar(t *testing.T) {
	if testing.Short() || raceEnabled || testing.CoverMode() != "" {
		t.Skip("timing comparison skipped in short, race and coverage runs")
	}
	if IsNaive() {
		t.Skip("scalar build")
	}

	const n = 64 * 1024
	f32 := benchInput(n)
	ones := make([]float32, n)
	for i := range ones {
		ones[i] = 1
	}
	i32 := make([]int32, n)
	i32src := make([]int32, n)
	for i := range i32 {
		i32[i] = int32(i)
		i32src[i] = 3
	}

	checkSlowdown(t, "ReduceAdd float32",
		func() { _ = ReduceAdd(f32) },
		func() { _ = naive.Sum(f32) })
	checkSlowdown(t, "ReduceAdd int32",
		func() { _ = ReduceAdd(i32) },
		func() { _ = naive.Sum(i32) })
	checkSlowdown(t, "MulAssign float32",
		func() { MulAssign(f32, ones) },
		func() { naive.Apply(naive.Mul, f32, ones) })
	checkSlowdown(t, "AddAssign int32",
		func() { AddAssign(i32, i32src) },
		func() { naive.Apply(naive.Add, i32, i32src) })
}
