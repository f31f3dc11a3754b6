package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-slicesimd"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
	"github.com/cwbudde/algo-slicesimd/parallel"
)

// ErrMismatch is returned by verify when a kernel disagrees with a reference.
var ErrMismatch = errors.New("simdinfo: result mismatch")

type check struct {
	name string
	ok   bool
	got  string
	want string
}

func newVerifyCmd() *cobra.Command {
	var (
		length int
		typ    string
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the kernels against scalar and third-party references",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fmt.Errorf("invalid length %d", length)
			}
			var checks []check
			switch typ {
			case "f32":
				checks = verifyFloat32(length, seed)
			case "f64":
				checks = verifyFloat64(length, seed)
			case "i32":
				var err error
				checks, err = verifyInt32(cmd.Context(), length, seed)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown type %q (want f32, f64 or i32)", typ)
			}
			return report(cmd.OutOrStdout(), checks)
		},
	}
	cmd.Flags().IntVar(&length, "len", 4099, "buffer length")
	cmd.Flags().StringVar(&typ, "type", "f32", "element type: f32, f64, i32")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func report(out io.Writer, checks []check) error {
	failed := 0
	for _, c := range checks {
		status := "ok"
		if !c.ok {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-4s %-28s got %s want %s\n", status, c.name, c.got, c.want)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed: %w", failed, len(checks), ErrMismatch)
	}
	return nil
}

// sumTolerance bounds the difference between two summation orders.
func sumTolerance(mag float64, n int, eps float64) float64 {
	return 2 * eps * (math.Log2(float64(n)+1) + 1) * mag
}

func sumCheck(name string, got, want, mag float64, n int, eps float64) check {
	return check{
		name: name,
		ok:   math.Abs(got-want) <= sumTolerance(mag, n, eps),
		got:  fmt.Sprint(got),
		want: fmt.Sprint(want),
	}
}

func sliceCheck[T slicesimd.Element](name string, got, want []T) check {
	for i := range got {
		if got[i] != want[i] {
			return check{name: name, got: fmt.Sprintf("[%d]=%v", i, got[i]), want: fmt.Sprint(want[i])}
		}
	}
	return check{name: name, ok: true, got: "equal", want: "equal"}
}

func verifyFloat32(n int, seed int64) []check {
	rng := rand.New(rand.NewSource(seed))
	a := make([]float32, n)
	b := make([]float32, n)
	var mag float64
	for i := range a {
		a[i] = rng.Float32()*2 - 1
		b[i] = rng.Float32() + 0.5
		mag += math.Abs(float64(a[i]))
	}
	eps := float64(math.Nextafter32(1, 2) - 1)

	sum := float64(slicesimd.ReduceAdd(a))
	checks := []check{
		sumCheck("ReduceAdd vs scalar", sum, float64(naive.Sum(a)), mag, n, eps),
	}
	if n > 0 {
		checks = append(checks, sumCheck("ReduceAdd vs vek32.Sum", sum, float64(vek32.Sum(a)), mag, n, eps))
	}

	got := append([]float32(nil), a...)
	want := append([]float32(nil), a...)
	slicesimd.DivAssign(got, b)
	naive.Apply(naive.Div, want, b)
	checks = append(checks, sliceCheck("DivAssign vs scalar", got, want))
	return checks
}

func verifyFloat64(n int, seed int64) []check {
	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	b := make([]float64, n)
	var mag float64
	for i := range a {
		a[i] = rng.Float64()*2 - 1
		b[i] = rng.Float64()*2 - 1
		mag += math.Abs(a[i])
	}
	eps := math.Nextafter(1, 2) - 1

	checks := []check{
		sumCheck("ReduceAdd vs scalar", slicesimd.ReduceAdd(a), naive.Sum(a), mag, n, eps),
	}

	got := append([]float64(nil), a...)
	want := append([]float64(nil), a...)
	slicesimd.AddAssign(got, b)
	vecmath.AddBlockInPlace(want, b)
	checks = append(checks, sliceCheck("AddAssign vs vecmath", got, want))

	got = append(got[:0], a...)
	want = append(want[:0], a...)
	slicesimd.MulAssign(got, b)
	vecmath.MulBlockInPlace(want, b)
	checks = append(checks, sliceCheck("MulAssign vs vecmath", got, want))
	return checks
}

func verifyInt32(ctx context.Context, n int, seed int64) ([]check, error) {
	rng := rand.New(rand.NewSource(seed))
	a := make([]int32, n)
	b := make([]int32, n)
	for i := range a {
		a[i] = int32(rng.Uint32())
		b[i] = int32(rng.Uint32())
	}

	want := naive.Sum(a)
	got := slicesimd.ReduceAdd(a)
	checks := []check{{
		name: "ReduceAdd vs scalar",
		ok:   got == want,
		got:  fmt.Sprint(got),
		want: fmt.Sprint(want),
	}}

	if ctx == nil {
		ctx = context.Background()
	}
	par, err := parallel.ReduceAdd(ctx, a, 0)
	if err != nil {
		return nil, fmt.Errorf("parallel reduce: %w", err)
	}
	checks = append(checks, check{
		name: "parallel.ReduceAdd vs scalar",
		ok:   par == want,
		got:  fmt.Sprint(par),
		want: fmt.Sprint(want),
	})

	gotAdd := append([]int32(nil), a...)
	wantAdd := append([]int32(nil), a...)
	slicesimd.SubAssign(gotAdd, b)
	naive.Apply(naive.Sub, wantAdd, b)
	checks = append(checks, sliceCheck("SubAssign vs scalar", gotAdd, wantAdd))
	return checks, nil
}
