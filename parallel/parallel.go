// Package parallel reduces large buffers on several goroutines.
//
// The buffer is cut into contiguous chunks, each chunk is reduced with
// slicesimd on its own goroutine, and the partial sums are reduced again.
// Integer results equal the single-threaded sum exactly; float results
// differ from it only by summation order.
//
// Usage:
//
//	sum, err := parallel.ReduceAdd(ctx, samples, runtime.GOMAXPROCS(0))
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-slicesimd"
)

// MinChunk is the smallest number of elements handed to one goroutine.
// Buffers shorter than two chunks are reduced on the calling goroutine.
const MinChunk = 16 * 1024

// ReduceAdd returns the sum of all elements of buf using up to workers
// goroutines. If workers <= 0, GOMAXPROCS is used. buf is not modified.
//
// Returns ctx.Err() if the context is cancelled before every chunk was
// reduced.
func ReduceAdd[T slicesimd.Element](ctx context.Context, buf []T, workers int) (T, error) {
	return reduce(ctx, buf, workers, slicesimd.ReduceAdd[T])
}

// ReduceAddInPlace is like ReduceAdd but uses buf itself for partial sums.
// On success buf[0] holds the sum and the rest of buf is unspecified.
func ReduceAddInPlace[T slicesimd.Element](ctx context.Context, buf []T, workers int) (T, error) {
	sum, err := reduce(ctx, buf, workers, slicesimd.ReduceAddInPlace[T])
	if err == nil && len(buf) > 0 {
		buf[0] = sum
	}
	return sum, err
}

// Chunks returns the number of chunks buf of length n is split into for the
// given worker count.
func Chunks(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(1, min(workers, n/MinChunk))
}

func reduce[T slicesimd.Element](ctx context.Context, buf []T, workers int, reduceChunk func([]T) T) (T, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	chunks := Chunks(len(buf), workers)
	if chunks == 1 {
		return reduceChunk(buf), nil
	}

	// Calculate chunk size (ensure all elements are covered)
	size := (len(buf) + chunks - 1) / chunks
	partials := make([]T, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(chunks)

	for i := range chunks {
		if gctx.Err() != nil {
			break
		}
		start := i * size
		end := min(start+size, len(buf))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if start < end {
				partials[i] = reduceChunk(buf[start:end])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	// errgroup only cancels gctx on a goroutine error; a parent cancellation
	// that skipped scheduling shows up here.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return slicesimd.ReduceAdd(partials), nil
}
