package slicesimd

import (
	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cascade"
	"github.com/cwbudde/algo-slicesimd/internal/lane"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
)

// Element is the set of element types the package operates on.
type Element = lane.Element

// ReduceAdd returns the sum of all elements of buf. buf is not modified.
// Returns 0 for an empty slice.
//
// Scratch space is taken from an internal pool for the duration of the call.
func ReduceAdd[T Element](buf []T) T {
	if capability.TargetIsNaive || len(buf) < 2 {
		return naive.Sum(buf)
	}
	s := getScratch[T]()
	sum := s.Reduce(buf)
	putScratch(s)
	return sum
}

// ReduceAddInSpace returns the sum of all elements of buf, using space for
// intermediate partial sums. buf is not modified; space is overwritten and its
// prior contents are ignored.
//
// Panics if space is shorter than buf.
func ReduceAddInSpace[T Element](buf, space []T) T {
	if len(space) < len(buf) {
		panic(mismatch("space", len(space), len(buf)))
	}
	if capability.TargetIsNaive {
		return naive.Sum(buf)
	}
	return cascade.InSpace(capability.Target(), buf, space[:len(buf)])
}

// ReduceAddInPlace returns the sum of all elements of buf, using buf itself
// for intermediate partial sums. On return buf[0] holds the sum and the rest
// of buf is unspecified. Returns 0 for an empty slice.
func ReduceAddInPlace[T Element](buf []T) T {
	if capability.TargetIsNaive {
		sum := naive.Sum(buf)
		if len(buf) > 0 {
			buf[0] = sum
		}
		return sum
	}
	return cascade.InPlace(capability.Target(), buf)
}
