// Package unchecked provides the slicesimd operations without length checks.
//
// The caller guarantees that both operands of an elementwise operation have
// the same length and that scratch space is at least as long as the buffer
// being reduced. Violations are not reported; depending on which operand is
// shorter they either trip a Go bounds check or leave part of the longer
// operand unprocessed.
package unchecked

import (
	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cascade"
	"github.com/cwbudde/algo-slicesimd/internal/lane"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
	"github.com/cwbudde/algo-slicesimd/internal/split"
)

func apply[T lane.Element](op naive.Op, lhs, rhs []T) {
	if capability.TargetIsNaive {
		naive.Apply(op, lhs, rhs)
		return
	}
	split.Apply(capability.Target(), op, lhs, rhs)
}

// AddAssign sets lhs[i] += rhs[i]. Requires len(rhs) == len(lhs).
func AddAssign[T lane.Element](lhs, rhs []T) {
	apply(naive.Add, lhs, rhs)
}

// SubAssign sets lhs[i] -= rhs[i]. Requires len(rhs) == len(lhs).
func SubAssign[T lane.Element](lhs, rhs []T) {
	apply(naive.Sub, lhs, rhs)
}

// MulAssign sets lhs[i] *= rhs[i]. Requires len(rhs) == len(lhs).
func MulAssign[T lane.Element](lhs, rhs []T) {
	apply(naive.Mul, lhs, rhs)
}

// DivAssign sets lhs[i] /= rhs[i]. Requires len(rhs) == len(lhs).
func DivAssign[T lane.Element](lhs, rhs []T) {
	apply(naive.Div, lhs, rhs)
}

// ReduceAddInSpace returns the sum of buf using space for partial sums.
// Requires len(space) >= len(buf). buf is not modified.
func ReduceAddInSpace[T lane.Element](buf, space []T) T {
	if capability.TargetIsNaive {
		return naive.Sum(buf)
	}
	return cascade.InSpace(capability.Target(), buf, space)
}
