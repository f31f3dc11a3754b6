package slicesimd

import (
	"fmt"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
	"github.com/cwbudde/algo-slicesimd/internal/split"
)

func mismatch(what string, got, want int) string {
	if what == "" {
		return fmt.Sprintf("slicesimd: slice length mismatch: %d v. %d", got, want)
	}
	return fmt.Sprintf("slicesimd: %s length mismatch: %d v. %d", what, got, want)
}

func assign[T Element](op naive.Op, lhs, rhs []T) {
	if capability.TargetIsNaive {
		naive.Apply(op, lhs, rhs)
		return
	}
	split.Apply(capability.Target(), op, lhs, rhs)
}

func assignPanic[T Element](op naive.Op, lhs, rhs []T) {
	if len(lhs) != len(rhs) {
		panic(mismatch("", len(lhs), len(rhs)))
	}
	assign(op, lhs, rhs)
}

func assignChecked[T Element](op naive.Op, lhs, rhs []T) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	assign(op, lhs, rhs)
	return true
}

// AddAssign sets lhs[i] += rhs[i] for every i.
// Panics if the slices differ in length.
func AddAssign[T Element](lhs, rhs []T) {
	assignPanic(naive.Add, lhs, rhs)
}

// SubAssign sets lhs[i] -= rhs[i] for every i.
// Panics if the slices differ in length.
func SubAssign[T Element](lhs, rhs []T) {
	assignPanic(naive.Sub, lhs, rhs)
}

// MulAssign sets lhs[i] *= rhs[i] for every i.
// Panics if the slices differ in length.
func MulAssign[T Element](lhs, rhs []T) {
	assignPanic(naive.Mul, lhs, rhs)
}

// DivAssign sets lhs[i] /= rhs[i] for every i.
// Panics if the slices differ in length, or on integer division by zero.
func DivAssign[T Element](lhs, rhs []T) {
	assignPanic(naive.Div, lhs, rhs)
}

// AddAssignChecked is like AddAssign but returns false, leaving lhs
// unchanged, if the slices differ in length.
func AddAssignChecked[T Element](lhs, rhs []T) bool {
	return assignChecked(naive.Add, lhs, rhs)
}

// SubAssignChecked is like SubAssign but returns false, leaving lhs
// unchanged, if the slices differ in length.
func SubAssignChecked[T Element](lhs, rhs []T) bool {
	return assignChecked(naive.Sub, lhs, rhs)
}

// MulAssignChecked is like MulAssign but returns false, leaving lhs
// unchanged, if the slices differ in length.
func MulAssignChecked[T Element](lhs, rhs []T) bool {
	return assignChecked(naive.Mul, lhs, rhs)
}

// DivAssignChecked is like DivAssign but returns false, leaving lhs
// unchanged, if the slices differ in length.
func DivAssignChecked[T Element](lhs, rhs []T) bool {
	return assignChecked(naive.Div, lhs, rhs)
}
