// Package split implements vertical elementwise operations by splitting the
// left operand at vector-width alignment boundaries.
//
// At each width the left operand is cut into an unaligned prefix, an aligned
// body that is a whole number of registers, and a suffix. The body is handed
// to a vector kernel in one call, with unaligned loads from the right
// operand; prefix and suffix are handed to the next narrower width, and
// whatever reaches the bottom is processed one element at a time.
//
// Float bodies run on the vek (float32, float64 sub/div) and algo-vecmath
// (float64 add/mul) kernels. Integer bodies run the lanewise loop.
package split

import (
	"unsafe"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/lane"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
)

// Apply sets lhs[i] = lhs[i] op rhs[i] for every i.
//
// len(rhs) must equal len(lhs); this is not checked. Integer Mul and Div have
// no vector kernel and always take the scalar path.
func Apply[T lane.Element](set capability.Set, op naive.Op, lhs, rhs []T) {
	float := lane.IsFloat[T]()
	if (op == naive.Mul || op == naive.Div) && !float {
		naive.Apply(op, lhs, rhs)
		return
	}
	apply(set.Widest, op, float, lhs, rhs)
}

func apply[T lane.Element](w capability.Width, op naive.Op, float bool, lhs, rhs []T) {
	if w == 0 || len(lhs) == 0 {
		naive.Apply(op, lhs, rhs)
		return
	}

	pre, body, post := Bounds[T](w, lhs)
	narrower := w.Narrower()
	tail := pre + body

	apply(narrower, op, float, lhs[:pre], rhs[:pre])

	if body > 0 {
		if float {
			floatKernel(op, lhs[pre:tail], rhs[pre:tail])
		} else {
			naive.Apply(op, lhs[pre:tail], rhs[pre:tail])
		}
	}

	apply(narrower, op, float, lhs[tail:tail+post], rhs[tail:tail+post])
}

// floatKernel applies op to equal-length float slices. T is float32 or
// float64 or a type defined on one of them.
func floatKernel[T lane.Element](op naive.Op, lhs, rhs []T) {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		a, b := reinterpret[float32](lhs), reinterpret[float32](rhs)
		switch op {
		case naive.Add:
			vek32.Add_Inplace(a, b)
		case naive.Sub:
			vek32.Sub_Inplace(a, b)
		case naive.Mul:
			vek32.Mul_Inplace(a, b)
		case naive.Div:
			vek32.Div_Inplace(a, b)
		default:
			panic("split: unknown op " + op.String())
		}
		return
	}

	a, b := reinterpret[float64](lhs), reinterpret[float64](rhs)
	switch op {
	case naive.Add:
		vecmath.AddBlockInPlace(a, b)
	case naive.Sub:
		vek.Sub_Inplace(a, b)
	case naive.Mul:
		vecmath.MulBlockInPlace(a, b)
	case naive.Div:
		vek.Div_Inplace(a, b)
	default:
		panic("split: unknown op " + op.String())
	}
}

// reinterpret views x as a slice of F. F and T must share size and
// representation.
func reinterpret[F, T any](x []T) []F {
	if len(x) == 0 {
		return nil
	}
	return unsafe.Slice((*F)(unsafe.Pointer(unsafe.SliceData(x))), len(x))
}

// Bounds returns the lengths of the unaligned prefix, the aligned body and
// the suffix of x relative to width w. body is a multiple of Lanes[T](w).
// When x never reaches a w-aligned address, the whole slice is prefix.
func Bounds[T lane.Element](w capability.Width, x []T) (pre, body, post int) {
	if len(x) == 0 {
		return 0, 0, 0
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := w.Bytes()

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	mis := int(addr % uintptr(align))
	if mis != 0 {
		gap := align - mis
		if gap%size != 0 {
			// Elements straddle every w boundary; nothing can be aligned.
			return len(x), 0, 0
		}
		pre = gap / size
	}
	if pre >= len(x) {
		return len(x), 0, 0
	}

	n := capability.Lanes[T](w)
	body = (len(x) - pre) / n * n
	post = len(x) - pre - body
	return pre, body, post
}
