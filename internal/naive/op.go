package naive

import (
	"fmt"

	"github.com/cwbudde/algo-slicesimd/internal/lane"
)

// Op is a vertical elementwise binary operation.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Apply sets lhs[i] = lhs[i] op rhs[i] for every i in lhs.
// rhs must be at least as long as lhs.
func Apply[T lane.Element](op Op, lhs, rhs []T) {
	rhs = rhs[:len(lhs)]
	switch op {
	case Add:
		for i := range lhs {
			lhs[i] += rhs[i]
		}
	case Sub:
		for i := range lhs {
			lhs[i] -= rhs[i]
		}
	case Mul:
		for i := range lhs {
			lhs[i] *= rhs[i]
		}
	case Div:
		for i := range lhs {
			lhs[i] /= rhs[i]
		}
	default:
		panic("naive: unknown op " + op.String())
	}
}
