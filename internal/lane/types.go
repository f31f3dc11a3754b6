// Package lane implements the per-width shuffle-and-add reduction trees.
//
// A register is never materialized: each tree reads its lanes in place from
// the source slice, one register-sized chunk at a time.
package lane

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-size integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for every type a register lane can hold.
type Element interface {
	Floats | Integers
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Element]() bool {
	one := T(1)
	return one/(one+one) != 0
}
