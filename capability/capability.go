// Package capability describes which vector widths a build of slicesimd may
// use.
//
// The capability set is fixed at compile time by build tags: GOARCH, the
// GOAMD64 level (amd64.v1 .. amd64.v4) and the purego tag. Nothing in this
// package inspects the running CPU; see internal/cpu for that.
//
// Target returns the compiled set as a value; it cannot be reassigned. Code
// that should fold at compile time branches on the TargetWidest and
// TargetIsNaive constants instead.
package capability

import "unsafe"

// Width is a vector register width in bits.
type Width int

const (
	// W128 is a 128-bit register (SSE, NEON).
	W128 Width = 128

	// W256 is a 256-bit register (AVX, AVX2).
	W256 Width = 256

	// W512 is a 512-bit register (AVX-512F).
	W512 Width = 512
)

// Bytes returns the register size in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

// Narrower returns the next narrower width, or 0 below W128.
func (w Width) Narrower() Width {
	switch w {
	case W512:
		return W256
	case W256:
		return W128
	default:
		return 0
	}
}

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case W128:
		return "128-bit"
	case W256:
		return "256-bit"
	case W512:
		return "512-bit"
	case 0:
		return "scalar"
	default:
		return "unknown"
	}
}

// Set is the static capability set of a build target.
type Set struct {
	// Name is a short identifier for the target (e.g. "avx2", "neon").
	Name string

	// Widest is the widest supported vector width; 0 means naive (scalar only).
	Widest Width

	// SSE3 reports the movehdup odd/even lane duplicate used by the 128-bit
	// float reduction.
	SSE3 bool

	// PairwiseAdd reports a pairwise (odd+even) add instruction, e.g. NEON faddp.
	PairwiseAdd bool

	// BlockShuffle reports a 128-bit block permute across a 512-bit register
	// (vshuff32x4).
	BlockShuffle bool
}

// Naive returns the scalar-only set.
func Naive() Set { return Set{Name: "naive"} }

// SSE2 returns the x86-64 baseline set (GOAMD64=v1).
func SSE2() Set { return Set{Name: "sse2", Widest: W128} }

// SSE3 returns the GOAMD64=v2 set.
func SSE3() Set { return Set{Name: "sse3", Widest: W128, SSE3: true} }

// AVX2 returns the GOAMD64=v3 set.
func AVX2() Set { return Set{Name: "avx2", Widest: W256, SSE3: true} }

// AVX512 returns the GOAMD64=v4 set.
func AVX512() Set { return Set{Name: "avx512", Widest: W512, SSE3: true, BlockShuffle: true} }

// NEON returns the arm64 set.
func NEON() Set { return Set{Name: "neon", Widest: W128, PairwiseAdd: true} }

// Known returns every known capability set, naive first. The result is a
// fresh slice on every call.
func Known() []Set {
	return []Set{Naive(), SSE2(), SSE3(), AVX2(), AVX512(), NEON()}
}

// Target returns the capability set this binary was compiled for. It is
// always equal to one of Known().
func Target() Set {
	return Set{
		Name:         targetName,
		Widest:       TargetWidest,
		SSE3:         targetSSE3,
		PairwiseAdd:  targetPairwiseAdd,
		BlockShuffle: targetBlockShuffle,
	}
}

// IsNaive reports whether no vector width is available.
func (s Set) IsNaive() bool {
	return s.Widest == 0
}

// Supports reports whether width w is available. A set supporting a width
// also supports every narrower one.
func (s Set) Supports(w Width) bool {
	switch w {
	case W128, W256, W512:
		return w <= s.Widest
	default:
		return false
	}
}

// Widths returns the supported widths, widest first.
func (s Set) Widths() []Width {
	var out []Width
	for w := s.Widest; w != 0; w = w.Narrower() {
		out = append(out, w)
	}
	return out
}

// String returns the set name.
func (s Set) String() string {
	return s.Name
}

// Lanes returns how many elements of type T fit in a register of width w.
func Lanes[T any](w Width) int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0
	}
	return w.Bytes() / size
}

// SupportsWidth reports whether the compiled target supports width w.
func SupportsWidth(w Width) bool {
	return Target().Supports(w)
}

// IsNaive reports whether the compiled target is scalar only.
func IsNaive() bool {
	return TargetIsNaive
}
