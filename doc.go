// Package slicesimd provides width-adaptive SIMD arithmetic over numeric
// slices: horizontal sum reduction and in-place elementwise add, subtract,
// multiply and divide.
//
// The vector widths used are fixed when the package is compiled (see package
// capability): builds for GOAMD64=v3 use 256-bit and 128-bit registers,
// GOAMD64=v4 adds 512-bit, arm64 uses 128-bit NEON, and the purego tag or an
// unknown architecture selects plain scalar loops. There is no run-time CPU
// dispatch.
//
// Integer arithmetic wraps. Float sums are reduced in a tree order that
// depends on the build target, so they may differ from a left-to-right sum in
// the last bits.
//
// Length mismatches between operands are handled three ways: the plain
// functions panic, the Checked variants report false without touching the
// destination, and package unchecked leaves the precondition to the caller.
package slicesimd
