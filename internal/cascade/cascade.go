// Package cascade implements the width-cascade horizontal reduction.
//
// A working region is reduced at the widest width first: every full chunk of
// lanes is reduced to a scalar by its shuffle-and-add tree and written to the
// slot with the chunk's index; the leftover tail is summed linearly into the
// slot after the last chunk. The region shrinks to those slots and the pass
// repeats until no full chunk remains, then the next narrower width takes
// over. Whatever is left below the narrowest width is summed linearly.
//
// Slot i is never past the offset chunk i was read from, so compacting into
// the region being read never overwrites unread input.
package cascade

import (
	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/lane"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
)

// InPlace reduces work using work itself as the compaction space.
// The result is also stored in work[0]; the rest of work is left with
// unspecified values. Returns 0 for an empty slice.
func InPlace[T lane.Element](set capability.Set, work []T) T {
	switch len(work) {
	case 0:
		return 0
	case 1:
		return work[0]
	}

	for _, w := range set.Widths() {
		for {
			next, ok := pass(set, w, work, work)
			if !ok {
				break
			}
			work = next
		}
	}

	sum := naive.Sum(work)
	work[0] = sum
	return sum
}

// InSpace reduces buf without modifying it, writing partial sums to space.
// space must be at least as long as buf; its prior contents are ignored.
// Returns 0 for an empty slice.
func InSpace[T lane.Element](set capability.Set, buf, space []T) T {
	switch len(buf) {
	case 0:
		return 0
	case 1:
		return buf[0]
	}

	src := buf
	for _, w := range set.Widths() {
		for {
			next, ok := pass(set, w, src, space)
			if !ok {
				break
			}
			// Only the first pass reads from buf; later passes compact the
			// partial sums already in space.
			src = next
			space = next
		}
	}

	return naive.Sum(src)
}

// pass reduces every full chunk of src at width w into dst[0:chunks] and the
// leftover tail into dst[chunks]. It returns the new working region, or
// ok == false when src holds no full chunk. dst may alias src.
func pass[T lane.Element](set capability.Set, w capability.Width, src, dst []T) (next []T, ok bool) {
	n := capability.Lanes[T](w)
	chunks := len(src) / n
	if chunks == 0 {
		return nil, false
	}

	lane.Reduce(w, set, src, dst)

	live := chunks
	if rem := src[chunks*n:]; len(rem) > 0 {
		dst[chunks] = naive.Sum(rem)
		live++
	}
	return dst[:live], true
}
