//go:build amd64.v2 && !amd64.v3 && !purego

package capability

// GOAMD64=v2 adds SSE3, so the 128-bit float reduction can use movehdup.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "sse3"
	targetSSE3         = true
	targetPairwiseAdd  = false
	targetBlockShuffle = false
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = W128

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
