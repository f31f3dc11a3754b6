//go:build amd64 && !amd64.v2 && !purego

package capability

// GOAMD64=v1: SSE and SSE2 are part of the x86-64 baseline.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "sse2"
	targetSSE3         = false
	targetPairwiseAdd  = false
	targetBlockShuffle = false
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = W128

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
