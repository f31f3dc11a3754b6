//go:build arm64 && !purego

package capability

// Advanced SIMD is mandatory on ARMv8.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "neon"
	targetSSE3         = false
	targetPairwiseAdd  = true
	targetBlockShuffle = false
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = W128

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
