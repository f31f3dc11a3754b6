//go:build purego || !(amd64 || arm64)

package capability

// Architectures without a vector backend, and purego builds, sum and
// combine element by element.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "naive"
	targetSSE3         = false
	targetPairwiseAdd  = false
	targetBlockShuffle = false
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = 0

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
