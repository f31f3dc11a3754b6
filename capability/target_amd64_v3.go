//go:build amd64.v3 && !amd64.v4 && !purego

package capability

// GOAMD64=v3 guarantees AVX and AVX2.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "avx2"
	targetSSE3         = true
	targetPairwiseAdd  = false
	targetBlockShuffle = false
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = W256

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
