//go:build amd64.v4 && !purego

package capability

// GOAMD64=v4 guarantees AVX-512F, BW, DQ and VL.

// The compiled capability set, assembled into a Set by Target.
const (
	targetName         = "avx512"
	targetSSE3         = true
	targetPairwiseAdd  = false
	targetBlockShuffle = true
)

// TargetWidest is the widest vector width of the compiled target.
const TargetWidest Width = W512

// TargetIsNaive reports whether the compiled target has no vector width.
const TargetIsNaive = TargetWidest == 0
