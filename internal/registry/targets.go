package registry

import (
	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cpu"
)

func init() {
	Global.Register(TargetEntry{
		Name:      capability.Naive().Name,
		Set:       capability.Naive(),
		SIMDLevel: cpu.SIMDNone,
		BuildHint: "-tags purego",
		Priority:  0,
	})
	Global.Register(TargetEntry{
		Name:      capability.SSE2().Name,
		Set:       capability.SSE2(),
		SIMDLevel: cpu.SIMDSSE2,
		Arch:      "amd64",
		BuildHint: "GOAMD64=v1",
		Priority:  10,
	})
	Global.Register(TargetEntry{
		Name:      capability.SSE3().Name,
		Set:       capability.SSE3(),
		SIMDLevel: cpu.SIMDSSE3,
		Arch:      "amd64",
		BuildHint: "GOAMD64=v2",
		Priority:  15,
	})
	Global.Register(TargetEntry{
		Name:      capability.AVX2().Name,
		Set:       capability.AVX2(),
		SIMDLevel: cpu.SIMDAVX2,
		Arch:      "amd64",
		BuildHint: "GOAMD64=v3",
		Priority:  20,
	})
	Global.Register(TargetEntry{
		Name:      capability.AVX512().Name,
		Set:       capability.AVX512(),
		SIMDLevel: cpu.SIMDAVX512,
		Arch:      "amd64",
		BuildHint: "GOAMD64=v4",
		Priority:  30,
	})
	Global.Register(TargetEntry{
		Name:      capability.NEON().Name,
		Set:       capability.NEON(),
		SIMDLevel: cpu.SIMDNEON,
		Arch:      "arm64",
		BuildHint: "GOARCH=arm64",
		Priority:  15,
	})
}
