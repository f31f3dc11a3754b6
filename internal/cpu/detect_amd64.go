//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Each flag covers the whole feature group of a GOAMD64 level, since a
// binary built for that level may use any instruction in it.
func detectFeaturesImpl() Features {
	x := cpu.X86
	v2 := x.HasSSE3 && x.HasSSSE3 && x.HasSSE41 && x.HasSSE42 && x.HasPOPCNT
	v3 := v2 && x.HasAVX && x.HasAVX2 && x.HasFMA && x.HasBMI1 && x.HasBMI2
	v4 := v3 && x.HasAVX512F && x.HasAVX512BW && x.HasAVX512CD && x.HasAVX512DQ && x.HasAVX512VL

	return Features{
		HasSSE2:      x.HasSSE2,
		HasSSE3:      v2,
		HasAVX2:      v3,
		HasAVX512:    v4,
		Architecture: runtime.GOARCH,
	}
}
