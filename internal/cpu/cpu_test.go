package cpu

import (
	"runtime"
	"slices"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 host without SSE2")
	}
	if runtime.GOARCH == "arm64" && !f.HasNEON {
		t.Error("arm64 host without NEON")
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})
	f := DetectFeatures()
	if !f.HasAVX2 || f.HasAVX512 {
		t.Errorf("forced features not returned: %+v", f)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Errorf("after reset Architecture = %q", got.Architecture)
	}
}

func TestSupports(t *testing.T) {
	f := Features{HasSSE2: true, HasSSE3: true}
	cases := []struct {
		level SIMDLevel
		want  bool
	}{
		{SIMDNone, true},
		{SIMDSSE2, true},
		{SIMDSSE3, true},
		{SIMDAVX2, false},
		{SIMDAVX512, false},
		{SIMDNEON, false},
		{SIMDLevel(99), false},
	}
	for _, tc := range cases {
		if got := Supports(f, tc.level); got != tc.want {
			t.Errorf("Supports(%s) = %v, want %v", tc.level, got, tc.want)
		}
	}

	f.ForceGeneric = true
	if Supports(f, SIMDSSE2) || !Supports(f, SIMDNone) {
		t.Error("ForceGeneric should only support SIMDNone")
	}
}

func TestList(t *testing.T) {
	f := Features{HasSSE2: true, HasSSE3: true, HasAVX2: true}
	want := []string{"SSE2", "SSE3", "AVX2"}
	if got := f.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if got := (Features{}).List(); len(got) != 0 {
		t.Errorf("empty List() = %v", got)
	}
	if SIMDLevel(99).String() != "Unknown" {
		t.Error("unknown level string")
	}
}
