// Package cpu probes the SIMD features of the host the binary runs on.
//
// slicesimd kernels never consult this package: their capability set is fixed
// at build time (see package capability). The probe answers a different
// question, namely which build target the current host could run, and backs
// the simdinfo report.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set level a build target requires.
// Levels are not comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates the x86-64 baseline (GOAMD64=v1).
	SIMDSSE2

	// SIMDSSE3 indicates the x86-64-v2 level: SSE3 through SSE4.2 and POPCNT.
	SIMDSSE3

	// SIMDAVX2 indicates the x86-64-v3 level: AVX, AVX2, FMA, BMI1 and BMI2.
	SIMDAVX2

	// SIMDAVX512 indicates the x86-64-v4 level: AVX-512 F, BW, CD, DQ and VL.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDSSE3:
		return "SSE3"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes host capabilities relevant to build target selection.
type Features struct {
	// x86/amd64 levels
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasSSE3   bool // x86-64-v2 feature group
	HasAVX2   bool // x86-64-v3 feature group
	HasAVX512 bool // x86-64-v4 feature group

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Report only the naive target (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features can run code built for the
// specified SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDSSE3:
		return features.HasSSE3
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// List returns the names of the detected feature groups, in level order.
func (f Features) List() []string {
	var out []string
	for _, level := range []SIMDLevel{SIMDSSE2, SIMDSSE3, SIMDAVX2, SIMDAVX512, SIMDNEON} {
		if Supports(f, level) {
			out = append(out, level.String())
		}
	}
	return out
}
