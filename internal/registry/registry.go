// Package registry lists the build targets slicesimd can be compiled for and
// picks the best one a given host can run.
//
// The kernels themselves are selected statically by build tags; the registry
// exists so tooling can answer "which GOAMD64/GOARCH setting should this
// machine use" from detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cpu"
)

// TargetEntry represents one registered build target.
type TargetEntry struct {
	// Name is a human-readable identifier for this target (e.g., "avx2", "neon").
	Name string

	// Set is the capability set compiled into binaries built for this target.
	Set capability.Set

	// SIMDLevel indicates the host feature group required to run this target.
	SIMDLevel cpu.SIMDLevel

	// Arch is the GOARCH the target applies to; empty means any architecture.
	Arch string

	// BuildHint is the environment or tag that selects this target
	// (e.g., "GOAMD64=v3").
	BuildHint string

	// Priority determines selection order when multiple compatible targets exist.
	// Higher priority targets are preferred. Suggested priorities:
	//   - Naive (SIMDNone): 0
	//   - SSE2: 10
	//   - SSE3/NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int
}

// TargetRegistry manages the registration and lookup of build targets.
type TargetRegistry struct {
	mu      sync.RWMutex
	entries []TargetEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry, populated with every known target.
var Global = &TargetRegistry{}

// Register adds a target to the registry. It is safe to call concurrently,
// but all registrations should complete before the first call to Lookup().
func (r *TargetRegistry) Register(entry TargetEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best target for the given CPU features.
//
// Returns the highest-priority entry whose architecture matches and whose
// feature group the CPU supports. Returns nil if nothing matches, which
// cannot happen while the naive target is registered.
func (r *TargetRegistry) Lookup(features cpu.Features) *TargetEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Arch != "" && entry.Arch != features.Architecture {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// ByName returns the target registered under name.
func (r *TargetRegistry) ByName(name string) (TargetEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return TargetEntry{}, false
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *TargetRegistry) sortByPriority() {
	// Simple insertion sort (registry holds a handful of entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *TargetRegistry) ListEntries() []TargetEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	entries := make([]TargetEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *TargetRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
