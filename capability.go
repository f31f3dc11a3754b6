package slicesimd

import "github.com/cwbudde/algo-slicesimd/capability"

// Width re-exports capability.Width.
type Width = capability.Width

// Target returns the capability set this binary was compiled for.
func Target() capability.Set {
	return capability.Target()
}

// SupportsWidth reports whether vector width w is used by this build.
func SupportsWidth(w Width) bool {
	return capability.SupportsWidth(w)
}

// IsNaive reports whether this build uses scalar loops only.
func IsNaive() bool {
	return capability.TargetIsNaive
}
