//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no feature groups: on other architectures only
// the naive build target exists.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
