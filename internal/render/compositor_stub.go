//go:build !linux

package render

// DetectCompositor returns CompositorActive: Windows (DWM) and macOS always
// composite.
func DetectCompositor() CompositorStatus {
	return CompositorActive
}

// IsWayland returns false on non-Linux platforms.
func IsWayland() bool {
	return false
}

// TransparencyStatus returns CompositorActive on non-Linux platforms.
func TransparencyStatus() CompositorStatus {
	return CompositorActive
}
