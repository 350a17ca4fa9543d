package render

// CompositorStatus is the detected state of the desktop compositor.
type CompositorStatus int

const (
	// CompositorUnknown means detection failed.
	CompositorUnknown CompositorStatus = iota
	// CompositorActive means translucency will be composited.
	CompositorActive
	// CompositorInactive means no compositor was found and the window will
	// likely render opaque.
	CompositorInactive
)

// String returns a human-readable compositor status.
func (cs CompositorStatus) String() string {
	switch cs {
	case CompositorActive:
		return "active"
	case CompositorInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// TransparencyWarning returns a message to log when a transparent window was
// requested but the compositor status says it may not work, or "" when
// nothing needs saying.
func TransparencyWarning(transparent bool, status CompositorStatus) string {
	if !transparent {
		return ""
	}
	switch status {
	case CompositorActive:
		return ""
	case CompositorInactive:
		return "no compositor detected; the translucent window may appear opaque " +
			"(run picom or enable your desktop's compositing)"
	default:
		return "could not detect compositor status; translucency may not work " +
			"without a compositing manager"
	}
}
