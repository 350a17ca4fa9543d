package render

import "testing"

func TestCompositorStatusString(t *testing.T) {
	tests := []struct {
		status CompositorStatus
		want   string
	}{
		{CompositorActive, "active"},
		{CompositorInactive, "inactive"},
		{CompositorUnknown, "unknown"},
		{CompositorStatus(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestTransparencyWarning(t *testing.T) {
	tests := []struct {
		name        string
		transparent bool
		status      CompositorStatus
		wantMsg     bool
	}{
		{"opaque window", false, CompositorInactive, false},
		{"compositor active", true, CompositorActive, false},
		{"no compositor", true, CompositorInactive, true},
		{"unknown", true, CompositorUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransparencyWarning(tt.transparent, tt.status)
			if (got != "") != tt.wantMsg {
				t.Errorf("TransparencyWarning() = %q, want message: %v", got, tt.wantMsg)
			}
		})
	}
}

func TestIsWaylandFromEnv(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("WAYLAND_DISPLAY", "")
	if IsWayland() {
		t.Error("IsWayland() = true for an X11 session")
	}
}
