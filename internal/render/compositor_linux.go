//go:build linux

package render

import (
	"os"
	"os/exec"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// compositorAtom is the EWMH selection owned by the compositor of screen 0.
const compositorAtom = "_NET_WM_CM_S0"

// knownCompositors are process names checked when the X server can't be asked.
var knownCompositors = []string{
	"picom",
	"compton",
	"compiz",
	"mutter",
	"kwin_x11",
	"xfwm4",
	"marco",
	"muffin",
}

// DetectCompositor reports whether a compositing manager is running, first
// via the EWMH selection owner and then by looking for known processes.
func DetectCompositor() CompositorStatus {
	if status := detectCompositorAtom(); status != CompositorUnknown {
		return status
	}
	return detectCompositorProcess()
}

func detectCompositorAtom() CompositorStatus {
	conn, err := xgb.NewConn()
	if err != nil {
		return CompositorUnknown
	}
	defer conn.Close()

	if len(xproto.Setup(conn).Roots) == 0 {
		return CompositorUnknown
	}

	atom, err := xproto.InternAtom(conn, false, uint16(len(compositorAtom)), compositorAtom).Reply()
	if err != nil || atom == nil {
		return CompositorUnknown
	}
	owner, err := xproto.GetSelectionOwner(conn, atom.Atom).Reply()
	if err != nil {
		return CompositorUnknown
	}
	if owner.Owner != xproto.WindowNone {
		return CompositorActive
	}
	return CompositorInactive
}

func detectCompositorProcess() CompositorStatus {
	for _, name := range knownCompositors {
		if err := exec.Command("pgrep", "-x", name).Run(); err == nil {
			return CompositorActive
		}
	}
	return CompositorInactive
}

// IsWayland reports whether the session runs on Wayland, where the
// compositor is always present.
func IsWayland() bool {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
		return true
	}
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// TransparencyStatus returns the compositor status relevant to a
// translucent window. Wayland sessions report CompositorActive.
func TransparencyStatus() CompositorStatus {
	if IsWayland() {
		return CompositorActive
	}
	return DetectCompositor()
}
