package chrome

import "fmt"

// RegionMode selects which part of the window starts a drag.
type RegionMode int

const (
	// RegionWholeWindow lets a press anywhere on the window body start a drag.
	RegionWholeWindow RegionMode = iota
	// RegionTitleStrip restricts drags to a strip along the top edge.
	RegionTitleStrip
)

// String returns the configuration name of the mode.
func (m RegionMode) String() string {
	switch m {
	case RegionWholeWindow:
		return "window"
	case RegionTitleStrip:
		return "title"
	default:
		return "unknown"
	}
}

// ParseRegionMode parses "window" or "title".
func ParseRegionMode(s string) (RegionMode, error) {
	switch s {
	case "window", "whole", "whole-window", "":
		return RegionWholeWindow, nil
	case "title", "titlebar", "title-strip":
		return RegionTitleStrip, nil
	default:
		return RegionWholeWindow, fmt.Errorf("unknown drag region: %q", s)
	}
}

// DraggableRegion describes the area in which a press-and-drag moves the
// window. It is fixed when the Chrome is built.
type DraggableRegion struct {
	Mode RegionMode
	// StripHeight is the height of the title strip in pixels. Only used with
	// RegionTitleStrip.
	StripHeight int
}

// WholeWindow returns a region covering the entire window.
func WholeWindow() DraggableRegion {
	return DraggableRegion{Mode: RegionWholeWindow}
}

// TitleStrip returns a region covering the top height pixels of the window.
func TitleStrip(height int) DraggableRegion {
	return DraggableRegion{Mode: RegionTitleStrip, StripHeight: height}
}

// Contains reports whether the window-local point p lies inside the region
// for a window of the given size.
func (r DraggableRegion) Contains(p Point, width, height int) bool {
	bounds := Rect{W: width, H: height}
	if r.Mode == RegionTitleStrip {
		bounds.H = min(r.StripHeight, height)
	}
	return bounds.Contains(p)
}
