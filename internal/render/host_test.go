package render

import (
	"testing"

	"github.com/opd-ai/glasspane/internal/chrome"
)

func TestEbitenHostInitialGeometry(t *testing.T) {
	initial := chrome.Rect{X: 10, Y: 20, W: 500, H: 400}
	h := newEbitenHost(nopLogger{}, initial)
	if got := h.Geometry(); got != initial {
		t.Errorf("Geometry() before start = %v, want %v", got, initial)
	}
}

func TestEbitenHostClose(t *testing.T) {
	h := newEbitenHost(nopLogger{}, chrome.Rect{W: 1, H: 1})
	if h.CloseRequested() {
		t.Fatal("CloseRequested() should start false")
	}
	h.Close()
	if !h.CloseRequested() {
		t.Error("CloseRequested() should be true after Close")
	}
}

func TestToEbitenButton(t *testing.T) {
	seen := map[int]bool{}
	for _, b := range pointerButtons {
		seen[int(toEbitenButton(b))] = true
	}
	if len(seen) != len(pointerButtons) {
		t.Errorf("buttons map to %d distinct Ebiten buttons, want %d", len(seen), len(pointerButtons))
	}
}
