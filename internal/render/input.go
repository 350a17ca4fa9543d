package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// Input is the pointer state the Game reads once per tick.
// This allows for scripted input in tests.
type Input interface {
	// CursorPosition returns the cursor position relative to the window.
	CursorPosition() chrome.Point
	// WindowPosition returns the window's top-left corner on screen.
	WindowPosition() chrome.Point
	// Held returns the buttons currently held down.
	Held() chrome.Buttons
	// JustPressed reports whether b went down this tick.
	JustPressed(b chrome.MouseButton) bool
	// JustReleased reports whether b went up this tick.
	JustReleased(b chrome.MouseButton) bool
}

// pointerButtons lists the buttons the Game polls, in dispatch order.
var pointerButtons = []chrome.MouseButton{chrome.ButtonLeft, chrome.ButtonRight, chrome.ButtonMiddle}

func toEbitenButton(b chrome.MouseButton) ebiten.MouseButton {
	switch b {
	case chrome.ButtonRight:
		return ebiten.MouseButtonRight
	case chrome.ButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// ebitenInput reads pointer state from Ebiten.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() chrome.Point {
	x, y := ebiten.CursorPosition()
	return chrome.Pt(x, y)
}

func (ebitenInput) WindowPosition() chrome.Point {
	x, y := ebiten.WindowPosition()
	return chrome.Pt(x, y)
}

func (ebitenInput) Held() chrome.Buttons {
	var held chrome.Buttons
	for _, b := range pointerButtons {
		if ebiten.IsMouseButtonPressed(toEbitenButton(b)) {
			held = held.With(b)
		}
	}
	return held
}

func (ebitenInput) JustPressed(b chrome.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(toEbitenButton(b))
}

func (ebitenInput) JustReleased(b chrome.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(toEbitenButton(b))
}
