package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// WindowHost is the chrome.Host the Game drives. CloseRequested tells the
// game loop to stop after the chrome asked for the window to close.
type WindowHost interface {
	chrome.Host
	CloseRequested() bool
}

// ebitenHost carries out chrome requests with Ebiten's window functions.
// All methods run on the game goroutine. Until the game loop starts it
// reports the configured initial geometry.
type ebitenHost struct {
	logger  Logger
	initial chrome.Rect
	live    bool
	closed  bool
}

func newEbitenHost(logger Logger, initial chrome.Rect) *ebitenHost {
	return &ebitenHost{logger: logger, initial: initial}
}

// start switches Geometry over to the live window.
func (h *ebitenHost) start() {
	h.live = true
}

func (h *ebitenHost) Geometry() chrome.Rect {
	if !h.live {
		return h.initial
	}
	x, y := ebiten.WindowPosition()
	w, hh := ebiten.WindowSize()
	return chrome.Rect{X: x, Y: y, W: w, H: hh}
}

func (h *ebitenHost) Move(p chrome.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

func (h *ebitenHost) Resize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (h *ebitenHost) EnterFullscreen() {
	ebiten.SetFullscreen(true)
	h.logger.Debug("entered fullscreen")
}

func (h *ebitenHost) ExitFullscreen(restore chrome.Rect) {
	ebiten.SetFullscreen(false)
	if restore.Empty() {
		return
	}
	ebiten.SetWindowSize(restore.W, restore.H)
	ebiten.SetWindowPosition(restore.X, restore.Y)
	h.logger.Debug("restored windowed geometry", "geometry", restore.String())
}

func (h *ebitenHost) Minimize() {
	ebiten.MinimizeWindow()
}

func (h *ebitenHost) SetFloating(on bool) {
	ebiten.SetWindowFloating(on)
	h.logger.Debug("window floating changed", "floating", on)
}

func (h *ebitenHost) Close() {
	h.closed = true
	h.logger.Info("close requested")
}

func (h *ebitenHost) CloseRequested() bool {
	return h.closed
}
