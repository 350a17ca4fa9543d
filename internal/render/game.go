package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// ErrGameTerminated is returned when the game loop is terminated via context cancellation.
var ErrGameTerminated = errors.New("game terminated")

// starter is implemented by hosts that must be told when the game loop is live.
type starter interface {
	start()
}

// Game implements ebiten.Game. It turns pointer input into chrome
// operations, lets the chrome drive the window through its host and draws
// the chrome every frame.
type Game struct {
	config       Config
	chrome       *chrome.Chrome
	host         WindowHost
	input        Input
	textRenderer TextRendererInterface
	logger       Logger

	started bool
	// width and height are the last window size seen by Layout.
	width  atomic.Int32
	height atomic.Int32
	// pressed is the control under a left press; it fires on release over
	// the same control.
	pressed    chrome.Hit
	hover      chrome.Hit
	lastScreen chrome.Point
	hasLast    bool

	mu      sync.RWMutex
	running bool
	ctx     context.Context
}

// NewGame creates a Game that drives the real Ebiten window.
func NewGame(config Config, opts chrome.Options) *Game {
	host := newEbitenHost(nopLogger{}, initialGeometry(config))
	return NewGameWithDeps(config, opts, host, ebitenInput{}, NewTextRenderer())
}

// NewGameWithDeps creates a Game with a custom host, input source and text
// renderer. This is useful for testing.
func NewGameWithDeps(config Config, opts chrome.Options, host WindowHost, input Input, renderer TextRendererInterface) *Game {
	if opts.MinWidth <= 0 {
		opts.MinWidth = config.MinWidth
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = config.MinHeight
	}
	renderer.SetFontSize(config.Style.FontSize)
	g := &Game{
		config:       config,
		host:         host,
		input:        input,
		textRenderer: renderer,
		logger:       nopLogger{},
	}
	g.chrome = chrome.New(host, opts)
	w, h := g.chrome.Size()
	g.width.Store(int32(w))
	g.height.Store(int32(h))
	return g
}

func initialGeometry(config Config) chrome.Rect {
	r := chrome.Rect{W: config.Width, H: config.Height}
	if !config.Centered {
		r.X, r.Y = config.X, config.Y
	}
	return r
}

// SetLogger sets the logger for chrome transitions. A nil logger discards.
func (g *Game) SetLogger(logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
	if h, ok := g.host.(*ebitenHost); ok {
		h.logger = logger
	}
}

// SetContext sets a context for the game loop. When the context is cancelled,
// the game loop will terminate gracefully.
func (g *Game) SetContext(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctx = ctx
}

// Update implements ebiten.Game.Update.
// It is called every tick (typically 60 times per second).
func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctx != nil {
		select {
		case <-g.ctx.Done():
			return ErrGameTerminated
		default:
		}
	}

	if !g.started {
		g.started = true
		if s, ok := g.host.(starter); ok {
			s.start()
		}
	}

	width, height := int(g.width.Load()), int(g.height.Load())
	if w, h := g.chrome.Size(); w != width || h != height {
		g.chrome.OnWindowResized(width, height)
	}

	g.handlePointer()

	if g.host.CloseRequested() {
		return ebiten.Termination
	}
	return nil
}

// handlePointer reads one tick of pointer input and routes it to the chrome.
func (g *Game) handlePointer() {
	local := g.input.CursorPosition()
	pos := g.input.WindowPosition().Add(local)
	hit := g.chrome.HitTest(local)
	g.hover = hit

	for _, b := range pointerButtons {
		if g.input.JustPressed(b) {
			g.pointerDown(pos, b, hit)
		}
	}

	// Forward motion only when the pointer moved on screen. A window that
	// follows the pointer keeps the screen position fixed.
	if !g.hasLast || pos != g.lastScreen {
		g.chrome.OnPointerMove(pos, g.input.Held())
		g.lastScreen, g.hasLast = pos, true
	}

	for _, b := range pointerButtons {
		if g.input.JustReleased(b) {
			g.pointerUp(b, hit)
		}
	}
}

func (g *Game) pointerDown(pos chrome.Point, b chrome.MouseButton, hit chrome.Hit) {
	switch {
	case hit.IsControl():
		if b == chrome.ButtonLeft {
			g.pressed = hit
		}
		g.chrome.OnPointerDown(pos, b, false)
	case hit.Kind == chrome.HitGrip && g.chrome.BeginGripResize(pos, b):
		g.logger.Debug("grip resize started", "at", pos.String())
	default:
		g.chrome.OnPointerDown(pos, b, hit.Kind == chrome.HitDrag)
	}
}

func (g *Game) pointerUp(b chrome.MouseButton, hit chrome.Hit) {
	g.chrome.OnPointerUp()
	if b != chrome.ButtonLeft || !g.pressed.IsControl() {
		return
	}
	pressed := g.pressed
	g.pressed = chrome.Hit{}
	if hit == pressed {
		g.activate(pressed)
	}
}

// activate runs the control hit by a completed click.
func (g *Game) activate(h chrome.Hit) {
	switch h.Kind {
	case chrome.HitToggle:
		mode := g.chrome.ToggleFullscreen()
		g.logger.Info("display mode changed", "mode", mode.String())
	case chrome.HitClose:
		g.chrome.Close()
	case chrome.HitAction:
		g.chrome.Trigger(h.Action)
		g.logger.Debug("toolbar action", "action", h.Action.String())
	}
}

// Draw implements ebiten.Game.Draw.
// It is called every frame to render the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	screen.Clear()

	st := g.config.Style
	v := g.chrome.Visual()
	w, h := g.chrome.Size()
	fw, fh := float32(w), float32(h)
	radius := float32(v.CornerRadius)

	fillPath(screen, roundedRect(0, 0, fw, fh, uniformRadii(radius)), st.fade(st.Background))

	if region := g.chrome.Region(); region.Mode == chrome.RegionTitleStrip {
		bar := float32(min(region.StripHeight, h))
		corners := radii{}
		if v.TopBarRounded {
			corners = topRadii(radius)
		}
		fillPath(screen, roundedRect(0, 0, fw, bar, corners), st.fade(st.Button))
	}

	if bw := float32(st.BorderWidth); bw > 0 {
		inset := bw / 2
		border := roundedRect(inset, inset, fw-bw, fh-bw, uniformRadii(max(0, radius-inset)))
		strokePath(screen, border, bw, st.fade(st.Border))
	}

	g.drawTitle(screen)
	g.drawControls(screen, v)
	drawGrip(screen, g.chrome.Grip(), st.fade(st.Grip))
}

// topBarHeight is the height of the band the title and buttons sit in.
func (g *Game) topBarHeight() int {
	if region := g.chrome.Region(); region.Mode == chrome.RegionTitleStrip {
		_, h := g.chrome.Size()
		return min(region.StripHeight, h)
	}
	c := g.chrome.Controls().Close
	return 2*c.Y + c.H
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	st := g.config.Style
	if !st.ShowTitle || g.config.Title == "" {
		return
	}
	c := g.chrome.Controls()
	margin := float64(c.Close.Y)
	left := c.Toggle.X
	for _, ab := range c.Actions {
		left = min(left, ab.Rect.X)
	}
	title := fitText(g.textRenderer, g.config.Title, float64(left)-2*margin)
	if title == "" {
		return
	}
	y := (float64(g.topBarHeight()) - g.textRenderer.LineHeight()) / 2
	g.textRenderer.DrawText(screen, title, margin, y, st.fade(st.Foreground))
}

// fitText shortens s with a trailing ellipsis until it measures at most
// maxWidth. It returns "" when not even one character fits.
func fitText(tr TextRendererInterface, s string, maxWidth float64) string {
	if maxWidth <= 0 {
		return ""
	}
	if w, _ := tr.MeasureText(s); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + "…"
		if w, _ := tr.MeasureText(cut); w <= maxWidth {
			return cut
		}
	}
	return ""
}

func (g *Game) drawControls(screen *ebiten.Image, v chrome.Visual) {
	st := g.config.Style
	c := g.chrome.Controls()
	g.drawButton(screen, c.Close, chrome.Hit{Kind: chrome.HitClose}, chrome.GlyphClose, st.CloseHover)
	g.drawButton(screen, c.Toggle, chrome.Hit{Kind: chrome.HitToggle}, v.ToggleGlyph, st.ButtonHover)
	for _, ab := range c.Actions {
		g.drawButton(screen, ab.Rect, chrome.Hit{Kind: chrome.HitAction, Action: ab.Action}, ab.Action.Glyph(), st.ButtonHover)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, r chrome.Rect, id chrome.Hit, glyph string, hover color.RGBA) {
	st := g.config.Style
	bg := st.Button
	pinned := id.Kind == chrome.HitAction && id.Action == chrome.ActionPin && g.chrome.Floating()
	if g.hover == id || pinned {
		bg = hover
	}
	body := roundedRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), uniformRadii(float32(st.ButtonRadius)))
	fillPath(screen, body, st.fade(bg))
	drawIcon(screen, glyph, r, st.fade(st.Foreground))
}

// Layout implements ebiten.Game.Layout.
// The logical screen always matches the window, so the chrome is laid out
// in window pixels. It does not take the mutex: Update may be blocked in a
// window call while Ebiten asks for the layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width.Store(int32(outsideWidth))
		g.height.Store(int32(outsideHeight))
	}
	return max(1, int(g.width.Load())), max(1, int(g.height.Load()))
}

// Run opens the frameless window and starts the Ebiten game loop.
// This function blocks until the window is closed.
func (g *Game) Run() error {
	g.mu.Lock()
	cfg := g.config
	logger := g.logger
	g.mu.Unlock()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid window config: %w", err)
	}

	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.running = false
		g.mu.Unlock()
	}()

	if cfg.Transparent {
		status := TransparencyStatus()
		logger.Debug("compositor status", "status", status.String())
		if msg := TransparencyWarning(cfg.Transparent, status); msg != "" {
			logger.Warn(msg)
		}
	}

	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSizeLimits(sizeLimit(cfg.MinWidth), sizeLimit(cfg.MinHeight), -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if !cfg.Centered {
		ebiten.SetWindowPosition(cfg.X, cfg.Y)
	}

	logger.Info("window opening", "title", cfg.Title, "size", initialGeometry(cfg).String())
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Transparent,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// sizeLimit maps a non-positive minimum to Ebiten's "no limit".
func sizeLimit(v int) int {
	if v <= 0 {
		return -1
	}
	return v
}

// IsRunning returns whether the game loop is currently running.
func (g *Game) IsRunning() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.running
}

// Mode returns the chrome's display mode.
func (g *Game) Mode() chrome.Mode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.chrome.Mode()
}

// Config returns the configuration the Game was built with.
func (g *Game) Config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.config
}
