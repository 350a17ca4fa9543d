package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// whitePixel is the 1x1 source image for vertex-colored triangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// radii holds per-corner radii: top-left, top-right, bottom-right,
// bottom-left.
type radii struct {
	tl, tr, br, bl float32
}

func uniformRadii(r float32) radii {
	return radii{tl: r, tr: r, br: r, bl: r}
}

func topRadii(r float32) radii {
	return radii{tl: r, tr: r}
}

// clamp limits every radius to half the shorter side and to zero from below.
func (r radii) clamp(w, h float32) radii {
	limit := min(w, h) / 2
	c := func(v float32) float32 { return max(0, min(v, limit)) }
	return radii{tl: c(r.tl), tr: c(r.tr), br: c(r.br), bl: c(r.bl)}
}

// roundedRect returns a closed clockwise path for the rectangle at (x, y)
// of size w×h with the given corner radii.
func roundedRect(x, y, w, h float32, r radii) *vector.Path {
	r = r.clamp(w, h)
	p := &vector.Path{}
	p.MoveTo(x+r.tl, y)
	p.LineTo(x+w-r.tr, y)
	if r.tr > 0 {
		p.Arc(x+w-r.tr, y+r.tr, r.tr, -math.Pi/2, 0, vector.Clockwise)
	}
	p.LineTo(x+w, y+h-r.br)
	if r.br > 0 {
		p.Arc(x+w-r.br, y+h-r.br, r.br, 0, math.Pi/2, vector.Clockwise)
	}
	p.LineTo(x+r.bl, y+h)
	if r.bl > 0 {
		p.Arc(x+r.bl, y+h-r.bl, r.bl, math.Pi/2, math.Pi, vector.Clockwise)
	}
	p.LineTo(x, y+r.tl)
	if r.tl > 0 {
		p.Arc(x+r.tl, y+r.tl, r.tl, math.Pi, 3*math.Pi/2, vector.Clockwise)
	}
	p.Close()
	return p
}

// colorVertices sets every vertex to the straight-alpha color clr.
func colorVertices(vertices []ebiten.Vertex, clr color.NRGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vertices {
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	vertices, indices := p.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vertices, clr)
	dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.NRGBA) {
	if clr.A == 0 || width <= 0 {
		return
	}
	opts := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vertices, indices := p.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	colorVertices(vertices, clr)
	dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// iconBox is the square inside a button that holds its icon.
type iconBox struct {
	x, y, size float32
}

func newIconBox(r chrome.Rect) iconBox {
	s := float32(min(r.W, r.H))
	inset := s * 0.3
	return iconBox{x: float32(r.X) + inset, y: float32(r.Y) + inset, size: s - 2*inset}
}

const iconStroke = 1.5

// drawIcon draws the vector form of glyph inside r. The maximize and
// restore glyphs are not in the embedded font, so every button icon is
// drawn as lines.
func drawIcon(dst *ebiten.Image, glyph string, r chrome.Rect, clr color.NRGBA) {
	b := newIconBox(r)
	x0, y0, x1, y1 := b.x, b.y, b.x+b.size, b.y+b.size
	switch glyph {
	case chrome.GlyphClose:
		vector.StrokeLine(dst, x0, y0, x1, y1, iconStroke, clr, true)
		vector.StrokeLine(dst, x1, y0, x0, y1, iconStroke, clr, true)
	case chrome.GlyphMaximize:
		// Four corner brackets.
		arm := b.size / 3
		vector.StrokeLine(dst, x0, y0, x0+arm, y0, iconStroke, clr, true)
		vector.StrokeLine(dst, x0, y0, x0, y0+arm, iconStroke, clr, true)
		vector.StrokeLine(dst, x1, y0, x1-arm, y0, iconStroke, clr, true)
		vector.StrokeLine(dst, x1, y0, x1, y0+arm, iconStroke, clr, true)
		vector.StrokeLine(dst, x0, y1, x0+arm, y1, iconStroke, clr, true)
		vector.StrokeLine(dst, x0, y1, x0, y1-arm, iconStroke, clr, true)
		vector.StrokeLine(dst, x1, y1, x1-arm, y1, iconStroke, clr, true)
		vector.StrokeLine(dst, x1, y1, x1, y1-arm, iconStroke, clr, true)
	case chrome.GlyphRestore:
		// Two overlapping frames.
		off := b.size / 4
		vector.StrokeRect(dst, x0+off, y0, b.size-off, b.size-off, iconStroke, clr, true)
		vector.StrokeRect(dst, x0, y0+off, b.size-off, b.size-off, iconStroke, clr, true)
	case chrome.ActionMinimize.Glyph():
		mid := y0 + b.size/2
		vector.StrokeLine(dst, x0, mid, x1, mid, iconStroke, clr, true)
	case chrome.ActionPin.Glyph():
		mid := x0 + b.size/2
		top := y0 + b.size/4
		bottom := y1 - b.size/4
		vector.StrokeLine(dst, x0, bottom, mid, top, iconStroke, clr, true)
		vector.StrokeLine(dst, mid, top, x1, bottom, iconStroke, clr, true)
	}
}

// drawGrip draws the size grip as three diagonal ridges in the grip box.
func drawGrip(dst *ebiten.Image, g chrome.Grip, clr color.NRGBA) {
	if !g.Visible || clr.A == 0 {
		return
	}
	r := g.Rect()
	right := float32(r.X + r.W - 3)
	bottom := float32(r.Y + r.H - 3)
	span := float32(r.W - 6)
	for i := 1; i <= 3; i++ {
		d := span * float32(i) / 3
		vector.StrokeLine(dst, right-d, bottom, right, bottom-d, 1, clr, true)
	}
}
