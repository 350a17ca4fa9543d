package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// colorNames maps the color names accepted in theme files to RGBA values.
var colorNames = map[string]color.RGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"crimson":     {R: 220, G: 20, B: 60, A: 255},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// ParseColor parses a color string.
// Supported formats:
//   - Named colors: "white", "black", "transparent", ...
//   - Hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the '#' is optional)
//   - "rgb(r, g, b)" with 0-255 components
//   - "rgba(r, g, b, a)" where a is 0-255, or 0.0-1.0 when written with a dot
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	lower := strings.ToLower(s)

	if c, ok := colorNames[lower]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseColorFunc(lower[5:len(lower)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseColorFunc(lower[4:len(lower)-1], 3)
	}
	return parseHexColor(strings.TrimPrefix(lower, "#"))
}

// FormatColor renders c as "#RRGGBBAA".
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseHexColor(hex string) (color.RGBA, error) {
	switch len(hex) {
	case 3, 4:
		// Expand shorthand: "f0a" -> "ff00aa".
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", hex)
	}

	v := [4]uint8{0, 0, 0, 255}
	for i := 0; i*2 < len(hex); i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		v[i] = uint8(n)
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func parseColorFunc(args string, n int) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.RGBA{}, fmt.Errorf("expected %d color components, got %d", n, len(parts))
	}

	v := [4]uint8{0, 0, 0, 255}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == 3 && strings.Contains(part, ".") {
			f, err := strconv.ParseFloat(part, 64)
			if err != nil || f < 0 || f > 1 {
				return color.RGBA{}, fmt.Errorf("invalid alpha %q", part)
			}
			v[i] = uint8(f*255 + 0.5)
			continue
		}
		c, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color component %q: %w", part, err)
		}
		v[i] = uint8(c)
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
