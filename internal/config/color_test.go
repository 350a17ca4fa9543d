package config

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"white", color.RGBA{255, 255, 255, 255}, false},
		{"Transparent", color.RGBA{0, 0, 0, 0}, false},
		{"#e81123", color.RGBA{0xe8, 0x11, 0x23, 255}, false},
		{"e81123", color.RGBA{0xe8, 0x11, 0x23, 255}, false},
		{"#1e1e1edc", color.RGBA{30, 30, 30, 220}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#f008", color.RGBA{255, 0, 0, 0x88}, false},
		{"rgba(30, 30, 30, 220)", color.RGBA{30, 30, 30, 220}, false},
		{"rgba(255,255,255,0.5)", color.RGBA{255, 255, 255, 128}, false},
		{"RGB(1, 2, 3)", color.RGBA{1, 2, 3, 255}, false},
		{"", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"rgba(1,2,3)", color.RGBA{}, true},
		{"rgb(256,0,0)", color.RGBA{}, true},
		{"rgba(0,0,0,1.5)", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	c := color.RGBA{R: 30, G: 30, B: 30, A: 220}
	s := FormatColor(c)
	if s != "#1e1e1edc" {
		t.Errorf("FormatColor = %q", s)
	}
	back, err := ParseColor(s)
	if err != nil || back != c {
		t.Errorf("ParseColor(FormatColor(c)) = %v, %v", back, err)
	}
}
