package chrome

import "testing"

func TestDraggableRegionContains(t *testing.T) {
	tests := []struct {
		name   string
		region DraggableRegion
		p      Point
		want   bool
	}{
		{"whole top-left", WholeWindow(), Pt(0, 0), true},
		{"whole bottom", WholeWindow(), Pt(799, 599), true},
		{"whole outside", WholeWindow(), Pt(800, 10), false},
		{"strip inside", TitleStrip(40), Pt(300, 39), true},
		{"strip below", TitleStrip(40), Pt(300, 40), false},
		{"strip taller than window", TitleStrip(1000), Pt(10, 599), true},
		{"strip taller than window outside", TitleStrip(1000), Pt(10, 600), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.Contains(tt.p, 800, 600); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestParseRegionMode(t *testing.T) {
	for in, want := range map[string]RegionMode{
		"":         RegionWholeWindow,
		"window":   RegionWholeWindow,
		"title":    RegionTitleStrip,
		"titlebar": RegionTitleStrip,
	} {
		got, err := ParseRegionMode(in)
		if err != nil || got != want {
			t.Errorf("ParseRegionMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseRegionMode("sidebar"); err == nil {
		t.Error("ParseRegionMode(sidebar) succeeded")
	}
}
