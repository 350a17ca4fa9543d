package chrome

import "testing"

func TestLayoutPlace(t *testing.T) {
	l := DefaultLayout()
	c := l.Place(500, []Action{ActionMinimize, ActionPin})

	if c.Close != (Rect{X: 460, Y: 10, W: 30, H: 30}) {
		t.Errorf("Close = %v", c.Close)
	}
	if c.Toggle != (Rect{X: 424, Y: 10, W: 30, H: 30}) {
		t.Errorf("Toggle = %v", c.Toggle)
	}
	if len(c.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, want 2", len(c.Actions))
	}
	if c.Actions[0].Action != ActionMinimize || c.Actions[0].Rect.X != 352 {
		t.Errorf("Actions[0] = %+v", c.Actions[0])
	}
	if c.Actions[1].Action != ActionPin || c.Actions[1].Rect.X != 388 {
		t.Errorf("Actions[1] = %+v", c.Actions[1])
	}
	if got := l.TopBarHeight(); got != 50 {
		t.Errorf("TopBarHeight() = %d, want 50", got)
	}
}

func TestParseActions(t *testing.T) {
	tests := []struct {
		in      string
		want    []Action
		wantErr bool
	}{
		{"", nil, false},
		{"minimize", []Action{ActionMinimize}, false},
		{" minimize , pin ", []Action{ActionMinimize, ActionPin}, false},
		{"pin,,minimise", []Action{ActionPin, ActionMinimize}, false},
		{"maximize", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseActions(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseActions(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseActions(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseActions(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestActionAndHitStrings(t *testing.T) {
	if ActionPin.String() != "pin" || Action(42).String() != "unknown" {
		t.Error("unexpected Action.String() output")
	}
	if HitGrip.String() != "grip" || HitKind(42).String() != "unknown" {
		t.Error("unexpected HitKind.String() output")
	}
	if !(Hit{Kind: HitAction}).IsControl() || (Hit{Kind: HitDrag}).IsControl() {
		t.Error("IsControl misclassifies hits")
	}
}
