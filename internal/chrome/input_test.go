package chrome

import "testing"

func TestButtons(t *testing.T) {
	s := Held(ButtonLeft, ButtonMiddle)
	if !s.Has(ButtonLeft) || !s.Has(ButtonMiddle) || s.Has(ButtonRight) {
		t.Errorf("Held(left, middle) = %v", s)
	}
	if s.String() != "left+middle" {
		t.Errorf("String() = %q", s.String())
	}
	if Buttons(0).String() != "none" {
		t.Errorf("empty String() = %q", Buttons(0).String())
	}
	if s.With(MouseButton(9)) != s || s.Has(MouseButton(-1)) {
		t.Error("out-of-range buttons must be ignored")
	}
}

func TestPointAndRect(t *testing.T) {
	if got := Pt(5, 7).Sub(Pt(2, 10)); got != Pt(3, -3) {
		t.Errorf("Sub = %v", got)
	}
	if got := Pt(5, 7).Add(Pt(2, 10)); got != Pt(7, 17) {
		t.Errorf("Add = %v", got)
	}
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if r.BottomRight() != Pt(40, 60) {
		t.Errorf("BottomRight = %v", r.BottomRight())
	}
	if r.String() != "30x40+10+20" {
		t.Errorf("String = %q", r.String())
	}
	if !(Rect{}).Empty() || r.Empty() {
		t.Error("Empty misreports")
	}
}
