package gfx

import "testing"

func TestPointAdd(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
		want Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{"negative", Pt(-5, 7), Pt(2, -9), Pt(-3, -2)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Add(c.b); got != c.want {
				t.Fatalf("%v.Add(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rct(0, 0, 10, 10)
	cases := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"itself", Rct(0, 0, 10, 10), true},
		{"strictly_inside", Rct(2, 3, 4, 5), true},
		{"touching_bottom_right", Rct(5, 5, 5, 5), true},
		{"past_right_edge", Rct(5, 5, 6, 5), false},
		{"past_bottom_edge", Rct(5, 5, 5, 6), false},
		{"negative_position", Rct(-1, 0, 5, 5), false},
		{"empty_at_corner", Rct(10, 10, 0, 0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := outer.Contains(c.inner); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.inner, got, c.want)
			}
		})
	}
}

func TestRectMoveBy(t *testing.T) {
	r := Rct(1, 2, 3, 4)
	r.MoveBy(10, -5)
	if r != Rct(11, -3, 3, 4) {
		t.Fatalf("MoveBy gave %v", r)
	}
}
