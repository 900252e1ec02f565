package gfx

import (
	"image"
	"image/color"
	"testing"
)

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}

func TestNewInitializesOpaqueBlack(t *testing.T) {
	b := New(Pt(3, 2))
	if len(b.AsSlice()) != 6 {
		t.Fatalf("expected 6 pixels, got %d", len(b.AsSlice()))
	}
	for i, c := range b.AsSlice() {
		if c != (Color{A: 255}) {
			t.Fatalf("pixel %d = %v, want opaque black", i, c)
		}
	}
}

func TestClear(t *testing.T) {
	b := New(Pt(4, 4))
	c := Opaque(10, 20, 30)
	b.Clear(c)
	for i, got := range b.AsSlice() {
		if got != c {
			t.Fatalf("pixel %d = %v, want %v", i, got, c)
		}
	}
}

func TestFillRect(t *testing.T) {
	b := New(Pt(8, 8))
	c := Opaque(200, 100, 50)
	b.FillRect(Rct(2, 3, 4, 2), c)

	for y := int32(0); y < 8; y++ {
		for x := int32(0); x < 8; x++ {
			got := b.AsSlice()[y*8+x]
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			if inside && got != c {
				t.Fatalf("(%d,%d) = %v, want fill color", x, y, got)
			}
			if !inside && got != (Color{A: 255}) {
				t.Fatalf("(%d,%d) = %v, want untouched", x, y, got)
			}
		}
	}
}

func TestFillRectOutOfBoundsPanics(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
	}{
		{"past_right", Rct(6, 0, 4, 2)},
		{"past_bottom", Rct(0, 6, 2, 4)},
		{"negative_pos", Rct(-1, 0, 2, 2)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New(Pt(8, 8))
			mustPanic(t, func() { b.FillRect(c.r, Opaque(1, 2, 3)) })
		})
	}
}

func TestFillHLine(t *testing.T) {
	b := New(Pt(8, 4))
	c := Opaque(9, 8, 7)
	b.FillHLine(2, 6, 1, c)

	for x := int32(0); x < 8; x++ {
		got := b.AsSlice()[8+x]
		if x >= 2 && x < 6 {
			if got != c {
				t.Fatalf("column %d = %v, want line color", x, got)
			}
		} else if got != (Color{A: 255}) {
			t.Fatalf("column %d = %v, want untouched", x, got)
		}
	}

	// Full-width line: x1 == width is allowed, the interval is half-open.
	b.FillHLine(0, 8, 3, c)
	for x := int32(0); x < 8; x++ {
		if b.AsSlice()[3*8+x] != c {
			t.Fatalf("full-width line missed column %d", x)
		}
	}
}

func TestFillHLinePanics(t *testing.T) {
	cases := []struct {
		name      string
		x0, x1, y int32
	}{
		{"x0_negative", -1, 4, 0},
		{"x1_past_width", 0, 9, 0},
		{"x0_after_x1", 5, 4, 0},
		{"row_past_height", 0, 4, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New(Pt(8, 4))
			mustPanic(t, func() { b.FillHLine(c.x0, c.x1, c.y, Opaque(1, 2, 3)) })
		})
	}
}

func TestFromImagePremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	b := FromImage(img)
	if b.Size() != Pt(2, 1) {
		t.Fatalf("size = %v", b.Size())
	}
	if got := b.AsSlice()[0]; got != (Color{R: 128, G: 0, B: 0, A: 128}) {
		t.Fatalf("half-transparent red = %v, want premultiplied {128 0 0 128}", got)
	}
	if got := b.AsSlice()[1]; got != (Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("opaque pixel = %v", got)
	}
}

func TestToRGBALayout(t *testing.T) {
	b := New(Pt(2, 1))
	b.AsSlice()[0] = Color{R: 1, G: 2, B: 3, A: 4}
	b.AsSlice()[1] = Color{R: 5, G: 6, B: 7, A: 8}

	img := b.ToRGBA()
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Fatalf("Pix[%d] = %d, want %d", i, img.Pix[i], v)
		}
	}
}

func TestPremultiply(t *testing.T) {
	cases := []struct {
		name       string
		r, g, b, a uint8
		want       Color
	}{
		{"opaque", 10, 20, 30, 255, Color{10, 20, 30, 255}},
		{"transparent", 200, 200, 200, 0, Color{}},
		{"half", 255, 0, 100, 128, Color{128, 0, 50, 128}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Premultiply(c.r, c.g, c.b, c.a); got != c.want {
				t.Fatalf("Premultiply = %v, want %v", got, c.want)
			}
		})
	}
}
