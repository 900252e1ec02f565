// Package gfx implements the software compositor: premultiplied RGBA pixel
// buffers with solid fills and a clipped source-over blit.
package gfx

import (
	"fmt"
	"image"
)

// PixelBuffer is a CPU-side pixel buffer of premultiplied colors stored
// row-major: the pixel at (x, y) lives at index y*width + x. A buffer is
// never resized after creation.
type PixelBuffer struct {
	pix  []Color
	size Point
}

// New creates a buffer of the given size, initialized to opaque black.
func New(size Point) *PixelBuffer {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("gfx: negative buffer size %dx%d", size.X, size.Y))
	}
	pix := make([]Color, int(size.X)*int(size.Y))
	for i := range pix {
		pix[i] = Color{A: 255}
	}
	return &PixelBuffer{pix: pix, size: size}
}

// FromImage converts a decoded image into a premultiplied buffer. The
// stdlib RGBA() contract already yields alpha-premultiplied channels, so no
// further conversion is needed here.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	p := &PixelBuffer{
		pix:  make([]Color, w*h),
		size: Pt(int32(w), int32(h)),
	}
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			p.pix[i] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			i++
		}
	}
	return p
}

// Size returns the buffer dimensions.
func (p *PixelBuffer) Size() Point {
	return p.size
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int32 {
	return p.size.X
}

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int32 {
	return p.size.Y
}

// Bounds returns the buffer's extent as a Rect at the origin.
func (p *PixelBuffer) Bounds() Rect {
	return Rect{Size: p.size}
}

// AsSlice returns the raw premultiplied pixel data, row-major. Callers must
// treat the slice as read-only; it aliases the buffer's storage.
func (p *PixelBuffer) AsSlice() []Color {
	return p.pix
}

// Clear sets every pixel to c.
func (p *PixelBuffer) Clear(c Color) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// FillRect sets every pixel inside r to c. r must lie entirely within the
// buffer bounds; no clipping is performed (unlike Blit).
func (p *PixelBuffer) FillRect(r Rect, c Color) {
	if !p.Bounds().Contains(r) {
		panic(fmt.Sprintf("gfx: FillRect %v outside %dx%d buffer", r, p.size.X, p.size.Y))
	}
	w := int(p.size.X)
	for y := int(r.Pos.Y); y < int(r.Pos.Y+r.Size.Y); y++ {
		row := p.pix[y*w+int(r.Pos.X) : y*w+int(r.Pos.X+r.Size.X)]
		for i := range row {
			row[i] = c
		}
	}
}

// FillHLine fills columns [x0, x1) on row y with c.
func (p *PixelBuffer) FillHLine(x0, x1, y int32, c Color) {
	if x0 < 0 || x0 > x1 || x1 > p.size.X || y < 0 || y >= p.size.Y {
		panic(fmt.Sprintf("gfx: FillHLine [%d,%d) on row %d outside %dx%d buffer", x0, x1, y, p.size.X, p.size.Y))
	}
	start := int(y)*int(p.size.X) + int(x0)
	row := p.pix[start : start+int(x1-x0)]
	for i := range row {
		row[i] = c
	}
}

// ToRGBA copies the buffer into an image.RGBA. image.RGBA is premultiplied,
// matching the buffer's own encoding, so channels copy through unchanged.
func (p *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(p.size.X), int(p.size.Y)))
	for i, c := range p.pix {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}
