package gfx

import (
	"fmt"
	"math"
)

// Blit composites the from sub-rectangle of src onto p with its top-left
// corner placed at to, using premultiplied source-over blending. The
// placement is clipped against p's bounds; a placement that misses p
// entirely is a no-op. from must be fully contained in src's bounds.
// src and p must be distinct buffers.
func (p *PixelBuffer) Blit(src *PixelBuffer, from Rect, to Point) {
	if !src.Bounds().Contains(from) {
		panic(fmt.Sprintf("gfx: Blit source rect %v outside %dx%d buffer", from, src.size.X, src.size.Y))
	}
	if to.X+from.Size.X < 0 || to.X >= p.size.X || to.Y+from.Size.Y < 0 || to.Y >= p.size.Y {
		return
	}

	// Trim what falls above/left of the destination origin, and what runs
	// past its right/bottom edge.
	xSkip := max(-to.X, 0)
	ySkip := max(-to.Y, 0)
	xCount := min(to.X+from.Size.X, p.size.X) - to.X
	yCount := min(to.Y+from.Size.Y, p.size.Y) - to.Y

	srcPitch := int(src.size.X)
	dstPitch := int(p.size.X)
	for i := int32(0); i < yCount-ySkip; i++ {
		srcOff := int(from.Pos.Y+ySkip+i)*srcPitch + int(from.Pos.X+xSkip)
		dstOff := int(to.Y+ySkip+i)*dstPitch + int(to.X+xSkip)
		srcRow := src.pix[srcOff : srcOff+int(xCount-xSkip)]
		dstRow := p.pix[dstOff : dstOff+int(xCount-xSkip)]
		for j, s := range srcRow {
			dstRow[j] = sourceOver(s, dstRow[j])
		}
	}
}

// sourceOver combines a premultiplied source pixel over a premultiplied
// destination pixel.
func sourceOver(s, d Color) Color {
	fa := float64(s.A) / 255
	ta := float64(d.A) / 255
	inv := 1 - fa
	return Color{
		R: satAdd(s.R, uint8(math.Round(float64(d.R)*inv))),
		G: satAdd(s.G, uint8(math.Round(float64(d.G)*inv))),
		B: satAdd(s.B, uint8(math.Round(float64(d.B)*inv))),
		A: satByte(math.Round((fa + ta*inv) * 255)),
	}
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satByte(v float64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
