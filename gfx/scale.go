package gfx

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ScaleNearest returns the buffer upscaled by an integer factor with
// nearest-neighbor sampling, ready for handoff to a presentation surface.
func (p *PixelBuffer) ScaleNearest(factor int) *image.RGBA {
	if factor < 1 {
		panic(fmt.Sprintf("gfx: scale factor %d must be >= 1", factor))
	}
	src := p.ToRGBA()
	if factor == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(p.size.X)*factor, int(p.size.Y)*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
