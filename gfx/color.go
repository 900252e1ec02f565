package gfx

// Color is an 8-bit RGBA color whose R/G/B channels are premultiplied by
// alpha. Every Color stored in a PixelBuffer carries this invariant; the
// producing boundaries (image decoding, the constructors below) are the only
// places premultiplication happens, so compositing never has to re-derive it.
type Color struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque color. With alpha 255 the premultiplied
// channels equal the raw channels.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Premultiplied wraps channels that are already premultiplied.
func Premultiplied(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Premultiply converts straight (non-premultiplied) channels into a Color.
func Premultiply(r, g, b, a uint8) Color {
	switch a {
	case 255:
		return Color{R: r, G: g, B: b, A: 255}
	case 0:
		return Color{}
	}
	n := uint32(a)
	return Color{
		R: uint8((uint32(r)*n + 127) / 255),
		G: uint8((uint32(g)*n + 127) / 255),
		B: uint8((uint32(b)*n + 127) / 255),
		A: a,
	}
}
