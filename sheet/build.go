package sheet

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/milk9111/spriteblit/anim"
	"github.com/milk9111/spriteblit/gfx"
)

// DecodeImage decodes a sprite-sheet image into a premultiplied pixel buffer.
func DecodeImage(r io.Reader) (*gfx.PixelBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: decode image: %w", err)
	}
	return gfx.FromImage(img), nil
}

// Build decodes the spec's image (resolved relative to dir when not
// absolute) and assembles the catalog.
func Build(spec *Spec, dir string) (*anim.Catalog[string], error) {
	path := spec.Image
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open image %s: %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("sheet: image %s: %w", path, err)
	}
	return BuildWith(spec, buf)
}

// BuildWith assembles a catalog from an already-decoded sheet buffer,
// validating every frame rectangle against the sheet bounds.
func BuildWith(spec *Spec, sheetBuf *gfx.PixelBuffer) (*anim.Catalog[string], error) {
	bounds := sheetBuf.Bounds()
	clips := make(map[string]*anim.Clip, len(spec.Clips))
	for action, cs := range spec.Clips {
		if len(cs.Frames) == 0 {
			return nil, fmt.Errorf("sheet: clip %q has no frames", action)
		}
		frames := make([]gfx.Rect, len(cs.Frames))
		durations := make([]int, len(cs.Frames))
		for i, fs := range cs.Frames {
			if fs.W <= 0 || fs.H <= 0 {
				return nil, fmt.Errorf("sheet: clip %q frame %d has size %dx%d", action, i, fs.W, fs.H)
			}
			r := gfx.Rct(int32(fs.X), int32(fs.Y), int32(fs.W), int32(fs.H))
			if !bounds.Contains(r) {
				return nil, fmt.Errorf("sheet: clip %q frame %d %v outside %dx%d sheet", action, i, r, bounds.Size.X, bounds.Size.Y)
			}
			frames[i] = r
			durations[i] = fs.Duration
			if durations[i] <= 0 {
				durations[i] = 1
			}
		}
		clip, err := anim.NewClip(frames, durations, cs.Loop)
		if err != nil {
			return nil, fmt.Errorf("sheet: clip %q: %w", action, err)
		}
		clips[action] = clip
	}
	return anim.NewCatalog(sheetBuf, clips), nil
}

// Load is a convenience that reads a spec file and builds its catalog,
// resolving the image path relative to the spec file's directory.
func Load(filename string) (*anim.Catalog[string], error) {
	spec, err := LoadSpec(filename)
	if err != nil {
		return nil, err
	}
	return Build(spec, filepath.Dir(filename))
}
