// Command preview renders every clip of a sprite-sheet spec into a software
// pixel buffer and presents it in a window. The spec and its image are
// watched so edits show up without restarting.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spriteblit/anim"
	"github.com/milk9111/spriteblit/gfx"
	"github.com/milk9111/spriteblit/sheet"
)

const (
	cellSize = 8
	margin   = 4
)

var (
	checkerDark  = gfx.Opaque(40, 40, 48)
	checkerLight = gfx.Opaque(56, 56, 66)
	rulerColor   = gfx.Opaque(90, 90, 104)
)

type preview struct {
	specPath string
	speed    uint64
	scale    int

	dst     *gfx.PixelBuffer
	catalog *anim.Catalog[string]
	cursors []*anim.Cursor[string]
	watcher *sheet.Watcher
}

func newPreview(specPath string, width, height int32, scale int, speed uint64) (*preview, error) {
	p := &preview{
		specPath: specPath,
		speed:    speed,
		scale:    scale,
		dst:      gfx.New(gfx.Pt(width, height)),
	}
	if err := p.load(); err != nil {
		return nil, err
	}

	w, err := sheet.NewWatcher(filepath.Dir(specPath))
	if err != nil {
		return nil, err
	}
	p.watcher = w
	return p, nil
}

func (p *preview) load() error {
	catalog, err := sheet.Load(p.specPath)
	if err != nil {
		return err
	}

	actions := catalog.Actions()
	sort.Strings(actions)
	cursors := make([]*anim.Cursor[string], 0, len(actions))
	for _, action := range actions {
		cur, err := catalog.Play(action)
		if err != nil {
			return err
		}
		cursors = append(cursors, cur)
	}

	p.catalog = catalog
	p.cursors = cursors
	return nil
}

func (p *preview) Update() error {
	select {
	case name, ok := <-p.watcher.Events():
		if ok {
			log.Printf("reloading after change to %s", name)
			if err := p.load(); err != nil {
				log.Printf("reload failed, keeping previous catalog: %v", err)
			}
		}
	case err, ok := <-p.watcher.Errors():
		if ok {
			log.Printf("watcher: %v", err)
		}
	default:
	}

	p.drawChecker()

	sheetBuf := p.catalog.Sheet()
	x, y := int32(margin), int32(margin)
	rowH := int32(0)
	for _, cur := range p.cursors {
		r := cur.Tick(p.speed)
		if x+r.Size.X > p.dst.Width()-margin && x > margin {
			p.drawRuler(y + rowH + margin/2)
			x = margin
			y += rowH + margin
			rowH = 0
		}
		p.dst.Blit(sheetBuf, r, gfx.Pt(x, y))
		x += r.Size.X + margin
		rowH = max(rowH, r.Size.Y)
	}
	return nil
}

// drawChecker repaints the transparency checkerboard, clamping the edge
// cells so FillRect never leaves the buffer.
func (p *preview) drawChecker() {
	w, h := p.dst.Width(), p.dst.Height()
	for cy := int32(0); cy < h; cy += cellSize {
		for cx := int32(0); cx < w; cx += cellSize {
			c := checkerDark
			if (cx/cellSize+cy/cellSize)%2 == 0 {
				c = checkerLight
			}
			p.dst.FillRect(gfx.Rct(cx, cy, min(cellSize, w-cx), min(cellSize, h-cy)), c)
		}
	}
}

func (p *preview) drawRuler(y int32) {
	if y >= 0 && y < p.dst.Height() {
		p.dst.FillHLine(0, p.dst.Width(), y, rulerColor)
	}
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.WritePixels(p.dst.ScaleNearest(p.scale).Pix)
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(p.dst.Width()) * p.scale, int(p.dst.Height()) * p.scale
}

func main() {
	specPath := flag.String("spec", "", "sheet spec file (.yaml)")
	width := flag.Int("w", 256, "preview buffer width in pixels")
	height := flag.Int("h", 144, "preview buffer height in pixels")
	scale := flag.Int("scale", 3, "integer window scale")
	speed := flag.Uint64("speed", 6, "ticks per animation frame")
	flag.Parse()

	if *specPath == "" {
		log.Fatal("preview: -spec is required")
	}
	if *speed < 1 {
		log.Fatal("preview: -speed must be >= 1")
	}

	p, err := newPreview(*specPath, int32(*width), int32(*height), *scale, *speed)
	if err != nil {
		log.Fatal(err)
	}
	defer p.watcher.Close()

	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetWindowTitle("spriteblit preview")

	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
