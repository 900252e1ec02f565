package anim

import (
	"errors"
	"fmt"

	"github.com/milk9111/spriteblit/gfx"
)

// ErrUnknownAction is returned by catalog lookups for actions with no clip.
var ErrUnknownAction = errors.New("unknown action")

// Catalog binds action identifiers to the clips of one sprite sheet. It
// owns the decoded sheet buffer and the clip set; both are immutable after
// construction and safe to share across cursors.
type Catalog[A comparable] struct {
	sheet *gfx.PixelBuffer
	clips map[A]*Clip
}

// NewCatalog builds a catalog over sheet. The clip map is copied.
func NewCatalog[A comparable](sheet *gfx.PixelBuffer, clips map[A]*Clip) *Catalog[A] {
	m := make(map[A]*Clip, len(clips))
	for k, v := range clips {
		m[k] = v
	}
	return &Catalog[A]{sheet: sheet, clips: m}
}

// GetClip returns the shared clip for action.
func (c *Catalog[A]) GetClip(action A) (*Clip, error) {
	clip, ok := c.clips[action]
	if !ok {
		return nil, fmt.Errorf("anim: %v: %w", action, ErrUnknownAction)
	}
	return clip, nil
}

// Play returns a fresh cursor over action's clip, starting at tick zero.
func (c *Catalog[A]) Play(action A) (*Cursor[A], error) {
	clip, err := c.GetClip(action)
	if err != nil {
		return nil, err
	}
	return &Cursor[A]{Action: action, Clip: clip}, nil
}

// Sheet returns the sprite-sheet buffer the clips index into. Callers must
// treat it as read-only.
func (c *Catalog[A]) Sheet() *gfx.PixelBuffer {
	return c.sheet
}

// Actions returns the catalog's action identifiers in no particular order.
func (c *Catalog[A]) Actions() []A {
	actions := make([]A, 0, len(c.clips))
	for a := range c.clips {
		actions = append(actions, a)
	}
	return actions
}
