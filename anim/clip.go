// Package anim maps elapsed ticks to the visible sub-rectangle of a sprite
// sheet: immutable clips shared across any number of playback cursors, and a
// catalog that binds action identifiers to clips.
package anim

import (
	"fmt"

	"github.com/milk9111/spriteblit/gfx"
)

// Clip is an immutable ordered sequence of sprite-sheet sub-rectangles
// making up one animation. A clip is shared by pointer across every Cursor
// playing it and is never mutated after construction.
//
// Playback advances at a uniform rate of one frame per speed-divisor ticks.
// The per-frame durations are validated and carried for tooling but do not
// change that rate.
type Clip struct {
	frames    []gfx.Rect
	durations []int
	loops     bool
}

// NewClip builds a clip. frames must be non-empty and durations must have
// one entry per frame.
func NewClip(frames []gfx.Rect, durations []int, loops bool) (*Clip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("anim: clip must have at least one frame")
	}
	if len(durations) != len(frames) {
		return nil, fmt.Errorf("anim: %d durations for %d frames", len(durations), len(frames))
	}
	return &Clip{
		frames:    append([]gfx.Rect(nil), frames...),
		durations: append([]int(nil), durations...),
		loops:     loops,
	}, nil
}

// Len returns the number of frames.
func (c *Clip) Len() int {
	return len(c.frames)
}

// Loops reports whether playback restarts after the final frame.
func (c *Clip) Loops() bool {
	return c.loops
}

// FrameDuration returns the stored duration hint for frame i, in ticks.
func (c *Clip) FrameDuration(i int) int {
	return c.durations[i]
}

// InitialFrame returns the first frame's rectangle.
func (c *Clip) InitialFrame() gfx.Rect {
	return c.frames[0]
}

// CurrentFrame returns the frame visible at tick now for a playback that
// began at tick start. speedDivisor is how many ticks each frame is held
// and must be >= 1. Once playback has run past the final frame, the final
// frame is returned (terminal hold).
func (c *Clip) CurrentFrame(start, now, speedDivisor uint64) gfx.Rect {
	i := c.elapsed(start, now, speedDivisor)
	if i >= uint64(len(c.frames)) {
		i = uint64(len(c.frames) - 1)
	}
	return c.frames[i]
}

// IsFinished reports whether a playback that began at tick start has run
// past its final frame at tick now.
func (c *Clip) IsFinished(start, now, speedDivisor uint64) bool {
	return c.elapsed(start, now, speedDivisor) >= uint64(len(c.frames))
}

func (c *Clip) elapsed(start, now, speedDivisor uint64) uint64 {
	if speedDivisor < 1 {
		panic("anim: speed divisor must be >= 1")
	}
	return (now - start) / speedDivisor
}
