package anim

import "github.com/milk9111/spriteblit/gfx"

// Cursor tracks one playback of a shared Clip. A cursor has a single owner
// and is advanced one tick at a time; pausing is simply not ticking.
type Cursor[A comparable] struct {
	StartTick   uint64
	CurrentTick uint64
	Action      A
	Clip        *Clip
}

// Tick returns the rectangle visible for the tick that is now elapsing and
// advances the cursor by one tick, so each frame is displayed for exactly
// speedDivisor ticks. When a looping clip runs past its final frame the
// cursor restarts at StartTick; a non-looping clip holds its final frame.
func (c *Cursor[A]) Tick(speedDivisor uint64) gfx.Rect {
	if c.Clip.loops && c.Clip.IsFinished(c.StartTick, c.CurrentTick, speedDivisor) {
		c.CurrentTick = c.StartTick
	}
	r := c.Clip.CurrentFrame(c.StartTick, c.CurrentTick, speedDivisor)
	c.CurrentTick++
	return r
}
