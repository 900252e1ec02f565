package anim

import (
	"testing"

	"github.com/milk9111/spriteblit/gfx"
)

func TestCursorTickSequence(t *testing.T) {
	// Three frames at speed divisor 2: every frame is displayed for
	// exactly two ticks, then the final frame is held.
	frames := threeFrames()
	clip := mustClip(t, frames, []int{1, 1, 1}, false)
	cur := &Cursor[string]{Action: "walk", Clip: clip}

	want := []gfx.Rect{
		frames[0], frames[0],
		frames[1], frames[1],
		frames[2], frames[2],
		frames[2], frames[2], // held after finishing
	}
	for k, w := range want {
		if got := cur.Tick(2); got != w {
			t.Fatalf("tick %d = %v, want %v", k+1, got, w)
		}
	}
}

func TestCursorNonLoopingHoldsLastFrame(t *testing.T) {
	frames := threeFrames()
	clip := mustClip(t, frames, []int{1, 1, 1}, false)
	cur := &Cursor[string]{Action: "die", Clip: clip}

	var last gfx.Rect
	for i := 0; i < 100; i++ {
		last = cur.Tick(3)
	}
	if last != frames[2] {
		t.Fatalf("after 100 ticks got %v, want last frame %v", last, frames[2])
	}
}

func TestCursorLoopsAtBoundary(t *testing.T) {
	frames := threeFrames()[:2]
	clip := mustClip(t, frames, []int{1, 1}, true)
	cur := &Cursor[string]{Action: "idle", Clip: clip}

	want := []gfx.Rect{frames[0], frames[1], frames[0], frames[1], frames[0]}
	for k, w := range want {
		if got := cur.Tick(1); got != w {
			t.Fatalf("tick %d = %v, want %v", k+1, got, w)
		}
	}
}

func TestCursorLoopRestartsAtStartTick(t *testing.T) {
	frames := threeFrames()[:2]
	clip := mustClip(t, frames, []int{1, 1}, true)
	cur := &Cursor[string]{StartTick: 10, CurrentTick: 10, Action: "idle", Clip: clip}

	want := []gfx.Rect{frames[0], frames[1], frames[0], frames[1]}
	for k, w := range want {
		if got := cur.Tick(1); got != w {
			t.Fatalf("tick %d = %v, want %v", k+1, got, w)
		}
	}
	if cur.CurrentTick < cur.StartTick {
		t.Fatalf("CurrentTick %d fell below StartTick %d", cur.CurrentTick, cur.StartTick)
	}
}
