// Package touch turns raw host samples (pressed, held and released pointer
// IDs with window positions) into core.PointerEvent gestures in arena
// coordinates. It has no windowing dependency so it can be tested headless.
package touch

import (
	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Projection maps y-down window pixels onto the y-up arena frame.
// The window is letterboxed: the arena keeps its aspect ratio and is
// centered in the window.
type Projection struct {
	Frame   core.Rect
	Scale   float64 // Pixels per arena unit
	OffsetX float64 // Window pixel of the arena's left edge
	OffsetY float64 // Window pixel of the arena's top edge
}

// Fit returns the projection drawing frame as large as possible inside a
// width x height window.
func Fit(frame core.Rect, width, height int) Projection {
	sx := float64(width) / frame.W
	sy := float64(height) / frame.H
	scale := min(sx, sy)
	if scale <= 0 {
		scale = 1
	}
	return Projection{
		Frame:   frame,
		Scale:   scale,
		OffsetX: (float64(width) - frame.W*scale) / 2,
		OffsetY: (float64(height) - frame.H*scale) / 2,
	}
}

// ToArena converts a window pixel to arena coordinates.
func (p Projection) ToArena(x, y float64) core.Vec {
	ax := p.Frame.X + (x-p.OffsetX)/p.Scale
	ay := p.Frame.MaxY() - (y-p.OffsetY)/p.Scale
	return core.V(ax, ay)
}

// ToWindow converts an arena point to window pixels.
func (p Projection) ToWindow(v core.Vec) (x, y float64) {
	x = p.OffsetX + (v.X-p.Frame.X)*p.Scale
	y = p.OffsetY + (p.Frame.MaxY()-v.Y)*p.Scale
	return x, y
}

// Sample is one pointer position reported by the host.
type Sample struct {
	ID core.PointerID
	X  float64 // Window pixels
	Y  float64
}

// Frame collects one tick of host input.
type Frame struct {
	Pressed  []Sample         // Began this tick
	Held     []Sample         // Down this tick, including newly pressed
	Released []core.PointerID // Ended this tick
}

// Tracker remembers the last position of each active pointer so that
// moves are reported only on change and releases carry a location.
type Tracker struct {
	last map[core.PointerID]core.Vec
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{last: make(map[core.PointerID]core.Vec)}
}

// Events converts f to pointer events: downs first, then moves, then ups.
func (t *Tracker) Events(f Frame, proj Projection) []core.PointerEvent {
	var out []core.PointerEvent

	for _, s := range f.Pressed {
		loc := proj.ToArena(s.X, s.Y)
		t.last[s.ID] = loc
		out = append(out, core.PointerEvent{ID: s.ID, Phase: core.PointerDown, Location: loc})
	}

	for _, s := range f.Held {
		prev, ok := t.last[s.ID]
		if !ok {
			continue
		}
		loc := proj.ToArena(s.X, s.Y)
		if loc == prev {
			continue
		}
		t.last[s.ID] = loc
		out = append(out, core.PointerEvent{ID: s.ID, Phase: core.PointerMove, Location: loc})
	}

	for _, id := range f.Released {
		loc, ok := t.last[id]
		if !ok {
			continue
		}
		delete(t.last, id)
		out = append(out, core.PointerEvent{ID: id, Phase: core.PointerUp, Location: loc})
	}

	return out
}

// Active returns how many pointers are down.
func (t *Tracker) Active() int {
	return len(t.last)
}

// Reset forgets every pointer.
func (t *Tracker) Reset() {
	clear(t.last)
}
