// Package bubblepop implements Bubble Pop: bubbles rise from the bottom of the
// screen and the player pops them by clicking before the countdown runs out.
//
// Field and Round hold pure state transitions. Session wires them to a
// drawing surface, a scheduler and the audio/display sinks.
package bubblepop

import (
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Bubble is one live bubble on the field.
type Bubble struct {
	Pos     core.Point // Center in surface space
	Radius  float64    // Shrinks once popped
	Color   core.Color // Opaque base color, fixed at creation
	DX, DY  float64    // Velocity per frame; DY < 0 while rising
	Opacity float64    // 1 at creation, fades once popped
	Popped  bool
}

// NewBubble creates an unpopped, fully opaque bubble.
func NewBubble(pos core.Point, radius float64, color core.Color, dx, dy float64) *Bubble {
	return &Bubble{
		Pos:     pos,
		Radius:  radius,
		Color:   color,
		DX:      dx,
		DY:      dy,
		Opacity: 1,
	}
}

// Pop marks the bubble popped. Returns false if it already was.
func (b *Bubble) Pop() bool {
	if b.Popped {
		return false
	}
	b.Popped = true
	return true
}

// Circle returns the bubble's current outline.
func (b *Bubble) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Expired reports whether a popped bubble has shrunk or faded away.
func (b *Bubble) Expired() bool {
	return b.Popped && (b.Radius <= 0 || b.Opacity <= 0)
}

// step advances the bubble by one frame: unpopped bubbles drift at constant
// velocity, popped ones shrink and fade in place.
func (b *Bubble) step(pop config.PopConfig) {
	if b.Popped {
		b.Radius -= pop.Shrink
		b.Opacity -= pop.Fade
		return
	}
	b.Pos = b.Pos.Add(b.DX, b.DY)
}
