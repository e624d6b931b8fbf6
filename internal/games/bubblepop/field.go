package bubblepop

import (
	"math/rand"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Field owns the set of live bubbles.
type Field struct {
	bubbles []*Bubble
	seed    int64
	rng     *rand.Rand
	spawn   config.SpawnConfig
	pop     config.PopConfig
}

// NewField creates an empty field with the given RNG seed.
func NewField(seed int64, spawn config.SpawnConfig, pop config.PopConfig) *Field {
	return &Field{
		bubbles: make([]*Bubble, 0, 64),
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		spawn:   spawn,
		pop:     pop,
	}
}

// Spawn creates a bubble at the bottom center of the given bounds and adds it
// to the field. Size, color and velocity are sampled from the spawn ranges.
func (f *Field) Spawn(width, height float64) *Bubble {
	b := NewBubble(
		core.Point{X: width / 2, Y: height},
		f.spawn.Radius.Sample(f.rng),
		core.RGB(f.spawn.Red.Sample(f.rng), f.spawn.Green.Sample(f.rng), f.spawn.Blue.Sample(f.rng)),
		f.spawn.DriftX.Sample(f.rng),
		-f.spawn.RiseSpeed.Sample(f.rng),
	)
	f.bubbles = append(f.bubbles, b)
	return b
}

// MaybeSpawn spawns a bubble with the configured per-frame probability.
// Returns nil when no bubble was created.
func (f *Field) MaybeSpawn(width, height float64) *Bubble {
	if f.rng.Float64() >= f.spawn.Chance {
		return nil
	}
	return f.Spawn(width, height)
}

// Add places an existing bubble on the field.
func (f *Field) Add(b *Bubble) {
	f.bubbles = append(f.bubbles, b)
}

// Advance moves every bubble by one frame, then drops expired ones.
// Filtering into the same backing array keeps order and visits each bubble
// exactly once.
func (f *Field) Advance() {
	live := f.bubbles[:0]
	for _, b := range f.bubbles {
		b.step(f.pop)
		if !b.Expired() {
			live = append(live, b)
		}
	}
	// Release dropped bubbles
	for i := len(live); i < len(f.bubbles); i++ {
		f.bubbles[i] = nil
	}
	f.bubbles = live
}

// HitTest pops every unpopped bubble whose interior contains p and returns
// them in field order. Overlapping bubbles all pop from a single click.
func (f *Field) HitTest(p core.Point) []*Bubble {
	var popped []*Bubble
	for _, b := range f.bubbles {
		if b.Popped || !b.Circle().Contains(p) {
			continue
		}
		b.Pop()
		popped = append(popped, b)
	}
	return popped
}

// Render clears the surface and draws every live bubble.
func (f *Field) Render(dst core.Surface, style Style) {
	core.ClearAll(dst)
	for _, b := range f.bubbles {
		dst.FillCircle(b.Circle(), b.Color.WithAlpha(b.Opacity), style.Stroke, style.StrokeWidth)
	}
}

// Bubbles returns a snapshot of the live bubbles in spawn order.
func (f *Field) Bubbles() []*Bubble {
	return append([]*Bubble(nil), f.bubbles...)
}

// Len returns the number of live bubbles.
func (f *Field) Len() int {
	return len(f.bubbles)
}
