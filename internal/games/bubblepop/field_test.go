package bubblepop

import (
	"testing"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

func newTestField(seed int64) *Field {
	cfg := config.DefaultBubblePopConfig()
	return NewField(seed, cfg.Spawn, cfg.Pop)
}

func TestFieldSpawn(t *testing.T) {
	f := newTestField(42)

	for i := 0; i < 500; i++ {
		b := f.Spawn(800, 600)

		if b.Radius < 10 || b.Radius >= 25 {
			t.Fatalf("radius %g outside [10, 25)", b.Radius)
		}
		if b.DY >= 0 {
			t.Fatalf("dy = %g, expected negative", b.DY)
		}
		if b.DY <= -1.5 || b.DY > -0.5 {
			t.Fatalf("dy = %g outside (-1.5, -0.5]", b.DY)
		}
		if b.DX < -2 || b.DX >= 2 {
			t.Fatalf("dx = %g outside [-2, 2)", b.DX)
		}
		if b.Popped {
			t.Fatal("spawned bubble should not be popped")
		}
		if b.Pos != (core.Point{X: 400, Y: 600}) {
			t.Fatalf("Pos = %+v, expected bottom center", b.Pos)
		}
		c := b.Color
		if c.R < 240 || c.R >= 255 || c.G < 180 || c.G >= 210 || c.B < 220 || c.B >= 255 {
			t.Fatalf("color %+v outside channel ranges", c)
		}
		if c.A != 1 {
			t.Fatalf("color alpha = %g, expected opaque", c.A)
		}
	}

	if f.Len() != 500 {
		t.Errorf("Len() = %d, expected 500", f.Len())
	}
}

func TestFieldMaybeSpawn(t *testing.T) {
	cfg := config.DefaultBubblePopConfig()

	cfg.Spawn.Chance = 0
	f := NewField(1, cfg.Spawn, cfg.Pop)
	for i := 0; i < 100; i++ {
		if f.MaybeSpawn(800, 600) != nil {
			t.Fatal("chance 0 should never spawn")
		}
	}

	cfg.Spawn.Chance = 1
	f = NewField(1, cfg.Spawn, cfg.Pop)
	for i := 0; i < 100; i++ {
		if f.MaybeSpawn(800, 600) == nil {
			t.Fatal("chance 1 should always spawn")
		}
	}

	// The default chance spawns on roughly a third of frames
	f = newTestField(7)
	spawned := 0
	for i := 0; i < 10000; i++ {
		if f.MaybeSpawn(800, 600) != nil {
			spawned++
		}
	}
	if spawned < 2500 || spawned > 3500 {
		t.Errorf("spawned %d of 10000, expected about 3000", spawned)
	}
}

func TestFieldDeterminism(t *testing.T) {
	f1 := newTestField(12345)
	f2 := newTestField(12345)

	for i := 0; i < 200; i++ {
		f1.MaybeSpawn(640, 480)
		f2.MaybeSpawn(640, 480)
		f1.Advance()
		f2.Advance()
	}

	b1, b2 := f1.Bubbles(), f2.Bubbles()
	if len(b1) != len(b2) {
		t.Fatalf("bubble count mismatch: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if *b1[i] != *b2[i] {
			t.Fatalf("bubble %d differs: %+v vs %+v", i, *b1[i], *b2[i])
		}
	}
}

func TestFieldAdvanceMovesUnpopped(t *testing.T) {
	f := newTestField(3)
	for i := 0; i < 20; i++ {
		f.Spawn(800, 600)
	}

	before := make([]Bubble, 0, f.Len())
	for _, b := range f.Bubbles() {
		before = append(before, *b)
	}

	f.Advance()

	after := f.Bubbles()
	if len(after) != len(before) {
		t.Fatalf("Len() = %d, expected %d", len(after), len(before))
	}
	for i, b := range after {
		want := before[i].Pos.Add(before[i].DX, before[i].DY)
		if b.Pos != want {
			t.Errorf("bubble %d at %+v, expected %+v", i, b.Pos, want)
		}
		if b.DX != before[i].DX || b.DY != before[i].DY {
			t.Errorf("bubble %d velocity changed", i)
		}
	}
}

func TestFieldPoppedBubbleFadesAndIsRemoved(t *testing.T) {
	f := newTestField(1)
	b := NewBubble(core.Point{X: 50, Y: 50}, 20, core.White, 1, -1)
	f.Add(b)
	b.Pop()

	radius, opacity := b.Radius, b.Opacity
	for frames := 1; ; frames++ {
		if frames > 100 {
			t.Fatal("popped bubble was never removed")
		}
		f.Advance()

		if b.Radius >= radius || b.Opacity >= opacity {
			t.Fatalf("frame %d: radius %g -> %g, opacity %g -> %g; expected strict decrease",
				frames, radius, b.Radius, opacity, b.Opacity)
		}
		radius, opacity = b.Radius, b.Opacity

		if b.Radius <= 0 || b.Opacity <= 0 {
			if f.Len() != 0 {
				t.Fatalf("frame %d: expired bubble still live", frames)
			}
			break
		}
		if f.Len() != 1 {
			t.Fatalf("frame %d: visible bubble removed early", frames)
		}
	}
}

func TestFieldAdvanceDoesNotSkipAfterRemoval(t *testing.T) {
	f := newTestField(1)

	// Two adjacent bubbles that expire on the next frame, then a live one.
	a := NewBubble(core.Point{X: 10, Y: 10}, 0.5, core.White, 0, -1)
	b := NewBubble(core.Point{X: 20, Y: 20}, 0.5, core.White, 0, -1)
	c := NewBubble(core.Point{X: 30, Y: 30}, 10, core.White, 0, -1)
	a.Pop()
	b.Pop()
	f.Add(a)
	f.Add(b)
	f.Add(c)

	f.Advance()

	live := f.Bubbles()
	if len(live) != 1 || live[0] != c {
		t.Fatalf("live = %v, expected only the unpopped bubble", live)
	}
	if c.Pos.Y != 29 {
		t.Errorf("live bubble Y = %g, expected exactly one step to 29", c.Pos.Y)
	}
}

func TestFieldHitTest(t *testing.T) {
	tests := []struct {
		name  string
		point core.Point
		want  []int // indexes of bubbles expected to pop
	}{
		{"inside one", core.Point{X: 105, Y: 105}, []int{0}},
		{"inside other", core.Point{X: 300, Y: 300}, []int{1}},
		{"miss", core.Point{X: 200, Y: 200}, nil},
		{"on the edge", core.Point{X: 120, Y: 100}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(1)
			bubbles := []*Bubble{
				NewBubble(core.Point{X: 100, Y: 100}, 20, core.White, 0, -1),
				NewBubble(core.Point{X: 300, Y: 300}, 20, core.White, 0, -1),
			}
			for _, b := range bubbles {
				f.Add(b)
			}

			popped := f.HitTest(tc.point)

			if len(popped) != len(tc.want) {
				t.Fatalf("popped %d bubbles, expected %d", len(popped), len(tc.want))
			}
			for i, idx := range tc.want {
				if popped[i] != bubbles[idx] {
					t.Errorf("popped[%d] is not bubble %d", i, idx)
				}
			}
			for i, b := range bubbles {
				want := false
				for _, idx := range tc.want {
					want = want || idx == i
				}
				if b.Popped != want {
					t.Errorf("bubble %d Popped = %v, expected %v", i, b.Popped, want)
				}
			}
		})
	}
}

func TestFieldHitTestPopsAllOverlapping(t *testing.T) {
	f := newTestField(1)
	for i := 0; i < 4; i++ {
		f.Add(NewBubble(core.Point{X: 100 + float64(i), Y: 100 + float64(i)}, 20, core.White, 0, -1))
	}
	far := NewBubble(core.Point{X: 400, Y: 400}, 20, core.White, 0, -1)
	f.Add(far)

	popped := f.HitTest(core.Point{X: 103, Y: 103})
	if len(popped) != 4 {
		t.Fatalf("popped %d bubbles, expected all 4 overlapping", len(popped))
	}
	if far.Popped {
		t.Error("bubble away from the point should not pop")
	}

	// Already popped bubbles are not hit again
	if again := f.HitTest(core.Point{X: 103, Y: 103}); len(again) != 0 {
		t.Errorf("second HitTest popped %d bubbles, expected 0", len(again))
	}
}

func TestFieldRender(t *testing.T) {
	f := newTestField(1)
	style, err := NewStyle(config.DefaultBubblePopConfig().Style)
	if err != nil {
		t.Fatal(err)
	}
	a := NewBubble(core.Point{X: 100, Y: 100}, 20, core.RGB(250, 190, 230), 0, -1)
	b := NewBubble(core.Point{X: 200, Y: 100}, 15, core.RGB(245, 200, 240), 0, -1)
	b.Opacity = 0.4
	f.Add(a)
	f.Add(b)

	s := newRecordingSurface(800, 600)
	f.Render(s, style)

	if len(s.calls) != 3 {
		t.Fatalf("got %d draw calls, expected clear + 2 circles", len(s.calls))
	}
	if s.calls[0].op != "clear" || s.calls[0].w != 800 || s.calls[0].h != 600 {
		t.Errorf("first call = %+v, expected full clear", s.calls[0])
	}
	circles := s.ops("circle")
	if circles[0].circle != a.Circle() || circles[1].circle != b.Circle() {
		t.Error("circles not drawn at bubble positions")
	}
	if circles[1].fill.A != 0.4 {
		t.Errorf("fill alpha = %g, expected bubble opacity 0.4", circles[1].fill.A)
	}
	if circles[0].stroke != style.Stroke || circles[0].strokeWidth != style.StrokeWidth {
		t.Error("circle stroke should come from style")
	}

	// Render does not mutate the field
	if a.Pos != (core.Point{X: 100, Y: 100}) || f.Len() != 2 {
		t.Error("Render changed field state")
	}
}
