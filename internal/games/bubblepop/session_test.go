package bubblepop

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

type drawCall struct {
	op          string
	x, y, w, h  float64
	circle      core.Circle
	fill        core.Color
	stroke      core.Color
	strokeWidth float64
	text        string
	align       core.Align
}

// recordingSurface records draw calls instead of rasterizing them.
type recordingSurface struct {
	w, h  float64
	calls []drawCall
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Width() float64  { return s.w }
func (s *recordingSurface) Height() float64 { return s.h }

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{op: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillCircle(c core.Circle, fill, stroke core.Color, strokeWidth float64) {
	s.calls = append(s.calls, drawCall{op: "circle", circle: c, fill: fill, stroke: stroke, strokeWidth: strokeWidth})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, fill core.Color) {
	s.calls = append(s.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, fill: fill})
}

func (s *recordingSurface) DrawText(x, y float64, text string, fill core.Color, align core.Align) {
	s.calls = append(s.calls, drawCall{op: "text", x: x, y: y, text: text, fill: fill, align: align})
}

func (s *recordingSurface) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, c := range s.ops("text") {
		out = append(out, c.text)
	}
	return out
}

func (s *recordingSurface) reset() {
	s.calls = nil
}

type fakeEffects struct {
	pops   int
	scores []int
	times  []int
}

func (f *fakeEffects) PlayPop()            { f.pops++ }
func (f *fakeEffects) ShowScore(score int) { f.scores = append(f.scores, score) }
func (f *fakeEffects) ShowTime(sec int)    { f.times = append(f.times, sec) }

type testSession struct {
	*Session
	surface *recordingSurface
	clock   *sched.Clock
	fx      *fakeEffects
}

func newTestSession(t *testing.T, cfg config.BubblePopConfig) testSession {
	t.Helper()
	ts := testSession{
		surface: newRecordingSurface(800, 600),
		clock:   sched.NewClock(),
		fx:      &fakeEffects{},
	}
	s, err := New(Options{
		Config:    cfg,
		Seed:      1,
		Surface:   ts.surface,
		Scheduler: ts.clock,
		Audio:     ts.fx,
		Display:   ts.fx,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ts.Session = s
	return ts
}

func TestNewRejectsBadOptions(t *testing.T) {
	cfg := config.DefaultBubblePopConfig()
	surface := newRecordingSurface(800, 600)
	clock := sched.NewClock()

	if _, err := New(Options{Config: cfg, Scheduler: clock}); err == nil {
		t.Error("expected error without a surface")
	}
	if _, err := New(Options{Config: cfg, Surface: surface}); err == nil {
		t.Error("expected error without a scheduler")
	}

	bad := cfg
	bad.Spawn.Radius = config.Range{Min: 5, Max: 1}
	_, err := New(Options{Config: bad, Surface: surface, Scheduler: clock})
	if err == nil || !strings.Contains(err.Error(), "radius") {
		t.Errorf("expected radius validation error, got %v", err)
	}
}

func TestSessionTitleCard(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())

	if ts.Phase() != PhaseNotStarted {
		t.Fatalf("Phase() = %v, expected NotStarted", ts.Phase())
	}
	texts := ts.surface.texts()
	if len(texts) != 2 || texts[0] != "BUBBLE POP" || texts[1] != "Click to start" {
		t.Errorf("title card texts = %q", texts)
	}
	if ts.clock.PendingFrames() != 0 || ts.clock.ActiveTimers() != 0 {
		t.Error("nothing should be scheduled before start")
	}
}

func TestSessionStart(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())

	if !ts.Start() {
		t.Fatal("Start() should start a fresh session")
	}
	if ts.Start() {
		t.Error("second Start() should be ignored")
	}

	if ts.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected Running", ts.Phase())
	}
	if len(ts.fx.scores) != 1 || ts.fx.scores[0] != 0 {
		t.Errorf("score display = %v, expected [0]", ts.fx.scores)
	}
	if len(ts.fx.times) != 1 || ts.fx.times[0] != 15 {
		t.Errorf("time display = %v, expected [15]", ts.fx.times)
	}
	if ts.clock.ActiveTimers() != 1 {
		t.Errorf("ActiveTimers() = %d, expected one countdown", ts.clock.ActiveTimers())
	}
	if ts.clock.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected one frame", ts.clock.PendingFrames())
	}
}

func TestSessionFrameLoop(t *testing.T) {
	cfg := config.DefaultBubblePopConfig()
	cfg.Spawn.Chance = 1
	ts := newTestSession(t, cfg)
	ts.Start()

	for i := 0; i < 10; i++ {
		ts.surface.reset()
		if ran := ts.clock.Frame(); ran != 1 {
			t.Fatalf("frame %d ran %d callbacks, expected 1", i, ran)
		}
		if ts.surface.calls[0].op != "clear" {
			t.Fatalf("frame %d did not start by clearing", i)
		}
		if got := len(ts.surface.ops("circle")); got != i+1 {
			t.Fatalf("frame %d drew %d bubbles, expected %d", i, got, i+1)
		}
	}

	if ts.Frames() != 10 {
		t.Errorf("Frames() = %d, expected 10", ts.Frames())
	}
	// Every bubble spawned at the bottom center and moved exactly once per frame
	for _, b := range ts.Field().Bubbles() {
		if b.Pos.Y >= 600 {
			t.Errorf("bubble at %+v has not risen", b.Pos)
		}
	}
}

func TestSessionCountdownEndsRound(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())
	ts.Start()
	ts.clock.Frame()

	ts.clock.Advance(14 * time.Second)
	if ts.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v after 14s, expected Running", ts.Phase())
	}

	ts.surface.reset()
	ts.clock.Advance(time.Second)

	if ts.Phase() != PhaseOver {
		t.Fatalf("Phase() = %v after 15s, expected Over", ts.Phase())
	}
	if ts.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining() = %d, expected 0", ts.TimeRemaining())
	}
	wantTimes := []int{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	if len(ts.fx.times) != len(wantTimes) {
		t.Fatalf("time display = %v, expected %v", ts.fx.times, wantTimes)
	}
	for i := range wantTimes {
		if ts.fx.times[i] != wantTimes[i] {
			t.Fatalf("time display = %v, expected %v", ts.fx.times, wantTimes)
		}
	}

	// Countdown cancelled
	if ts.clock.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers() = %d, expected countdown cancelled", ts.clock.ActiveTimers())
	}
	ts.clock.Advance(5 * time.Second)
	if len(ts.fx.times) != len(wantTimes) {
		t.Error("countdown kept ticking after game over")
	}

	// Frame loop stops rescheduling itself
	frames := ts.Frames()
	ts.clock.Frame()
	if ts.clock.PendingFrames() != 0 {
		t.Error("frame loop should stop once the round is over")
	}
	if ts.Frames() != frames {
		t.Error("no frame should be simulated after game over")
	}

	// End screen
	rects := ts.surface.ops("rect")
	if len(rects) != 1 {
		t.Fatalf("end screen drew %d rects, expected 1 panel", len(rects))
	}
	if rects[0] != (drawCall{op: "rect", x: 250, y: 250, w: 300, h: 100, fill: core.MustHex("#f7b5d1")}) {
		t.Errorf("panel = %+v", rects[0])
	}
	texts := ts.surface.ops("text")
	if len(texts) != 2 || texts[0].text != "GAME OVER" || texts[1].text != "Your Score: 0" {
		t.Fatalf("end screen texts = %q", ts.surface.texts())
	}
	if texts[0].x != 400 || texts[0].y != 300 || texts[1].y != 340 || texts[0].align != core.AlignCenter {
		t.Errorf("end screen text placement = %+v", texts)
	}
}

func TestSessionClickScoring(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())
	ts.Start()

	first := NewBubble(core.Point{X: 100, Y: 100}, 20, core.White, 0, -1)
	ts.Field().Add(first)

	if n := ts.HandleClick(core.Point{X: 105, Y: 105}); n != 1 {
		t.Fatalf("HandleClick() popped %d, expected 1", n)
	}
	if !first.Popped {
		t.Error("clicked bubble should be popped")
	}
	if ts.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", ts.Score())
	}

	// Two more bubbles sharing a point with the popped one: a single click
	// pops both live ones and scores each.
	ts.Field().Add(NewBubble(core.Point{X: 102, Y: 102}, 20, core.White, 0, -1))
	ts.Field().Add(NewBubble(core.Point{X: 101, Y: 101}, 20, core.White, 0, -1))

	if n := ts.HandleClick(core.Point{X: 103, Y: 103}); n != 2 {
		t.Fatalf("HandleClick() popped %d, expected 2", n)
	}
	if ts.Score() != 30 {
		t.Errorf("Score() = %d, expected 30", ts.Score())
	}
	if ts.fx.pops != 3 {
		t.Errorf("PlayPop() called %d times, expected 3", ts.fx.pops)
	}
	wantScores := []int{0, 10, 20, 30}
	if len(ts.fx.scores) != len(wantScores) {
		t.Fatalf("score display = %v, expected %v", ts.fx.scores, wantScores)
	}
	for i := range wantScores {
		if ts.fx.scores[i] != wantScores[i] {
			t.Fatalf("score display = %v, expected %v", ts.fx.scores, wantScores)
		}
	}

	// A miss changes nothing
	if n := ts.HandleClick(core.Point{X: 700, Y: 500}); n != 0 {
		t.Errorf("miss popped %d bubbles", n)
	}
	if ts.Score() != 30 {
		t.Errorf("Score() = %d after miss, expected 30", ts.Score())
	}
}

func TestSessionIgnoresClicksOutsideRound(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())
	b := NewBubble(core.Point{X: 100, Y: 100}, 20, core.White, 0, -1)
	ts.Field().Add(b)

	if n := ts.HandleClick(core.Point{X: 100, Y: 100}); n != 0 {
		t.Errorf("click before start popped %d bubbles", n)
	}

	ts.Start()
	ts.clock.Advance(15 * time.Second)

	if n := ts.HandleClick(core.Point{X: 100, Y: 100}); n != 0 {
		t.Errorf("click after game over popped %d bubbles", n)
	}
	if b.Popped || ts.Score() != 0 || ts.fx.pops != 0 {
		t.Error("clicks outside the running round should have no effect")
	}
}

func TestSessionApply(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())
	b := NewBubble(core.Point{X: 100, Y: 100}, 20, core.White, 0, -1)
	ts.Field().Add(b)

	// A click on the title card starts the round without popping
	in := core.NewInputFrame()
	in.Click(core.Point{X: 100, Y: 100})
	ts.Apply(in)

	if ts.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected Running after click", ts.Phase())
	}
	if b.Popped {
		t.Error("starting click should not pop")
	}

	ts.Apply(in)
	if !b.Popped || ts.Score() != 10 {
		t.Error("click while running should pop and score")
	}
}

func TestSessionApplyStartAction(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	ts.Apply(in)

	if ts.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected Running", ts.Phase())
	}
}

func TestSessionRedraw(t *testing.T) {
	ts := newTestSession(t, config.DefaultBubblePopConfig())

	ts.surface.reset()
	ts.Redraw()
	if texts := ts.surface.texts(); len(texts) != 2 || texts[0] != "BUBBLE POP" {
		t.Errorf("redraw before start = %q", texts)
	}

	ts.Start()
	ts.Field().Add(NewBubble(core.Point{X: 100, Y: 100}, 20, core.White, 0, -1))
	ts.surface.reset()
	ts.Redraw()
	if len(ts.surface.ops("circle")) != 1 || len(ts.surface.ops("text")) != 0 {
		t.Error("redraw while running should draw the field")
	}

	ts.clock.Advance(15 * time.Second)
	ts.surface.reset()
	ts.Redraw()
	if texts := ts.surface.texts(); len(texts) != 2 || texts[0] != "GAME OVER" {
		t.Errorf("redraw after game over = %q", texts)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		ts := newTestSession(t, config.DefaultBubblePopConfig())
		ts.Start()
		for i := 0; i < 300; i++ {
			ts.clock.Frame()
			if i%20 == 0 {
				ts.HandleClick(core.Point{X: 400, Y: 560})
			}
			ts.clock.Advance(time.Second / 60)
		}
		return ts.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Frames != 300 {
		t.Errorf("Frames = %d, expected 300", s1.Frames)
	}
}

func TestSessionLogsRoundLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	clock := sched.NewClock()
	s, err := New(Options{
		Config:    config.DefaultBubblePopConfig(),
		Surface:   newRecordingSurface(800, 600),
		Scheduler: clock,
		Logger:    logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	s.Field().Add(NewBubble(core.Point{X: 10, Y: 10}, 20, core.White, 0, -1))
	s.HandleClick(core.Point{X: 10, Y: 10})
	clock.Advance(15 * time.Second)

	out := buf.String()
	for _, want := range []string{"round started", "bubble popped", "round over", "score=10"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
