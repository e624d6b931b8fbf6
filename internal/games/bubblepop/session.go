package bubblepop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

// Options configures a Session. Surface and Scheduler are required; nil
// sinks and logger are replaced with no-ops.
type Options struct {
	Config    config.BubblePopConfig
	Seed      int64
	Surface   core.Surface
	Scheduler sched.Scheduler
	Audio     AudioCue
	Display   Display
	Logger    *log.Logger
}

// Session is one play-through from the title card to game over.
// It is driven from a single goroutine: scheduler callbacks, clicks and
// redraws must never run concurrently.
type Session struct {
	cfg     config.BubblePopConfig
	style   Style
	field   *Field
	round   *Round
	surface core.Surface
	sched   sched.Scheduler
	audio   AudioCue
	display Display
	log     *log.Logger

	countdown     sched.Handle
	inputAttached bool
	frames        uint64
}

// New creates a session and draws the title card.
func New(opts Options) (*Session, error) {
	if opts.Surface == nil {
		return nil, errors.New("bubblepop: surface is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("bubblepop: scheduler is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("bubblepop: invalid config: %w", err)
	}
	style, err := NewStyle(opts.Config.Style)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     opts.Config,
		style:   style,
		field:   NewField(opts.Seed, opts.Config.Spawn, opts.Config.Pop),
		round:   NewRound(opts.Config.Round.Duration, opts.Config.Round.PointsPerPop),
		surface: opts.Surface,
		sched:   opts.Scheduler,
		audio:   opts.Audio,
		display: opts.Display,
		log:     opts.Logger,
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	drawTitleScreen(s.surface, s.style)
	return s, nil
}

// Start begins the round: shows the initial score and time, starts the
// countdown and requests the first frame. A second call is ignored.
func (s *Session) Start() bool {
	if !s.round.Start() {
		return false
	}

	core.ClearAll(s.surface)
	s.display.ShowScore(s.round.Score())
	s.display.ShowTime(s.round.DisplayTime())

	s.countdown = s.sched.Every(s.cfg.Round.TickInterval, s.tick)
	s.inputAttached = true
	s.sched.RequestFrame(s.frame)

	s.log.Info("round started", "duration", s.round.TimeRemaining(), "seed", s.field.seed)
	return true
}

// frame advances then renders the field, and requests the next frame only
// while the round is running.
func (s *Session) frame() {
	if s.round.Phase() != PhaseRunning {
		return
	}
	s.frames++
	s.field.MaybeSpawn(s.surface.Width(), s.surface.Height())
	s.field.Advance()
	s.field.Render(s.surface, s.style)
	s.sched.RequestFrame(s.frame)
}

func (s *Session) tick() {
	over := s.round.Tick()
	s.display.ShowTime(s.round.DisplayTime())
	if over {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	if s.countdown != nil {
		s.countdown.Cancel()
		s.countdown = nil
	}
	s.inputAttached = false
	drawGameOverScreen(s.surface, s.style, s.round.Score())
	s.log.Info("round over", "score", s.round.Score(), "frames", s.frames)
}

// HandleClick hit-tests a point in surface space and scores every bubble it
// pops. Clicks are ignored unless the round is running.
// Returns the number of bubbles popped.
func (s *Session) HandleClick(p core.Point) int {
	if !s.inputAttached || !s.round.IsAcceptingInput() {
		return 0
	}
	popped := s.field.HitTest(p)
	for _, b := range popped {
		if !s.round.RegisterPop() {
			break
		}
		s.audio.PlayPop()
		s.display.ShowScore(s.round.Score())
		s.log.Debug("bubble popped", "x", b.Pos.X, "y", b.Pos.Y, "radius", b.Radius, "score", s.round.Score())
	}
	return len(popped)
}

// Apply processes one frame of input. Before the round starts, the start
// action or any click starts it; the starting click does not pop anything.
func (s *Session) Apply(in core.InputFrame) {
	if s.round.Phase() == PhaseNotStarted {
		if in.Has(core.ActionStart) || len(in.Clicks) > 0 {
			s.Start()
		}
		return
	}
	for _, p := range in.Clicks {
		s.HandleClick(p)
	}
}

// Redraw repaints the current phase, e.g. after the surface was resized.
func (s *Session) Redraw() {
	switch s.round.Phase() {
	case PhaseNotStarted:
		drawTitleScreen(s.surface, s.style)
	case PhaseRunning:
		s.field.Render(s.surface, s.style)
	case PhaseOver:
		drawGameOverScreen(s.surface, s.style, s.round.Score())
	}
}

// Phase returns the round's current phase.
func (s *Session) Phase() Phase { return s.round.Phase() }

// Score returns the points collected so far.
func (s *Session) Score() int { return s.round.Score() }

// TimeRemaining returns the countdown floored at zero.
func (s *Session) TimeRemaining() int { return s.round.DisplayTime() }

// Field exposes the bubble field.
func (s *Session) Field() *Field { return s.field }

// Frames returns how many frames have been simulated.
func (s *Session) Frames() uint64 { return s.frames }
