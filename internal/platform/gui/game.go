// Package gui provides the ebiten desktop window front end for Bubble Pop.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

// HUD placement in pixels.
const (
	hudX = 12
	hudY = 24
)

// Options configures the window front end.
type Options struct {
	Game    config.BubblePopConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// hud is the score and time display drawn over the canvas.
type hud struct {
	score   int
	seconds int
}

func (h *hud) ShowScore(score int)  { h.score = score }
func (h *hud) ShowTime(seconds int) { h.seconds = seconds }

func (h *hud) String() string {
	return fmt.Sprintf("Score: %d   Time: %d", h.score, h.seconds)
}

// Game implements ebiten.Game around one Bubble Pop session at a time.
type Game struct {
	cfg     config.BubblePopConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	surface *imageSurface
	clock   *sched.Clock
	session *bubblepop.Session
	hud     *hud
	audio   bubblepop.AudioCue
	text    core.Color
	input   core.InputFrame
}

// NewGame creates the game and its first session. audio may be nil.
func NewGame(opts Options, cue bubblepop.AudioCue) (*Game, error) {
	bg, err := core.ParseHex(opts.Game.Style.Background)
	if err != nil {
		return nil, fmt.Errorf("gui: background: %w", err)
	}
	textColor, err := core.ParseHex(opts.Game.Style.Text)
	if err != nil {
		return nil, fmt.Errorf("gui: text: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		cfg:     opts.Game,
		runtime: rt,
		logger:  logger,
		surface: newImageSurface(rt.ScreenW, rt.ScreenH, bg),
		hud:     &hud{},
		audio:   cue,
		text:    textColor,
		input:   core.NewInputFrame(),
	}
	if err := g.newSession(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newSession() error {
	g.clock = sched.NewClock()
	g.hud.ShowScore(0)
	g.hud.ShowTime(g.cfg.Round.Duration)

	s, err := bubblepop.New(bubblepop.Options{
		Config:    g.cfg,
		Seed:      g.runtime.Seed,
		Surface:   g.surface,
		Scheduler: g.clock,
		Audio:     g.audio,
		Display:   g.hud,
		Logger:    g.logger,
	})
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	g.session = s
	return nil
}

// Update collects input and runs one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.input.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.Set(core.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.input.Click(core.Point{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.input.Click(core.Point{X: float64(x), Y: float64(y)})
	}

	err := g.step()
	g.input.Clear()
	return err
}

// step applies the collected input, then the countdown, then the frame
// callbacks.
func (g *Game) step() error {
	if g.input.Has(core.ActionRestart) && g.session.Phase() == bubblepop.PhaseOver {
		g.runtime.Seed = time.Now().UnixNano()
		return g.newSession()
	}
	g.session.Apply(g.input)
	g.clock.Advance(time.Second / time.Duration(g.runtime.TickRate))
	g.clock.Frame()
	return nil
}

// Draw copies the canvas to the screen and draws the HUD over it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.img, &ebiten.DrawImageOptions{})
	if g.session.Phase() != bubblepop.PhaseNotStarted {
		drawText(screen, g.surface.face, hudX, hudY, g.hud.String(), g.text, core.AlignLeft)
	}
}

// Layout keeps the canvas the size of the window and redraws on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.resize(outsideWidth, outsideHeight) {
		g.session.Redraw()
	}
	return g.surface.img.Bounds().Dx(), g.surface.img.Bounds().Dy()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = opts.Game.Window.Width, opts.Game.Window.Height
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var cue bubblepop.AudioCue
	if opts.Game.Audio.Enabled {
		pop, err := newPopSound(audio.NewContext(sampleRate), opts.Game.Audio, opts.Logger)
		if err != nil {
			return err
		}
		cue = pop
	}

	game, err := NewGame(opts, cue)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowTitle(opts.Game.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.runtime.TickRate)

	opts.Logger.Info("window opened", "width", opts.Runtime.ScreenW, "height", opts.Runtime.ScreenH)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
