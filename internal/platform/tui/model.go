package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

// Rows taken by the HUD above the canvas and the help line below it.
const (
	hudRows    = 1
	footerRows = 1
	chromeRows = hudRows + footerRows
)

// Options configures the terminal front end.
type Options struct {
	Game    config.BubblePopConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Bell receives the pop cue; nil disables it.
	Bell io.Writer
}

// Model is the Bubble Tea model running one Bubble Pop session at a time.
type Model struct {
	game       config.BubblePopConfig
	runtime    core.RuntimeConfig
	logger     *log.Logger
	screen     *core.Screen
	clock      *sched.Clock
	session    *bubblepop.Session
	hud        *hud
	audio      bubblepop.AudioCue
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates the model and a fresh session sized to the runtime config.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	bg, err := core.ParseHex(opts.Game.Style.Background)
	if err != nil {
		return Model{}, fmt.Errorf("tui: background: %w", err)
	}
	screen := core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-chromeRows, 1))
	screen.SetBackground(bg)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var audio bubblepop.AudioCue
	if opts.Bell != nil && opts.Game.Audio.Enabled {
		audio = bell{w: opts.Bell}
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       opts.Game,
		runtime:    cfg,
		logger:     logger,
		screen:     screen,
		hud:        &hud{},
		audio:      audio,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	if err := m.newSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newSession replaces the current session with a fresh one on a new clock.
func (m *Model) newSession() error {
	m.clock = sched.NewClock()
	m.hud.ShowScore(0)
	m.hud.ShowTime(m.game.Round.Duration)

	s, err := bubblepop.New(bubblepop.Options{
		Config:    m.game,
		Seed:      m.runtime.Seed,
		Surface:   m.screen,
		Scheduler: m.clock,
		Audio:     m.audio,
		Display:   m.hud,
		Logger:    m.logger,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	m.session = s
	m.syncKeys()
	return nil
}

// syncKeys enables only the bindings that apply to the current phase.
func (m *Model) syncKeys() {
	phase := m.session.Phase()
	m.keys.Start.SetEnabled(phase == bubblepop.PhaseNotStarted)
	m.keys.Restart.SetEnabled(phase == bubblepop.PhaseOver)
	m.keyMapper.keys = m.keys
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left press on the canvas into a click at the center
// of the pressed cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row := msg.Y - hudRows
	if msg.X < 0 || msg.X >= m.screen.Cols() || row < 0 || row >= m.screen.Rows() {
		return m, nil
	}
	m.inputFrame.Click(m.screen.CellCenter(msg.X, row))
	return m, nil
}

// handleResize resizes the canvas and redraws the current phase. New bubbles
// spawn relative to the new bounds; live ones keep their positions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-chromeRows, 1))
	m.help.Width = msg.Width
	m.session.Redraw()
	return m, nil
}

// handleTick runs one frame: input first, then the countdown, then the frame
// callbacks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.session.Phase() == bubblepop.PhaseOver {
		m.runtime.Seed = time.Now().UnixNano()
		if err := m.newSession(); err != nil {
			m.logger.Error("restart failed", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	m.session.Apply(m.inputFrame)
	m.clock.Advance(frameDuration(m.runtime.TickRate))
	m.clock.Frame()
	m.syncKeys()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the HUD, the canvas and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.runtime.ScreenW),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Session returns the running session.
func (m Model) Session() *bubblepop.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	if opts.Bell == nil {
		opts.Bell = os.Stderr
	}
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse clicks
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
