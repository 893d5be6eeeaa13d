package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Options configures the terminal game.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig // Initial terminal size, frame rate and seed

	// Pilot, when set, flaps on the player's behalf and the first session
	// starts without the title screen.
	Pilot registry.Pilot

	Logger        *log.Logger      // nil discards logs
	Time          clock.TimeSource // nil uses the system clock
	ScreenshotDir string           // "" uses ~/.flappy/screenshots
}

// Model is the Bubble Tea model for the game screen. The frame clock is
// driven by tick messages: each tick first applies the input gathered
// since the last one, then moves the (pausable) clock forward and runs
// the pending frame.
type Model struct {
	game   *flappy.Game
	loop   *clock.Loop
	pclock *clock.PausableClock
	board  *board
	screen *core.Screen
	pilot  registry.Pilot
	logger *log.Logger

	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	tickRate   int
	shotDir    string
	lastShot   string
	quitting   bool
}

// NewModel creates a model showing the title screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	src := opts.Time
	if src == nil {
		src = clock.SystemTime{}
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Display.TickRate
	}

	pclock := clock.NewPausableClock(src)
	loop := clock.NewLoop(pclock.Now())
	b := newBoard(opts.Config.Display, rt.ScreenW, rt.ScreenH)

	g := flappy.New(flappy.Options{
		Config:    opts.Config,
		Scheduler: loop,
		Geometry:  b,
		Presenter: b,
		Logger:    logger,
		Seed:      rt.Seed,
	})

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		game:       g,
		loop:       loop,
		pclock:     pclock,
		board:      b,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH-helpRows),
		pilot:      opts.Pilot,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickRate:   rt.TickRate,
		shotDir:    shotDir,
	}
}

// Init starts the tick loop, and the first session when a pilot plays.
func (m Model) Init() tea.Cmd {
	if m.pilot != nil {
		m.start()
	}
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit, screenshot and help act
// immediately; everything else waits for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.game.Stop()
		m.logger.Debug("quit", "paused_total", m.pclock.TotalPaused())
		m.quitting = true
		return m, tea.Quit
	case core.ActionSnapshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.lastShot = path
			m.logger.Info("screenshot saved", "path", path)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize updates the screen buffer. The running session keeps going
// and picks up the new play area on its next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.board.resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	area := m.board.PlayArea()
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "width", area.W, "height", area.H)
	return m, nil
}

// handleTick applies buffered input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.inputFrame.Clear()

	if m.pclock.Paused() {
		return m, tickCmd(m.tickRate)
	}

	if s := m.game.Session(); s != nil && s.Running() && m.pilot != nil {
		if m.pilot.ShouldFlap(s.Frame(m.board.PlayArea())) {
			m.game.Jump()
		}
	}

	m.loop.Advance(m.pclock.Now())
	m.loop.Frame()

	return m, tickCmd(m.tickRate)
}

// applyInput acts on the actions gathered since the last tick.
func (m *Model) applyInput() {
	in := m.inputFrame
	s := m.game.Session()

	switch {
	case s == nil:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			m.start()
		}
		return
	case in.Has(core.ActionRestart), !s.Running() && in.Has(core.ActionConfirm):
		m.pclock.Resume()
		m.restart()
		return
	case in.Has(core.ActionPause) && s.Running():
		paused := m.pclock.Toggle()
		m.logger.Debug("pause toggled", "paused", paused)
	}

	if in.Has(core.ActionJump) && !m.pclock.Paused() {
		m.game.Jump()
	}
}

// start begins the first session.
func (m *Model) start() {
	m.begin(m.game.Start())
}

// restart replaces the current session, aborting it if still running.
func (m *Model) restart() {
	m.begin(m.game.Restart())
}

func (m *Model) begin(s *flappy.Session) {
	m.lastShot = ""
	if m.pilot != nil {
		m.pilot.Reset(s.Summary().Seed)
	}
}

// saveScreenshot writes the current screen to a timestamped file.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// State reports the game state, including whether the clock is paused.
func (m Model) State() core.GameState {
	st := m.game.State()
	st.Paused = m.pclock.Paused()
	return st
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
