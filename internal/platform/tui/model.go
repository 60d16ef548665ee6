package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/sim"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// Options configures a run of the TUI host.
type Options struct {
	Config config.RunnerConfig
	Store  *storage.Store // may be nil: play without persistence
	Sink   sim.Sink       // extra event sink, may be nil
	Seed   int64          // 0 means time-based
	FPS    int            // render frame rate, 0 means 60
	Width  int
	Height int
}

// Model is the Bubble Tea model hosting the simulation. It owns the
// world, feeds it real frame deltas, maps keys to input frames and
// persists scores on game over.
type Model struct {
	world    *sim.World
	screen   *Screen
	renderer worldRenderer
	store    *storage.Store
	keys     *KeyMapper
	cfg      config.RunnerConfig
	fps      int

	input     sim.InputFrame
	lastFrame time.Time // zero forces a delta reset on the next tick
	paused    bool
	blurred   bool
	quitting  bool

	highScore int  // read once at startup
	newHigh   bool // current run beat the stored high score
	saved     bool // run already persisted for this game over
}

// NewModel creates a model over a fresh world.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	m := Model{
		world:    sim.New(opts.Config, seed, opts.Sink),
		screen:   NewScreen(opts.Width, opts.Height),
		renderer: newWorldRenderer(opts.Config.Track),
		store:    opts.Store,
		keys:     NewKeyMapper(),
		cfg:      opts.Config,
		fps:      fps,
	}

	// The stored high score is read exactly once; everything after that
	// compares against this value in memory.
	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.blurred = false
		m.lastFrame = time.Time{} // no catch-up for time spent unfocused
		return m, nil

	case tea.BlurMsg:
		m.blurred = true
		return m, nil

	case TickMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionMoveLeft:
		m.input.MoveLeft = true

	case ActionMoveRight:
		m.input.MoveRight = true

	case ActionJump:
		m.input.JumpRequested = true

	case ActionConfirm:
		if m.world.Phase() == sim.Menu {
			m.beginRun()
		}

	case ActionRestart:
		if m.world.Phase() == sim.GameOver {
			m.beginRun()
		}

	case ActionPause:
		if m.world.Phase() == sim.Playing {
			m.paused = !m.paused
			m.lastFrame = time.Time{}
		}
	}

	m.world.SetInput(m.input)
	return m, nil
}

// beginRun starts or restarts a session and resets per-run host state.
func (m *Model) beginRun() {
	switch m.world.Phase() {
	case sim.Menu:
		m.world.Start()
	case sim.GameOver:
		m.world.Restart()
	default:
		return
	}
	m.saved = false
	m.newHigh = false
	m.input = sim.InputFrame{}
	m.lastFrame = time.Time{}
}

// handleFrame advances the simulation by the real elapsed time and
// schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused || m.blurred {
		m.lastFrame = time.Time{}
		return m, tickCmd(m.fps)
	}

	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return m, tickCmd(m.fps)
	}

	dt := now.Sub(m.lastFrame).Seconds()
	m.lastFrame = now

	m.world.SetInput(m.input)
	m.world.Advance(dt)

	// Level inputs last one frame; key auto-repeat keeps them alive while
	// a key is held.
	m.input = sim.InputFrame{}

	if m.world.Phase() == sim.GameOver && !m.saved {
		m.finishRun()
	}

	return m, tickCmd(m.fps)
}

// finishRun persists the finished run once. The score is written only
// when it beats the high score read at startup.
func (m *Model) finishRun() {
	m.saved = true
	snap := m.world.Snapshot()

	if snap.Score <= m.highScore {
		return
	}
	m.newHigh = true

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.RecordRun(snap.Score, int(snap.Elapsed), snap.Difficulty)
	}
	m.highScore = snap.Score
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.world.Snapshot()
	m.renderer.Draw(m.screen, snap, hudInfo{
		HighScore: m.highScore,
		NewHigh:   m.newHigh,
		Paused:    m.paused,
	})
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options and blocks
// until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(), // pause the clock while the terminal is unfocused
	)

	_, err := p.Run()
	return err
}
