package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakematrix/internal/audio"
	"github.com/vovakirdan/snakematrix/internal/core"
	"github.com/vovakirdan/snakematrix/internal/matrix"
)

// pingDuration is how long a freshly placed food rings its row.
const pingDuration = 150 * time.Millisecond

// Options configures the player model.
type Options struct {
	BeatInterval  time.Duration
	SnakeInterval time.Duration
	FrameRate     int          // Renderer cap in frames per second, 0 keeps the default
	Mixer         *audio.Mixer // nil plays silently
	Logger        *log.Logger  // nil discards
}

// Model is the Bubble Tea model that plays a snake matrix.
type Model struct {
	engine    *matrix.Locked
	conductor *audio.Conductor
	mixer     *audio.Mixer
	logger    *log.Logger
	opts      Options

	screen *core.Screen
	layout Layout
	keys   KeyMap
	help   help.Model
	width  int
	height int

	cursor     matrix.Coord
	showCursor bool
	press      matrix.Coord
	pressed    bool // Whether a mouse press landed on a cell

	paused   bool
	gen      int
	quitting bool
}

// NewModel creates a player for engine. The engine should already be seeded.
func NewModel(engine *matrix.Locked, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		engine: engine,
		mixer:  opts.Mixer,
		logger: logger,
		opts:   opts,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	if opts.Mixer != nil {
		m.conductor = audio.NewConductor(opts.Mixer)
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts both clocks.
func (m Model) Init() tea.Cmd {
	return m.startClocks()
}

func (m Model) startClocks() tea.Cmd {
	return tea.Batch(
		beatTickCmd(m.opts.BeatInterval, m.gen),
		snakeTickCmd(m.opts.SnakeInterval, m.gen),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case BeatTickMsg:
		return m.handleBeat(msg)

	case SnakeTickMsg:
		return m.handleSnake(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.silence()
		return m, tea.Quit

	case core.ActionSnakeUp:
		m.engine.SetDirection(matrix.Up)
	case core.ActionSnakeDown:
		m.engine.SetDirection(matrix.Down)
	case core.ActionSnakeLeft:
		m.engine.SetDirection(matrix.Left)
	case core.ActionSnakeRight:
		m.engine.SetDirection(matrix.Right)

	case core.ActionCursorUp:
		m.moveCursor(0, -1)
	case core.ActionCursorDown:
		m.moveCursor(0, 1)
	case core.ActionCursorLeft:
		m.moveCursor(-1, 0)
	case core.ActionCursorRight:
		m.moveCursor(1, 0)

	case core.ActionTap:
		m.showCursor = true
		m.tap(m.cursor)

	case core.ActionPause:
		return m.togglePause()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}

	return m, nil
}

// handleMouse taps a cell when a press and the following release land on it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press, m.pressed = m.layout.CellAt(msg.X, msg.Y)

	case tea.MouseActionRelease:
		c, ok := m.layout.CellAt(msg.X, msg.Y)
		if m.pressed && ok && c == m.press {
			m.tap(c)
		}
		m.pressed = false
	}
	return m, nil
}

// handleBeat advances the beat and plays the new column.
func (m Model) handleBeat(msg BeatTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.paused {
		return m, nil
	}

	var err error
	m.engine.Do(func(e *matrix.Matrix) {
		e.BeatTick()
		if m.conductor != nil {
			err = m.conductor.OnBeat(e)
		}
	})
	if err != nil {
		m.logger.Error("beat playback failed", "error", err)
	}

	return m, beatTickCmd(m.opts.BeatInterval, m.gen)
}

// handleSnake moves the snake one cell.
func (m Model) handleSnake(msg SnakeTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.paused {
		return m, nil
	}
	m.engine.SnakeTick()
	return m, snakeTickCmd(m.opts.SnakeInterval, m.gen)
}

// togglePause freezes or resumes both clocks. Ticks already scheduled
// belong to the old generation and are dropped when they arrive.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	m.paused = !m.paused
	m.gen++
	if m.paused {
		m.silence()
		m.logger.Debug("paused")
		return m, nil
	}
	m.logger.Debug("resumed")
	return m, m.startClocks()
}

// tap cycles the food at c and rings its row when food was placed.
func (m *Model) tap(c matrix.Coord) {
	if err := m.engine.Tap(c); err != nil {
		m.logger.Warn("tap rejected", "cell", c, "error", err)
		return
	}
	m.logger.Debug("tap", "cell", c)

	if m.mixer == nil {
		return
	}
	if state, err := m.engine.State(c); err == nil && state.Any(matrix.FoodMask) {
		m.mixer.Ping(c.Y, pingDuration)
	}
}

func (m *Model) moveCursor(dx, dy int) {
	m.showCursor = true
	m.cursor = matrix.C(
		core.Clamp(m.cursor.X+dx, 0, m.engine.Width()-1),
		core.Clamp(m.cursor.Y+dy, 0, m.engine.Height()-1),
	)
}

// silence stops every voice.
func (m *Model) silence() {
	if m.mixer == nil {
		return
	}
	for y := 0; y < m.mixer.Voices(); y++ {
		m.mixer.Stop(y)
	}
}

// resize recomputes the layout, leaving room for the help view.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	gridH := core.Max(height-lipgloss.Height(m.help.View(m.keys)), 0)
	m.layout = NewLayout(width, gridH, m.engine.Width(), m.engine.Height())
	m.screen.Resize(width, gridH)
}

// Paused reports whether both clocks are frozen.
func (m Model) Paused() bool { return m.paused }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	m.screen.Clear()
	DrawMatrix(m.screen, m.layout, snap, m.cursor, m.showCursor)
	DrawFrame(m.screen, m.layout, snap, m.paused)
	status := StatusLine(snap, m.paused, m.opts.FrameRate)
	m.screen.DrawTextColored(0, m.layout.StatusY(), status, core.ColorLightGray)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func programOptions(opts Options) []tea.ProgramOption {
	po := []tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks tap cells
	}
	if opts.FrameRate > 0 {
		po = append(po, tea.WithFPS(opts.FrameRate))
	}
	return po
}

// Run starts the Bubble Tea program for engine.
func Run(engine *matrix.Locked, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(engine, cfg, opts)

	p := tea.NewProgram(model, programOptions(opts)...)

	_, err := p.Run()
	return err
}
