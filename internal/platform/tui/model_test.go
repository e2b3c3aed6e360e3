package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/snakematrix/internal/audio"
	"github.com/vovakirdan/snakematrix/internal/core"
	"github.com/vovakirdan/snakematrix/internal/matrix"
)

func newTestModel(t *testing.T, mixer *audio.Mixer) (Model, *matrix.Locked) {
	t.Helper()
	m, err := matrix.New(8, 5, matrix.WithSeed(1))
	if err != nil {
		t.Fatalf("matrix.New() error = %v", err)
	}
	engine := matrix.NewLocked(m)
	model := NewModel(engine, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, Options{
		BeatInterval:  time.Second,
		SnakeInterval: time.Second,
		Mixer:         mixer,
	})
	return model, engine
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelInitStartsClocks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.Init() == nil {
		t.Error("Init() should schedule the clocks")
	}
}

func TestModelBeatTick(t *testing.T) {
	m, engine := newTestModel(t, nil)

	m, cmd := update(t, m, BeatTickMsg{})
	if engine.BeatCursor() != 1 {
		t.Errorf("beat = %d, want 1", engine.BeatCursor())
	}
	if cmd == nil {
		t.Error("beat tick should schedule the next one")
	}
}

func TestModelSnakeTick(t *testing.T) {
	m, engine := newTestModel(t, nil)

	_, cmd := update(t, m, SnakeTickMsg{})
	if got := engine.Snapshot().BodyLen(); got != 1 {
		t.Errorf("body = %d, want 1 after first tick", got)
	}
	if cmd == nil {
		t.Error("snake tick should schedule the next one")
	}
}

func TestModelPauseDropsTicks(t *testing.T) {
	m, engine := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	if cmd != nil {
		t.Error("pausing should not schedule ticks")
	}

	m, cmd = update(t, m, BeatTickMsg{gen: m.gen})
	if engine.BeatCursor() != 0 || cmd != nil {
		t.Error("beat tick while paused should be ignored")
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.Paused() {
		t.Fatal("second p should resume")
	}
	if cmd == nil {
		t.Error("resuming should restart the clocks")
	}

	// A tick scheduled before the pause arrives late and is dropped.
	_, cmd = update(t, m, SnakeTickMsg{gen: 0})
	if engine.Snapshot().BodyLen() != 0 || cmd != nil {
		t.Error("stale snake tick should be ignored")
	}
}

func TestModelSteering(t *testing.T) {
	m, engine := newTestModel(t, nil)

	tests := []struct {
		msg  tea.KeyMsg
		want matrix.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, matrix.Right},
		{tea.KeyMsg{Type: tea.KeyDown}, matrix.Down},
		{tea.KeyMsg{Type: tea.KeyLeft}, matrix.Left},
		{tea.KeyMsg{Type: tea.KeyUp}, matrix.Up},
	}
	for _, tt := range tests {
		m, _ = update(t, m, tt.msg)
		if got := engine.Snapshot().Direction(); got != tt.want {
			t.Errorf("after %s direction = %s, want %s", tt.msg, got, tt.want)
		}
	}
}

func TestModelKeyboardTap(t *testing.T) {
	m, engine := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('l'))
	m, _ = update(t, m, runeKey('j'))
	if m.cursor != matrix.C(1, 1) {
		t.Fatalf("cursor = %v, want (1,1)", m.cursor)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if ok, _ := isSinFood(engine, matrix.C(1, 1)); !ok {
		t.Error("space should tap the cell under the cursor")
	}

	// The cursor stops at the edges.
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, runeKey('h'))
		m, _ = update(t, m, runeKey('k'))
	}
	if m.cursor != matrix.C(0, 0) {
		t.Errorf("cursor = %v, want clamped to (0,0)", m.cursor)
	}
}

func isSinFood(engine *matrix.Locked, c matrix.Coord) (bool, error) {
	state, err := engine.State(c)
	return state.Has(matrix.SinFood), err
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestModelMouseTap(t *testing.T) {
	m, engine := newTestModel(t, nil)
	target := matrix.C(2, 3)
	r := m.layout.CellRect(target)

	m, _ = update(t, m, mouse(r.X, r.Y, tea.MouseActionPress))
	m, _ = update(t, m, mouse(r.X+1, r.Y, tea.MouseActionRelease))

	if ok, _ := isSinFood(engine, target); !ok {
		t.Error("press and release on one cell should tap it")
	}
}

func TestModelMouseDragCancels(t *testing.T) {
	m, engine := newTestModel(t, nil)
	from := m.layout.CellRect(matrix.C(2, 3))
	to := m.layout.CellRect(matrix.C(3, 3))

	m, _ = update(t, m, mouse(from.X, from.Y, tea.MouseActionPress))
	m, _ = update(t, m, mouse(to.X, to.Y, tea.MouseActionRelease))

	for _, c := range []matrix.Coord{matrix.C(2, 3), matrix.C(3, 3)} {
		if state, _ := engine.State(c); state.Any(matrix.FoodMask) {
			t.Errorf("drag should not tap %v", c)
		}
	}

	// A release without a press does nothing either.
	_, _ = update(t, m, mouse(to.X, to.Y, tea.MouseActionRelease))
	if state, _ := engine.State(matrix.C(3, 3)); state.Any(matrix.FoodMask) {
		t.Error("release alone should not tap")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	short := m.layout

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should show full help")
	}
	if m.screen.Height() >= 23 {
		t.Errorf("full help should take rows from the grid, screen height %d", m.screen.Height())
	}
	if m.layout.CellH >= short.CellH {
		t.Errorf("cell height = %d with full help, want below %d", m.layout.CellH, short.CellH)
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 23 || m.layout.CellH != short.CellH {
		t.Errorf("closing help should restore the grid, screen height %d", m.screen.Height())
	}
}

func TestProgramOptionsFrameRate(t *testing.T) {
	base := len(programOptions(Options{}))
	if got := len(programOptions(Options{FrameRate: 60})); got != base+1 {
		t.Errorf("programOptions with a frame rate = %d options, want %d", got, base+1)
	}
}

func TestModelViewShowsFrameAndRate(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.opts.FrameRate = 30

	view := m.View()
	for _, want := range []string{"┌", "┘", string(glyphBeat), "30 fps"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = update(t, m, runeKey('p'))
	if view := m.View(); !strings.Contains(view, " paused ") {
		t.Error("paused View() should carry the banner")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, want 120", m.screen.Width())
	}
	if m.layout.ScreenW != 120 {
		t.Errorf("layout width = %d, want 120", m.layout.ScreenW)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command should produce QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "beat 1/8") {
		t.Errorf("View() missing status line:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() missing help:\n%s", view)
	}
}

func TestModelAudio(t *testing.T) {
	mixer := audio.NewMixer(beep.SampleRate(1000), make([]float64, 5), 10*time.Millisecond)
	m, engine := newTestModel(t, mixer)

	// Tapping food rings the row.
	m, _ = update(t, m, runeKey('j'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !mixer.Playing(1) {
		t.Error("placing food should ping its row")
	}

	// Put the head in column 1, then let the beat reach it.
	engine.Do(func(e *matrix.Matrix) {
		e.SetDirection(matrix.Right)
	})
	m, _ = update(t, m, SnakeTickMsg{})
	m, _ = update(t, m, SnakeTickMsg{})
	head := engine.HeadPosition()
	for engine.BeatCursor() != head.X {
		m, _ = update(t, m, BeatTickMsg{})
	}
	if !mixer.Playing(head.Y) {
		t.Errorf("row %d should play when the beat crosses the head", head.Y)
	}

	m, _ = update(t, m, runeKey('p'))
	mixer.Stream(make([][2]float64, 50))
	for y := 0; y < mixer.Voices(); y++ {
		if mixer.Playing(y) {
			t.Errorf("row %d still playing after pause", y)
		}
	}
}
