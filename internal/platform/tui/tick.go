// Package tui provides the Bubble Tea front end for the snake matrix.
// It runs the beat and snake clocks, maps keys and mouse clicks to engine
// calls, and draws the grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// BeatTickMsg is sent to advance the beat cursor.
type BeatTickMsg struct {
	Time time.Time
	gen  int
}

// SnakeTickMsg is sent to move the snake.
type SnakeTickMsg struct {
	Time time.Time
	gen  int
}

// The generation lets the model drop ticks scheduled before a pause, so
// pausing and resuming within one interval never doubles a clock.

// beatTickCmd returns a Bubble Tea command that sends one beat tick after interval.
func beatTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return BeatTickMsg{Time: t, gen: gen}
	})
}

// snakeTickCmd returns a Bubble Tea command that sends one snake tick after interval.
func snakeTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SnakeTickMsg{Time: t, gen: gen}
	})
}
