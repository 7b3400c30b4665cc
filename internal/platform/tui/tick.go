// Package tui provides the Bubble Tea front end for the game.
// It maps keys to actions, paces the tick loop and styles the rendered frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gradius/internal/game"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that produced it; ticks from an earlier
// playthrough carry a stale generation and are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of chain gen after the fixed interval.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
