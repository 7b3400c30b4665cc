package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gradius/internal/config"
	"github.com/vovakirdan/tui-gradius/internal/core"
	"github.com/vovakirdan/tui-gradius/internal/game"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the configuration; ForceQuit is always ctrl+c.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Fire      key.Binding
	Start     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds key bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "move up"),
		Down:      binding(cfg.Down, "move down"),
		Fire:      binding(cfg.Fire, "fire"),
		Start:     binding(cfg.Start, "start mission"),
		Quit:      binding(cfg.Quit, "exit"),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = DisplayName(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// DisplayName returns a printable name for a Bubble Tea key string.
func DisplayName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit, k.Up, k.Down, k.Fire}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Quit},
		{k.Up, k.Down, k.Fire},
		{k.ForceQuit},
	}
}

// MenuAction maps a key pressed on the main menu.
func (k KeyMap) MenuAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// PlayAction maps a key pressed during play.
func (k KeyMap) PlayAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	}
	return core.ActionNone
}

// MenuLabels returns the key names printed next to the menu entries.
func (k KeyMap) MenuLabels() game.MenuLabels {
	return game.MenuLabels{
		Start: firstKey(k.Start),
		Quit:  firstKey(k.Quit),
	}
}

func firstKey(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return DisplayName(keys[0])
	}
	return ""
}
