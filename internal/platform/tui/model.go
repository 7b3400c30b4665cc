package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gradius/internal/config"
	"github.com/vovakirdan/tui-gradius/internal/core"
	"github.com/vovakirdan/tui-gradius/internal/game"
	"github.com/vovakirdan/tui-gradius/internal/logging"
)

// maxPendingKeys bounds the key queue consumed one key per tick.
const maxPendingKeys = 16

// Options configures a game session.
type Options struct {
	Seed   int64         // RNG seed; 0 picks one from the clock
	Config config.Config // Theme and key bindings
	Logger *log.Logger   // Optional; defaults to a discarding logger
}

// Model is the Bubble Tea model driving the menu, play and game-over phases.
type Model struct {
	game     *game.Game
	renderer *game.Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  []core.Action // Keys pressed during play, oldest first
	tickGen  int           // Generation of the live tick chain
	quitting bool
}

// NewModel creates a model sitting on the main menu.
func NewModel(opts Options) (Model, error) {
	theme, err := opts.Config.ResolveTheme()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	keys := NewKeyMap(opts.Config.Keys)
	return Model{
		game:     game.New(opts.Seed),
		renderer: game.NewRenderer(theme, keys.MenuLabels()),
		screen:   core.NewScreen(game.Width, game.ScreenHeight),
		keys:     keys,
		help:     help.New(),
		logger:   logger.With("seed", opts.Seed),
	}, nil
}

// Init sets the terminal title. Ticks only start with a playthrough.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(game.Title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if msg.Width < game.Width || msg.Height < game.ScreenHeight {
			m.logger.Warn("terminal smaller than the playfield",
				"width", msg.Width, "height", msg.Height,
				"need_width", game.Width, "need_height", game.ScreenHeight)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey routes a key press according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Phase() {
	case game.PhaseMainMenu:
		switch m.keys.MenuAction(msg) {
		case core.ActionStart:
			m.game.Start()
			m.pending = nil
			m.tickGen++
			m.logger.Info("playthrough started", "lives", m.game.Player().Lives)
			return m, tickCmd(m.tickGen)
		case core.ActionQuit:
			m.logger.Info("quit from menu")
			m.quitting = true
			return m, tea.Quit
		}

	case game.PhasePlaying:
		action := m.keys.PlayAction(msg)
		if action != core.ActionNone && len(m.pending) < maxPendingKeys {
			m.pending = append(m.pending, action)
		}

	case game.PhaseGameOver:
		m.game.Dismiss()
		m.logger.Info("back to menu")
	}

	return m, nil
}

// handleTick runs one simulation tick with at most one queued key.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.game.Phase() != game.PhasePlaying {
		return m, nil
	}

	in := core.NewInputFrame()
	if len(m.pending) > 0 {
		in.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(in)
	m.logEvents(result.Events)

	if result.State.GameOver {
		m.pending = nil
		m.logger.Info("game over", "score", result.State.Score, "ticks", m.game.Ticks())
		return m, nil
	}

	return m, tickCmd(m.tickGen)
}

// logEvents writes the tick's events at debug level.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		m.logger.Debug(e.Kind.String(), "x", e.X, "y", e.Y, "points", e.Points, "score", m.game.Score())
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.game)
	view := RenderScreen(m.screen)

	if m.game.Phase() == game.PhaseMainMenu {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Phase returns the current flow phase.
func (m Model) Phase() game.Phase {
	return m.game.Phase()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
