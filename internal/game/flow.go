package game

// Phase is the top-level game flow state.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	// PhaseHighScores exists for completeness; no transition leads to it.
	PhaseHighScores
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseHighScores:
		return "high_scores"
	default:
		return "unknown"
	}
}

// Start begins a fresh playthrough: new ship with full lives, empty
// collections, zero score. It always resets, even when called mid-game.
func (g *Game) Start() {
	g.player = NewPlayer()
	g.enemies = nil
	g.bullets = nil
	g.bonuses = nil
	g.score = 0
	g.ticks = 0
	g.phase = PhasePlaying
}

// Dismiss leaves the game-over screen for the main menu.
// Returns false if the game was not over.
func (g *Game) Dismiss() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.phase = PhaseMainMenu
	return true
}
