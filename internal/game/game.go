// Package game implements the Gradius Elite side-scrolling shooter.
// The ship holds a fixed column on the left, dodges enemies flying in
// from the right, shoots them for points and collects bonus coins.
//
// Everything here is pure simulation: no terminal, no clock. The
// platform layer calls Step once per tick and draws with a Renderer.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-gradius/internal/core"
)

// Game holds the complete state of one session.
type Game struct {
	rng     Roller
	spawner Spawner
	phase   Phase
	player  Player
	enemies []Entity
	bullets []Entity
	bonuses []Entity
	score   int
	ticks   int          // Ticks since the playthrough started
	events  []core.Event // Events of the tick in progress
}

// New creates a game in the main menu using a seeded RNG.
func New(seed int64) *Game {
	return NewWithRoller(rand.New(rand.NewSource(seed)))
}

// NewWithRoller creates a game in the main menu drawing spawn rolls from r.
func NewWithRoller(r Roller) *Game {
	return &Game{
		rng:     r,
		spawner: DefaultSpawner(),
		phase:   PhaseMainMenu,
		player:  NewPlayer(),
	}
}

// Step advances the playthrough by one tick. Outside PhasePlaying it is a no-op.
//
// Order within a tick: input, bullet movement and exit, spawning, enemy and
// bonus movement, bonus pickups, then enemy collisions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.events = nil

	g.applyInput(in)

	moveAll(g.bullets)
	g.removeExitedBullets()

	enemies, bonuses := g.spawner.Spawn(g.rng)
	g.enemies = append(g.enemies, enemies...)
	g.bonuses = append(g.bonuses, bonuses...)

	moveAll(g.bonuses)
	moveAll(g.enemies)

	g.resolveBonuses()
	g.resolveEnemies()

	return core.StepResult{State: g.State(), Events: g.events}
}

// applyInput moves the ship within the play bounds and fires.
func (g *Game) applyInput(in core.InputFrame) {
	dy := 0
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	g.player.Y = core.Clamp(g.player.Y+dy, MinRow, MaxRow)
	if in.Has(core.ActionFire) {
		b := NewBullet(g.player.X+MuzzleOffset, g.player.Y)
		g.bullets = append(g.bullets, b)
		g.emit(core.EventBulletFired, b, 0)
	}
}

// emit records an event for the current tick.
func (g *Game) emit(kind core.EventKind, at Entity, points int) {
	g.events = append(g.events, core.Event{Kind: kind, X: at.X, Y: at.Y, Points: points})
}

// State returns the externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.player.Lives,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the current flow phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the score of the current or last playthrough.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks since the playthrough started.
func (g *Game) Ticks() int {
	return g.ticks
}

// Player returns the ship.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []Entity {
	return g.enemies
}

// Bullets returns the live bullets. The slice must not be modified.
func (g *Game) Bullets() []Entity {
	return g.bullets
}

// Bonuses returns the live bonuses. The slice must not be modified.
func (g *Game) Bonuses() []Entity {
	return g.bonuses
}
