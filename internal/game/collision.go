package game

import "github.com/vovakirdan/tui-gradius/internal/core"

// Collision resolution filters each collection into a retained prefix of
// itself (kept := s[:0]). Every element is read exactly once before any
// write can reach its index, so nothing is skipped or processed twice.

// removeExitedBullets drops bullets past the right edge.
func (g *Game) removeExitedBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.X > MaxBulletX {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

// resolveBonuses awards bonuses the ship touches and drops the ones that
// reached the left edge unclaimed.
func (g *Game) resolveBonuses() {
	kept := g.bonuses[:0]
	for _, bn := range g.bonuses {
		switch {
		case touches(bn, g.player.Entity, BonusPickupRadius):
			g.score += bn.Points()
			g.emit(core.EventBonusCollected, bn, bn.Points())
		case bn.X < 1:
			g.emit(core.EventBonusMissed, bn, 0)
		default:
			kept = append(kept, bn)
		}
	}
	g.bonuses = kept
}

// resolveEnemies handles, per enemy: ramming the ship, being shot, and
// leaving through the left edge, in that priority.
func (g *Game) resolveEnemies() {
	spent := make([]bool, len(g.bullets))

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if touches(e, g.player.Entity, PlayerHitRadius) {
			g.hitPlayer(e)
			continue
		}

		if j := g.bulletHitting(e, spent); j >= 0 {
			spent[j] = true
			g.score += e.Points()
			g.emit(core.EventEnemyDestroyed, e, e.Points())
			continue
		}

		if e.X < 1 {
			g.emit(core.EventEnemyEscaped, e, 0)
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	live := g.bullets[:0]
	for i, b := range g.bullets {
		if !spent[i] {
			live = append(live, b)
		}
	}
	g.bullets = live
}

// bulletHitting returns the index of the newest unspent bullet within
// range of e, or -1. One bullet destroys at most one enemy.
func (g *Game) bulletHitting(e Entity, spent []bool) int {
	for j := len(g.bullets) - 1; j >= 0; j-- {
		if spent[j] {
			continue
		}
		if touches(g.bullets[j], e, BulletHitRadius) {
			return j
		}
	}
	return -1
}

// hitPlayer costs the ship a life. Lives never drop below zero; reaching
// zero ends the playthrough on this tick.
func (g *Game) hitPlayer(e Entity) {
	if g.player.Lives == 0 {
		return
	}
	g.player.Lives--
	g.emit(core.EventPlayerHit, e, 0)

	if g.player.Lives == 0 {
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver, g.player.Entity, 0)
	}
}

// touches reports whether a and b share a row and are horizontally closer
// than radius.
func touches(a, b Entity, radius int) bool {
	return a.Y == b.Y && core.Abs(a.X-b.X) < radius
}
