package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventBonusCollected
	EventBonusMissed
	EventEnemyDestroyed
	EventEnemyEscaped
	EventPlayerHit
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBulletFired:
		return "bullet_fired"
	case EventBonusCollected:
		return "bonus_collected"
	case EventBonusMissed:
		return "bonus_missed"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventPlayerHit:
		return "player_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one occurrence during a tick, with the grid cell where it happened
// and the points it awarded (zero for most kinds).
type Event struct {
	Kind   EventKind
	X, Y   int
	Points int
}
