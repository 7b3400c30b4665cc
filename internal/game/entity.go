package game

// Kind tags the variant of an Entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindBonus
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// velocityX is the per-tick horizontal delta of each kind.
// The player only moves from input.
var velocityX = map[Kind]int{
	KindPlayer: 0,
	KindEnemy:  -1,
	KindBullet: 2,
	KindBonus:  -1,
}

// Entity is any movable, drawable game object.
// Appearance is looked up from Kind by the renderer.
type Entity struct {
	Kind Kind
	X, Y int
}

// Player is the ship entity plus its remaining lives.
type Player struct {
	Entity
	Lives int
}

// NewPlayer returns a fresh ship at the start position with full lives.
func NewPlayer() Player {
	return Player{
		Entity: Entity{Kind: KindPlayer, X: PlayerStartX, Y: PlayerStartY},
		Lives:  InitialLives,
	}
}

// NewEnemy returns an enemy at (x, y).
func NewEnemy(x, y int) Entity {
	return Entity{Kind: KindEnemy, X: x, Y: y}
}

// NewBullet returns a bullet at (x, y).
func NewBullet(x, y int) Entity {
	return Entity{Kind: KindBullet, X: x, Y: y}
}

// NewBonus returns a bonus pickup at (x, y).
func NewBonus(x, y int) Entity {
	return Entity{Kind: KindBonus, X: x, Y: y}
}

// Move returns the entity after one tick of its movement rule.
func (e Entity) Move() Entity {
	e.X += velocityX[e.Kind]
	return e
}

// Points is the score awarded when the entity is collected or destroyed.
func (e Entity) Points() int {
	switch e.Kind {
	case KindBonus:
		return BonusValue
	case KindEnemy:
		return EnemyReward
	default:
		return 0
	}
}

// moveAll advances every entity in place.
func moveAll(es []Entity) {
	for i := range es {
		es[i] = es[i].Move()
	}
}
