package game

import "time"

// Grid dimensions. Rows 1..Height-2 are the vertical play bounds.
const (
	Width  = 90
	Height = 25

	// ScreenHeight is the playfield plus the status line beneath it.
	ScreenHeight = Height + 1

	MinRow = 1
	MaxRow = Height - 2
)

// TickInterval is the fixed delay between simulation ticks.
const TickInterval = 50 * time.Millisecond

// Player setup.
const (
	InitialLives = 3
	PlayerStartX = 5
	PlayerStartY = Height / 2

	// MuzzleOffset is how far ahead of the player a bullet appears.
	MuzzleOffset = 4
)

// Spawning, in percent per tick.
const (
	EnemySpawnChance = 10
	BonusSpawnChance = 2

	SpawnX = Width - 5
)

// Collision radii: a hit needs the same row and |dx| strictly below the radius.
const (
	BonusPickupRadius = 3
	PlayerHitRadius   = 4
	BulletHitRadius   = 2
)

// Scoring.
const (
	BonusValue  = 150
	EnemyReward = 50
)

// MaxBulletX is the last column a bullet may occupy.
const MaxBulletX = Width - 2
