package game

// Roller is the source of randomness for spawning.
// *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// Spawner creates enemies and bonuses at the right edge with a fixed
// per-tick probability each. Population is not capped.
type Spawner struct {
	EnemyChance int // Percent per tick
	BonusChance int // Percent per tick
}

// DefaultSpawner returns the standard spawn probabilities.
func DefaultSpawner() Spawner {
	return Spawner{
		EnemyChance: EnemySpawnChance,
		BonusChance: BonusSpawnChance,
	}
}

// Spawn runs one tick of independent trials and returns what was created:
// at most one enemy and at most one bonus.
func (s Spawner) Spawn(r Roller) (enemies, bonuses []Entity) {
	if r.Intn(100) < s.EnemyChance {
		enemies = append(enemies, NewEnemy(SpawnX, spawnRow(r)))
	}
	if r.Intn(100) < s.BonusChance {
		bonuses = append(bonuses, NewBonus(SpawnX, spawnRow(r)))
	}
	return enemies, bonuses
}

// spawnRow picks a row uniformly within the play bounds.
func spawnRow(r Roller) int {
	return MinRow + r.Intn(MaxRow-MinRow+1)
}
