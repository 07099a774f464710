package entity

// EnemyState is the patrol/death state of an enemy
type EnemyState int

const (
	EnemyCrawl EnemyState = iota
	EnemyDying
	EnemyDead
)

// String returns the string representation of the enemy state
func (s EnemyState) String() string {
	switch s {
	case EnemyCrawl:
		return "Crawl"
	case EnemyDying:
		return "Dying"
	case EnemyDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Enemy animation names
const (
	AnimCrawl = "crawl"
	AnimDie   = "die"
)

// DefaultEnemySpeed is the spider patrol speed in px/s
const DefaultEnemySpeed = 100

// Enemy represents a patrolling spider
type Enemy struct {
	Body
	Speed float64 // patrol speed magnitude
	State EnemyState

	// Collidable is cleared on death so physics stops resolving the body
	Collidable bool
}

// NewEnemy creates a crawling enemy heading right
func NewEnemy(id EntityID, pos, size Vec2, speed float64) *Enemy {
	return &Enemy{
		Body: Body{
			ID:     id,
			Pos:    pos,
			Size:   size,
			Vel:    Vec2{X: speed},
			Facing: 1,
			Alive:  true,
		},
		Speed:      speed,
		State:      EnemyCrawl,
		Collidable: true,
	}
}

// Patrol flips direction on boundary touches reported by physics.
// A right touch wins if both sides are reported. Nothing changes without a touch.
func (e *Enemy) Patrol(touchLeft, touchRight bool) {
	if e.State != EnemyCrawl {
		return
	}
	switch {
	case touchRight:
		e.Vel.X = -e.Speed
		e.Facing = -1
	case touchLeft:
		e.Vel.X = e.Speed
		e.Facing = 1
	}
}

// Die starts the death sequence. Returns false if the enemy is not crawling.
func (e *Enemy) Die() bool {
	if e.State != EnemyCrawl {
		return false
	}
	e.State = EnemyDying
	e.Collidable = false
	e.Vel = Vec2{}
	return true
}

// AnimationCompleted finishes the death sequence once the die animation ends.
// Returns true when the enemy became Dead and should be removed.
func (e *Enemy) AnimationCompleted() bool {
	if e.State != EnemyDying {
		return false
	}
	e.State = EnemyDead
	e.Alive = false
	return true
}

// IsAlive returns true while the enemy can still interact with the player
func (e *Enemy) IsAlive() bool {
	return e.State == EnemyCrawl && e.Alive
}
