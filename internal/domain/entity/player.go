package entity

// PlayerAnimation is the animation state derived from the player's motion
type PlayerAnimation int

const (
	AnimIdle PlayerAnimation = iota
	AnimRun
	AnimJump
	AnimFall
)

// String returns the animation name used by the display layer
func (a PlayerAnimation) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	default:
		return "unknown"
	}
}

// DeriveAnimation picks the animation for a velocity and ground-contact flag.
// The checks form a priority list: only the first match applies.
func DeriveAnimation(vel Vec2, grounded bool) PlayerAnimation {
	switch {
	case vel.Y < 0:
		return AnimJump
	case !grounded:
		return AnimFall
	case vel.X != 0:
		return AnimRun
	default:
		return AnimIdle
	}
}

// PlayerTuning holds the player's movement constants in px/s
type PlayerTuning struct {
	Speed       float64
	JumpSpeed   float64
	BounceSpeed float64
}

// DefaultPlayerTuning matches the classic hero tuning
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Speed:       200,
		JumpSpeed:   600,
		BounceSpeed: 200,
	}
}

// Player represents the hero
type Player struct {
	Body
	Tuning PlayerTuning

	// Grounded is supplied by the physics collaborator every frame
	Grounded  bool
	Animation PlayerAnimation
}

// NewPlayer creates the hero at a top-left position, facing right and idle
func NewPlayer(id EntityID, pos, size Vec2, tuning PlayerTuning) *Player {
	return &Player{
		Body: Body{
			ID:     id,
			Pos:    pos,
			Size:   size,
			Facing: 1,
			Alive:  true,
		},
		Tuning:    tuning,
		Animation: AnimIdle,
	}
}

// Move sets horizontal velocity from a direction in {-1, 0, 1}.
// Facing keeps its last value when direction is 0.
func (p *Player) Move(direction int) {
	p.Vel.X = float64(direction) * p.Tuning.Speed
	if s := sign(p.Vel.X); s != 0 {
		p.Facing = s
	}
}

// Jump launches the player upward if standing on something.
// Returns false, leaving velocity untouched, while airborne.
func (p *Player) Jump() bool {
	if !p.Grounded {
		return false
	}
	p.Vel.Y = -p.Tuning.JumpSpeed
	return true
}

// Bounce pushes the player up after stomping an enemy
func (p *Player) Bounce() {
	p.Vel.Y = -p.Tuning.BounceSpeed
}

// UpdateAnimation recomputes the animation state.
// changed is false when the state is the one already held.
func (p *Player) UpdateAnimation() (anim PlayerAnimation, changed bool) {
	next := DeriveAnimation(p.Vel, p.Grounded)
	if next == p.Animation {
		return next, false
	}
	p.Animation = next
	return next, true
}
