package entity

// EntityID is a unique identifier for an entity within one level
type EntityID uint32

// Kind identifies what an entity is
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindCoin
	KindKey
	KindDoor
	KindPlatform
	KindBoundary
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindCoin:
		return "Coin"
	case KindKey:
		return "Key"
	case KindDoor:
		return "Door"
	case KindPlatform:
		return "Platform"
	case KindBoundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// Side is the side of a platform a boundary marker stands on
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Platform is immovable static geometry the player and enemies stand on
type Platform struct {
	ID    EntityID
	Image string
	Pos   Vec2
	Size  Vec2
}

// Rect returns the platform bounds
func (p *Platform) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// Boundary is an invisible marker flanking a platform.
// Only enemies collide with it; it is never rendered.
type Boundary struct {
	ID       EntityID
	Platform EntityID
	Side     Side
	Pos      Vec2
	Size     Vec2
}

// Rect returns the marker bounds
func (b *Boundary) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// NewBoundary places a marker next to a platform.
// The left marker's bottom-right corner touches the platform's top-left corner,
// the right marker's bottom-left corner touches its top-right corner.
func NewBoundary(id EntityID, p *Platform, side Side, size Vec2) *Boundary {
	pos := Vec2{X: p.Pos.X - size.X, Y: p.Pos.Y - size.Y}
	if side == SideRight {
		pos.X = p.Pos.X + p.Size.X
	}
	return &Boundary{
		ID:       id,
		Platform: p.ID,
		Side:     side,
		Pos:      pos,
		Size:     size,
	}
}
