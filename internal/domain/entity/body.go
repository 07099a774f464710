package entity

// Vec2 is a 2D vector in pixels (or pixels per second for velocities).
// +Y points down, so a negative Y velocity moves upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box; X, Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two boxes intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Body is the physical state of a movable entity.
// The physics collaborator integrates Pos from Vel; the core only writes Vel and Facing.
type Body struct {
	ID     EntityID
	Pos    Vec2 // top-left corner
	Size   Vec2
	Vel    Vec2
	Facing int // -1 left, 1 right
	Alive  bool
}

// Rect returns the body bounds
func (b *Body) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the center point of the body
func (b *Body) Center() Vec2 {
	return Vec2{X: b.Pos.X + b.Size.X/2, Y: b.Pos.Y + b.Size.Y/2}
}

// Anchor describes which point of a sprite its spawn coordinates refer to,
// as fractions of its size (0.5, 0.5 is the center, 0.5, 1 is bottom-center).
type Anchor struct {
	X, Y float64
}

var (
	AnchorTopLeft      = Anchor{0, 0}
	AnchorCenter       = Anchor{0.5, 0.5}
	AnchorBottomCenter = Anchor{0.5, 1}
)

// TopLeft converts an anchored spawn point into a top-left position
func (a Anchor) TopLeft(at Vec2, size Vec2) Vec2 {
	return Vec2{X: at.X - size.X*a.X, Y: at.Y - size.Y*a.Y}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
