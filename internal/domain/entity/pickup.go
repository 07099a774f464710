package entity

// Collectible is a coin or the level key
type Collectible struct {
	ID    EntityID
	Kind  Kind // KindCoin or KindKey
	Pos   Vec2
	Size  Vec2
	Alive bool
}

// NewCoin creates a coin pickup
func NewCoin(id EntityID, pos, size Vec2) *Collectible {
	return &Collectible{ID: id, Kind: KindCoin, Pos: pos, Size: size, Alive: true}
}

// NewKey creates the level key
func NewKey(id EntityID, pos, size Vec2) *Collectible {
	return &Collectible{ID: id, Kind: KindKey, Pos: pos, Size: size, Alive: true}
}

// Rect returns the pickup bounds
func (c *Collectible) Rect() Rect {
	return Rect{X: c.Pos.X, Y: c.Pos.Y, W: c.Size.X, H: c.Size.Y}
}

// Collect destroys the pickup. Returns false if it was already taken,
// so duplicate overlap reports are harmless.
func (c *Collectible) Collect() bool {
	if !c.Alive {
		return false
	}
	c.Alive = false
	return true
}

// Door is the level exit
type Door struct {
	ID   EntityID
	Pos  Vec2
	Size Vec2
}

// Rect returns the door bounds
func (d *Door) Rect() Rect {
	return Rect{X: d.Pos.X, Y: d.Pos.Y, W: d.Size.X, H: d.Size.Y}
}
