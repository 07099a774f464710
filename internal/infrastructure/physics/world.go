// Package physics is the arcade physics collaborator built on resolv.
//
// It integrates gravity and velocity, separates the player and crawling
// enemies from platforms, stops enemies at boundary markers and reports what
// it saw: ground contact, boundary touches and player overlaps. Entities keep
// their own position and velocity; the world mirrors them into resolv objects.
package physics

import (
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
)

// resolv tags
const (
	tagSolid    = "solid"
	tagBoundary = "boundary"
	tagPlayer   = "player"
	tagEnemy    = "enemy"
	tagCoin     = "coin"
	tagKey      = "key"
	tagDoor     = "door"
)

// margin offsets every object inside the resolv space, which has no negative
// cells, so boundary markers left of x=0 still land in the broadphase
const margin = 64

var overlapKinds = map[string]system.InteractionKind{
	tagEnemy: system.PlayerEnemy,
	tagCoin:  system.PlayerCoin,
	tagKey:   system.PlayerKey,
	tagDoor:  system.PlayerDoor,
}

// Report is what the physics step observed
type Report struct {
	Contacts       []system.Contact
	PlayerGrounded bool
	Boundaries     map[entity.EntityID]system.BoundaryTouch
}

// World mirrors one Level into a resolv space
type World struct {
	lvl     *level.Level
	space   *resolv.Space
	objects map[entity.EntityID]*resolv.Object
	width   float64
	height  float64
}

// NewWorld builds the collision space for a freshly loaded level.
// width and height are the world bounds; cellSize is the broadphase cell size.
func NewWorld(lvl *level.Level, width, height, cellSize int) *World {
	w := &World{
		lvl:     lvl,
		space:   resolv.NewSpace(width+2*margin, height+2*margin, cellSize, cellSize),
		objects: make(map[entity.EntityID]*resolv.Object),
		width:   float64(width),
		height:  float64(height),
	}

	for _, p := range lvl.Platforms {
		w.add(p.ID, p.Rect(), tagSolid)
	}
	for _, b := range lvl.Boundaries {
		w.add(b.ID, b.Rect(), tagBoundary)
	}
	if lvl.Player != nil {
		w.add(lvl.Player.ID, lvl.Player.Rect(), tagPlayer)
	}
	for _, e := range lvl.Enemies() {
		w.add(e.ID, e.Rect(), tagEnemy)
	}
	for _, c := range lvl.Coins() {
		w.add(c.ID, c.Rect(), tagCoin)
	}
	if lvl.Key != nil && lvl.Key.Alive {
		w.add(lvl.Key.ID, lvl.Key.Rect(), tagKey)
	}
	if lvl.Door != nil {
		w.add(lvl.Door.ID, lvl.Door.Rect(), tagDoor)
	}

	return w
}

// Level returns the level this world simulates
func (w *World) Level() *level.Level {
	return w.lvl
}

// Has reports whether an entity still has a collision object
func (w *World) Has(id entity.EntityID) bool {
	_, ok := w.objects[id]
	return ok
}

func (w *World) add(id entity.EntityID, r entity.Rect, tag string) {
	obj := resolv.NewObject(r.X+margin, r.Y+margin, r.W, r.H, tag)
	obj.Data = id
	w.space.Add(obj)
	w.objects[id] = obj
}

func (w *World) remove(id entity.EntityID) {
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	w.space.Remove(obj)
	delete(w.objects, id)
}

// Apply consumes the commands the core issued this frame
func (w *World) Apply(cmds []system.Command) {
	for _, cmd := range cmds {
		if d, ok := cmd.(system.DestroyEntity); ok {
			w.remove(d.Entity)
		}
	}
}

// Step advances every moving body by dt seconds
func (w *World) Step(dt float64) Report {
	rep := Report{Boundaries: make(map[entity.EntityID]system.BoundaryTouch)}

	if p := w.lvl.Player; p != nil {
		if obj, ok := w.objects[p.ID]; ok {
			p.Vel.Y += w.lvl.Gravity * dt
			if w.moveX(obj, &p.Body, dt, tagSolid) != 0 {
				p.Vel.X = 0
			}
			ground := w.moveY(obj, &p.Body, dt)
			if w.clamp(obj, &p.Body) != 0 {
				p.Vel.X = 0
			}

			rep.PlayerGrounded = ground != 0
			if ground != 0 {
				rep.Contacts = append(rep.Contacts, system.Contact{Kind: system.PlayerPlatform, Other: ground})
			}
		}
	}

	for _, e := range w.lvl.Enemies() {
		// Dying bodies leave the simulation
		if !e.Collidable {
			w.remove(e.ID)
			continue
		}
		obj, ok := w.objects[e.ID]
		if !ok {
			continue
		}

		e.Vel.Y += w.lvl.Gravity * dt
		// Velocity is left alone on a wall hit; patrol reverses it
		side := w.moveX(obj, &e.Body, dt, tagSolid, tagBoundary)
		w.moveY(obj, &e.Body, dt)
		if edge := w.clamp(obj, &e.Body); edge != 0 {
			side = edge
		}
		switch side {
		case 1:
			rep.Boundaries[e.ID] = system.BoundaryTouch{Right: true}
		case -1:
			rep.Boundaries[e.ID] = system.BoundaryTouch{Left: true}
		}
	}

	rep.Contacts = append(rep.Contacts, w.overlaps()...)
	return rep
}

// moveX moves a body horizontally and stops it at the nearest blocker.
// Returns the direction of the blocked side (1 right, -1 left) or 0.
func (w *World) moveX(obj *resolv.Object, body *entity.Body, dt float64, tags ...string) int {
	dx := body.Vel.X * dt
	if dx == 0 {
		return 0
	}

	moved := body.Rect()
	moved.X += dx
	if check := obj.Check(dx, 0, tags...); check != nil {
		if hit, ok := nearest(blocking(check.ObjectsByTags(tags...), moved), dx > 0, true); ok {
			if dx > 0 {
				body.Pos.X = hit.rect.X - body.Size.X
				w.sync(obj, body)
				return 1
			}
			body.Pos.X = hit.rect.Right()
			w.sync(obj, body)
			return -1
		}
	}

	body.Pos.X += dx
	w.sync(obj, body)
	return 0
}

// moveY moves a body vertically against platforms.
// Returns the platform the body is standing on, or 0.
func (w *World) moveY(obj *resolv.Object, body *entity.Body, dt float64) entity.EntityID {
	dy := body.Vel.Y * dt

	// Probe one pixel further down so resting bodies stay grounded
	probe := dy
	if dy >= 0 {
		probe++
	}

	moved := body.Rect()
	moved.Y += probe
	if check := obj.Check(0, probe, tagSolid); check != nil {
		if hit, ok := nearest(blocking(check.ObjectsByTags(tagSolid), moved), probe > 0, false); ok {
			body.Vel.Y = 0
			if probe > 0 {
				body.Pos.Y = hit.rect.Y - body.Size.Y
				w.sync(obj, body)
				return hit.id
			}
			body.Pos.Y = hit.rect.Bottom()
			w.sync(obj, body)
			return 0
		}
	}

	body.Pos.Y += dy
	w.sync(obj, body)
	return 0
}

// clamp keeps a body inside the world bounds. A clamped axis stops, except
// that horizontal velocity is kept for enemies to reverse on patrol.
// Returns the horizontal edge that was hit (1 right, -1 left) or 0.
func (w *World) clamp(obj *resolv.Object, body *entity.Body) int {
	edge := 0
	if body.Pos.X < 0 {
		body.Pos.X, edge = 0, -1
	}
	if right := w.width - body.Size.X; body.Pos.X > right {
		body.Pos.X, edge = right, 1
	}
	clamped := edge != 0
	if body.Pos.Y < 0 {
		body.Pos.Y, body.Vel.Y, clamped = 0, 0, true
	}
	if bottom := w.height - body.Size.Y; body.Pos.Y > bottom {
		body.Pos.Y, body.Vel.Y, clamped = bottom, 0, true
	}
	if clamped {
		w.sync(obj, body)
	}
	return edge
}

// overlaps lists the player's contacts with pickups, enemies and the door,
// ordered by entity id so that replays resolve them identically
func (w *World) overlaps() []system.Contact {
	p := w.lvl.Player
	if p == nil {
		return nil
	}
	obj, ok := w.objects[p.ID]
	if !ok {
		return nil
	}

	check := obj.Check(0, 0, tagEnemy, tagCoin, tagKey, tagDoor)
	if check == nil {
		return nil
	}

	var contacts []system.Contact
	for tag, kind := range overlapKinds {
		for _, other := range blocking(check.ObjectsByTags(tag), p.Rect()) {
			contacts = append(contacts, system.Contact{Kind: kind, Other: other.id})
		}
	}
	slices.SortFunc(contacts, func(a, b system.Contact) int {
		return int(a.Other) - int(b.Other)
	})
	return contacts
}

type blocker struct {
	id   entity.EntityID
	rect entity.Rect // level space
}

// blocking keeps the candidates whose bounds really overlap r.
// resolv reports everything sharing a cell.
func blocking(candidates []*resolv.Object, r entity.Rect) []blocker {
	var out []blocker
	for _, c := range candidates {
		b := entity.Rect{X: c.X - margin, Y: c.Y - margin, W: c.W, H: c.H}
		if r.Overlaps(b) {
			id, _ := c.Data.(entity.EntityID)
			out = append(out, blocker{id: id, rect: b})
		}
	}
	return out
}

// nearest picks the first blocker met when moving forward (positive) or backward
func nearest(bs []blocker, forward, horizontal bool) (blocker, bool) {
	if len(bs) == 0 {
		return blocker{}, false
	}

	best := bs[0]
	for _, b := range bs[1:] {
		lead, bestLead := b.rect.Y, best.rect.Y
		trail, bestTrail := b.rect.Bottom(), best.rect.Bottom()
		if horizontal {
			lead, bestLead = b.rect.X, best.rect.X
			trail, bestTrail = b.rect.Right(), best.rect.Right()
		}
		if forward && lead < bestLead || !forward && trail > bestTrail {
			best = b
		}
	}
	return best, true
}

func (w *World) sync(obj *resolv.Object, body *entity.Body) {
	obj.X, obj.Y = body.Pos.X+margin, body.Pos.Y+margin
	obj.Update()
}
