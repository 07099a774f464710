// Package level holds the Level aggregate: every entity of one level instance,
// the coin counter and the key flag.
//
// A Level is owned by exactly one session at a time and passed explicitly to
// every operation that touches it. Nothing here is process-wide.
package level

import (
	"slices"

	"github.com/younwookim/coinhop/internal/domain/entity"
)

// DefaultGravity is the downward acceleration in px/s² enabled after spawning
const DefaultGravity = 1200

// Wrap reduces a requested level index into [0, count)
func Wrap(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}

// Level is the aggregate root for one level instance
type Level struct {
	Index   int
	Count   int
	Name    string
	Gravity float64

	nextID entity.EntityID
	kinds  map[entity.EntityID]entity.Kind

	Player     *entity.Player
	Door       *entity.Door
	Key        *entity.Collectible
	Platforms  []*entity.Platform
	Boundaries []*entity.Boundary

	// Ordered for deterministic iteration; lookups go through the maps
	enemies  []*entity.Enemy
	coins    []*entity.Collectible
	enemyMap map[entity.EntityID]*entity.Enemy
	coinMap  map[entity.EntityID]*entity.Collectible

	coinCount int
	hasKey    bool
}

// New creates an empty level. Gravity stays off until EnableGravity.
func New(index, count int, name string) *Level {
	return &Level{
		Index:    Wrap(index, count),
		Count:    count,
		Name:     name,
		nextID:   1, // 0 is "nil"
		kinds:    make(map[entity.EntityID]entity.Kind),
		enemyMap: make(map[entity.EntityID]*entity.Enemy),
		coinMap:  make(map[entity.EntityID]*entity.Collectible),
	}
}

// NextIndex returns the index an Advance transition targets
func (l *Level) NextIndex() int {
	return Wrap(l.Index+1, l.Count)
}

func (l *Level) newEntity(kind entity.Kind) entity.EntityID {
	id := l.nextID
	l.nextID++
	l.kinds[id] = kind
	return id
}

// EnableGravity turns on the level's constant downward acceleration
func (l *Level) EnableGravity(g float64) {
	l.Gravity = g
}

// SpawnPlatform adds a platform and the two boundary markers flanking it
func (l *Level) SpawnPlatform(image string, pos, size, boundarySize entity.Vec2) *entity.Platform {
	p := &entity.Platform{
		ID:    l.newEntity(entity.KindPlatform),
		Image: image,
		Pos:   pos,
		Size:  size,
	}
	l.Platforms = append(l.Platforms, p)

	for _, side := range []entity.Side{entity.SideLeft, entity.SideRight} {
		b := entity.NewBoundary(l.newEntity(entity.KindBoundary), p, side, boundarySize)
		l.Boundaries = append(l.Boundaries, b)
	}
	return p
}

// SpawnPlayer creates the hero. A level has exactly one; a second call replaces it.
func (l *Level) SpawnPlayer(pos, size entity.Vec2, tuning entity.PlayerTuning) *entity.Player {
	if l.Player != nil {
		delete(l.kinds, l.Player.ID)
	}
	l.Player = entity.NewPlayer(l.newEntity(entity.KindPlayer), pos, size, tuning)
	return l.Player
}

// SpawnEnemy adds a crawling enemy
func (l *Level) SpawnEnemy(pos, size entity.Vec2, speed float64) *entity.Enemy {
	e := entity.NewEnemy(l.newEntity(entity.KindEnemy), pos, size, speed)
	l.enemies = append(l.enemies, e)
	l.enemyMap[e.ID] = e
	return e
}

// SpawnCoin adds a coin
func (l *Level) SpawnCoin(pos, size entity.Vec2) *entity.Collectible {
	c := entity.NewCoin(l.newEntity(entity.KindCoin), pos, size)
	l.coins = append(l.coins, c)
	l.coinMap[c.ID] = c
	return c
}

// SpawnKey places the level key
func (l *Level) SpawnKey(pos, size entity.Vec2) *entity.Collectible {
	l.Key = entity.NewKey(l.newEntity(entity.KindKey), pos, size)
	return l.Key
}

// SpawnDoor places the exit door
func (l *Level) SpawnDoor(pos, size entity.Vec2) *entity.Door {
	l.Door = &entity.Door{ID: l.newEntity(entity.KindDoor), Pos: pos, Size: size}
	return l.Door
}

// KindOf returns the kind of a live entity
func (l *Level) KindOf(id entity.EntityID) (entity.Kind, bool) {
	k, ok := l.kinds[id]
	return k, ok
}

// Exists checks if an entity is still part of the level
func (l *Level) Exists(id entity.EntityID) bool {
	_, ok := l.kinds[id]
	return ok
}

// Enemy looks up a live enemy
func (l *Level) Enemy(id entity.EntityID) (*entity.Enemy, bool) {
	e, ok := l.enemyMap[id]
	return e, ok
}

// Enemies returns live enemies in spawn order
func (l *Level) Enemies() []*entity.Enemy {
	return l.enemies
}

// Coin looks up a coin that has not been picked up
func (l *Level) Coin(id entity.EntityID) (*entity.Collectible, bool) {
	c, ok := l.coinMap[id]
	return c, ok
}

// Coins returns the remaining coins in spawn order
func (l *Level) Coins() []*entity.Collectible {
	return l.coins
}

// CollectCoin picks up a coin and bumps the counter.
// Unknown or already collected coins return false and change nothing.
func (l *Level) CollectCoin(id entity.EntityID) bool {
	c, ok := l.coinMap[id]
	if !ok || !c.Collect() {
		return false
	}
	l.coinCount++
	delete(l.coinMap, id)
	delete(l.kinds, id)
	l.coins = slices.DeleteFunc(l.coins, func(c *entity.Collectible) bool { return c.ID == id })
	return true
}

// CollectKey picks up the key. Returns false if it is already taken.
func (l *Level) CollectKey() bool {
	if l.Key == nil || !l.Key.Collect() {
		return false
	}
	l.hasKey = true
	delete(l.kinds, l.Key.ID)
	return true
}

// RemoveEnemy drops an enemy from the active set
func (l *Level) RemoveEnemy(id entity.EntityID) bool {
	if _, ok := l.enemyMap[id]; !ok {
		return false
	}
	delete(l.enemyMap, id)
	delete(l.kinds, id)
	l.enemies = slices.DeleteFunc(l.enemies, func(e *entity.Enemy) bool { return e.ID == id })
	return true
}

// CoinCount returns the number of coins picked up in this level instance
func (l *Level) CoinCount() int {
	return l.coinCount
}

// HasKey reports whether the key has been picked up
func (l *Level) HasKey() bool {
	return l.hasKey
}

// Teardown destroys every remaining entity and returns their IDs in a stable order:
// player, enemies, coins, key, door, platforms, boundaries.
func (l *Level) Teardown() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(l.kinds))
	if l.Player != nil {
		ids = append(ids, l.Player.ID)
		l.Player.Alive = false
	}
	for _, e := range l.enemies {
		ids = append(ids, e.ID)
		e.Alive = false
	}
	for _, c := range l.coins {
		ids = append(ids, c.ID)
		c.Alive = false
	}
	if l.Key != nil && l.Key.Alive {
		ids = append(ids, l.Key.ID)
		l.Key.Alive = false
	}
	if l.Door != nil {
		ids = append(ids, l.Door.ID)
	}
	for _, p := range l.Platforms {
		ids = append(ids, p.ID)
	}
	for _, b := range l.Boundaries {
		ids = append(ids, b.ID)
	}

	l.enemies = nil
	l.coins = nil
	l.Platforms = nil
	l.Boundaries = nil
	l.enemyMap = make(map[entity.EntityID]*entity.Enemy)
	l.coinMap = make(map[entity.EntityID]*entity.Collectible)
	l.kinds = make(map[entity.EntityID]entity.Kind)
	return ids
}
