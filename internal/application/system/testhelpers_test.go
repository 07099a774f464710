package system

import (
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
)

type testLevel struct {
	*level.Level
	enemy *entity.Enemy
	coin  *entity.Collectible
}

// newTestLevel builds a level with one of everything, detached from any physics
func newTestLevel() *testLevel {
	lvl := level.New(0, 2, "test")
	lvl.SpawnPlatform("ground", entity.Vec2{X: 0, Y: 546}, entity.Vec2{X: 960, Y: 42}, entity.Vec2{X: 4, Y: 32})
	lvl.SpawnPlayer(entity.Vec2{X: 3, Y: 504}, entity.Vec2{X: 36, Y: 42}, entity.DefaultPlayerTuning())
	enemy := lvl.SpawnEnemy(entity.Vec2{X: 479, Y: 514}, entity.Vec2{X: 42, Y: 32}, entity.DefaultEnemySpeed)
	coin := lvl.SpawnCoin(entity.Vec2{X: 220, Y: 388}, entity.Vec2{X: 22, Y: 22})
	lvl.SpawnDoor(entity.Vec2{X: 148, Y: 480}, entity.Vec2{X: 42, Y: 66})
	lvl.SpawnKey(entity.Vec2{X: 735, Y: 509}, entity.Vec2{X: 30, Y: 30})
	lvl.EnableGravity(level.DefaultGravity)

	return &testLevel{Level: lvl, enemy: enemy, coin: coin}
}

func soundsOf(cmds []Command) []SoundID {
	var sounds []SoundID
	for _, c := range cmds {
		if s, ok := c.(PlaySound); ok {
			sounds = append(sounds, s.Sound)
		}
	}
	return sounds
}

func destroyedOf(cmds []Command) []entity.EntityID {
	var ids []entity.EntityID
	for _, c := range cmds {
		if d, ok := c.(DestroyEntity); ok {
			ids = append(ids, d.Entity)
		}
	}
	return ids
}
