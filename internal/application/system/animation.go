package system

import (
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
)

// Animation names played on non-player entities
const (
	AnimCoinRotate = "rotate"
)

// BoundaryTouch reports which patrol markers an enemy touched this frame
type BoundaryTouch struct {
	Left  bool
	Right bool
}

// PatrolEnemies reverses crawling enemies that reached a boundary marker
func PatrolEnemies(lvl *level.Level, touches map[entity.EntityID]BoundaryTouch, out *Outbox) {
	for _, enemy := range lvl.Enemies() {
		touch, ok := touches[enemy.ID]
		if !ok {
			continue
		}

		prevVX := enemy.Vel.X
		prevFacing := enemy.Facing
		enemy.Patrol(touch.Left, touch.Right)

		if enemy.Vel.X != prevVX {
			out.Emit(SetVelocity{Entity: enemy.ID, Velocity: enemy.Vel})
		}
		if enemy.Facing != prevFacing {
			out.Emit(SetFacing{Entity: enemy.ID, Facing: enemy.Facing})
		}
	}
}

// CompleteAnimations advances dying enemies whose death animation has finished.
// Completion events for anything else are ignored.
func CompleteAnimations(lvl *level.Level, completed []entity.EntityID, out *Outbox) {
	for _, id := range completed {
		enemy, ok := lvl.Enemy(id)
		if !ok || !enemy.AnimationCompleted() {
			continue
		}
		lvl.RemoveEnemy(id)
		out.Emit(DestroyEntity{Entity: id})
	}
}

// UpdatePlayerAnimation recomputes the player's kinematic animation
func UpdatePlayerAnimation(lvl *level.Level, out *Outbox) {
	if lvl.Player == nil {
		return
	}
	anim, changed := lvl.Player.UpdateAnimation()
	if changed {
		out.Emit(PlayAnimation{Entity: lvl.Player.ID, Name: anim.String()})
	}
}

// StartAnimations emits the animations every entity starts a level with
func StartAnimations(lvl *level.Level, out *Outbox) {
	if lvl.Player != nil {
		out.Emit(PlayAnimation{Entity: lvl.Player.ID, Name: lvl.Player.Animation.String()})
	}
	for _, enemy := range lvl.Enemies() {
		out.Emit(PlayAnimation{Entity: enemy.ID, Name: entity.AnimCrawl})
	}
	for _, coin := range lvl.Coins() {
		out.Emit(PlayAnimation{Entity: coin.ID, Name: AnimCoinRotate})
	}
}
