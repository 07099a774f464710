package system

import (
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
)

// InteractionKind classifies a contact between the player and another entity
type InteractionKind int

const (
	PlayerPlatform InteractionKind = iota
	PlayerCoin
	PlayerEnemy
	PlayerKey
	PlayerDoor
)

func (k InteractionKind) String() string {
	switch k {
	case PlayerPlatform:
		return "PlayerPlatform"
	case PlayerCoin:
		return "PlayerCoin"
	case PlayerEnemy:
		return "PlayerEnemy"
	case PlayerKey:
		return "PlayerKey"
	case PlayerDoor:
		return "PlayerDoor"
	default:
		return "Unknown"
	}
}

// Contact is one overlap reported by the physics collaborator this frame
type Contact struct {
	Kind  InteractionKind
	Other entity.EntityID
}

type interactionHandler func(lvl *level.Level, other entity.EntityID, out *Outbox)

// Resolver maps contacts to gameplay effects through a fixed dispatch table
type Resolver struct {
	handlers map[InteractionKind]interactionHandler
}

// NewResolver creates a resolver with every interaction kind registered
func NewResolver() *Resolver {
	return &Resolver{
		handlers: map[InteractionKind]interactionHandler{
			PlayerPlatform: resolvePlatform,
			PlayerCoin:     resolveCoin,
			PlayerEnemy:    resolveEnemy,
			PlayerKey:      resolveKey,
			PlayerDoor:     resolveDoor,
		},
	}
}

// Resolve applies contacts in report order.
// Once a transition has been requested the remaining contacts are skipped.
func (r *Resolver) Resolve(lvl *level.Level, contacts []Contact, out *Outbox) {
	if lvl.Player == nil {
		return
	}

	for _, c := range contacts {
		if _, pending := out.Transition(); pending {
			return
		}
		if handle, ok := r.handlers[c.Kind]; ok {
			handle(lvl, c.Other, out)
		}
	}
}

// Ground contact arrives as Frame.PlayerGrounded
func resolvePlatform(*level.Level, entity.EntityID, *Outbox) {}

func resolveCoin(lvl *level.Level, id entity.EntityID, out *Outbox) {
	if !lvl.CollectCoin(id) {
		return
	}
	out.Emit(PlaySound{Sound: SoundCoin})
	out.Emit(DestroyEntity{Entity: id})
}

func resolveKey(lvl *level.Level, id entity.EntityID, out *Outbox) {
	if lvl.Key == nil || lvl.Key.ID != id {
		return
	}
	if !lvl.CollectKey() {
		return
	}
	out.Emit(PlaySound{Sound: SoundKey})
	out.Emit(DestroyEntity{Entity: id})
}

// resolveEnemy stomps the enemy when the player is descending.
// Any other contact with a crawling enemy kills the player.
func resolveEnemy(lvl *level.Level, id entity.EntityID, out *Outbox) {
	enemy, ok := lvl.Enemy(id)
	if !ok || enemy.State != entity.EnemyCrawl {
		return
	}

	player := lvl.Player
	if player.Vel.Y > 0 {
		player.Bounce()
		enemy.Die()
		out.Emit(PlaySound{Sound: SoundStomp})
		out.Emit(SetVelocity{Entity: player.ID, Velocity: player.Vel})
		out.Emit(SetVelocity{Entity: enemy.ID, Velocity: enemy.Vel})
		out.Emit(PlayAnimation{Entity: enemy.ID, Name: entity.AnimDie})
		return
	}

	out.Emit(PlaySound{Sound: SoundStomp})
	out.RequestTransition(TransitionRestart, lvl.Index)
}

func resolveDoor(lvl *level.Level, id entity.EntityID, out *Outbox) {
	if lvl.Door == nil || lvl.Door.ID != id {
		return
	}
	if !lvl.HasKey() || !lvl.Player.Grounded {
		return
	}
	out.Emit(PlaySound{Sound: SoundDoor})
	out.RequestTransition(TransitionAdvance, lvl.NextIndex())
}
