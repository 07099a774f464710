package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/coinhop/internal/domain/entity"
)

// InputSystem turns keyboard state into player intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left          bool
	Right         bool
	UpJustPressed bool // edge-triggered, one jump per press
}

// GetInput reads the current input state (arrow keys or A/D/W)
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		UpJustPressed: inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
	}
}

// Direction returns -1, 0 or 1. Left wins when both are held.
func (in InputState) Direction() int {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	default:
		return 0
	}
}

// UpdatePlayer applies input to the player and emits the resulting commands
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, out *Outbox) {
	prevVel := player.Vel
	prevFacing := player.Facing

	// Horizontal movement
	player.Move(input.Direction())

	// Jump
	if input.UpJustPressed && player.Jump() {
		out.Emit(PlaySound{Sound: SoundJump})
	}

	if player.Vel != prevVel {
		out.Emit(SetVelocity{Entity: player.ID, Velocity: player.Vel})
	}
	if player.Facing != prevFacing {
		out.Emit(SetFacing{Entity: player.ID, Facing: player.Facing})
	}
}
