package system

import "github.com/younwookim/coinhop/internal/domain/entity"

// SoundID names a sound effect
type SoundID string

const (
	SoundJump  SoundID = "jump"
	SoundCoin  SoundID = "coin"
	SoundStomp SoundID = "stomp"
	SoundKey   SoundID = "key"
	SoundDoor  SoundID = "door"
)

// Sounds lists every sound effect the core can request
var Sounds = []SoundID{SoundJump, SoundCoin, SoundStomp, SoundKey, SoundDoor}

// Command is an instruction issued by the core to an outside collaborator
type Command interface {
	isCommand()
}

// SetVelocity tells the physics collaborator about a new velocity
type SetVelocity struct {
	Entity   entity.EntityID
	Velocity entity.Vec2
}

func (SetVelocity) isCommand() {}

// SetFacing flips a sprite horizontally (1 right, -1 left)
type SetFacing struct {
	Entity entity.EntityID
	Facing int
}

func (SetFacing) isCommand() {}

// PlayAnimation starts a named animation on an entity
type PlayAnimation struct {
	Entity entity.EntityID
	Name   string
}

func (PlayAnimation) isCommand() {}

// PlaySound plays a one-shot sound effect
type PlaySound struct {
	Sound SoundID
}

func (PlaySound) isCommand() {}

// DestroyEntity removes an entity from every collaborator
type DestroyEntity struct {
	Entity entity.EntityID
}

func (DestroyEntity) isCommand() {}

// TransitionKind says how the next level is chosen
type TransitionKind int

const (
	TransitionRestart TransitionKind = iota // same index
	TransitionAdvance                       // next index, wrapping
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionRestart:
		return "Restart"
	case TransitionAdvance:
		return "Advance"
	default:
		return "Unknown"
	}
}

// RequestTransition asks the level lifecycle to leave the current level
type RequestTransition struct {
	Kind   TransitionKind
	Target int
}

func (RequestTransition) isCommand() {}

// Outbox collects the commands produced during one frame.
// At most one transition is accepted; later requests are dropped.
type Outbox struct {
	commands   []Command
	transition *RequestTransition
}

// Emit appends a command
func (o *Outbox) Emit(cmd Command) {
	o.commands = append(o.commands, cmd)
}

// RequestTransition records a transition if none is pending.
// Returns false when an earlier request already won.
func (o *Outbox) RequestTransition(kind TransitionKind, target int) bool {
	if o.transition != nil {
		return false
	}
	req := RequestTransition{Kind: kind, Target: target}
	o.transition = &req
	o.Emit(req)
	return true
}

// Transition returns the pending transition, if any
func (o *Outbox) Transition() (RequestTransition, bool) {
	if o.transition == nil {
		return RequestTransition{}, false
	}
	return *o.transition, true
}

// Commands returns everything emitted so far in order
func (o *Outbox) Commands() []Command {
	return o.commands
}

// Reset empties the outbox for the next frame
func (o *Outbox) Reset() {
	o.commands = nil
	o.transition = nil
}
