// Package session runs the level lifecycle: it loads a level, steps it frame by
// frame and performs restart/advance transitions.
//
// A Session owns its current Level. Step is synchronous and must be called
// from a single goroutine, once per frame.
package session

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// ErrNotPlaying is returned by Step outside the Playing state
var ErrNotPlaying = errors.New("session is not playing")

// LevelSource supplies level descriptors by index. Indices are wrapped by the source.
type LevelSource interface {
	Count() int
	Descriptor(index int) (*config.LevelDescriptor, error)
}

// Frame is everything the outside world reports for one frame
type Frame struct {
	Input               system.InputState
	Contacts            []system.Contact
	PlayerGrounded      bool
	Boundaries          map[entity.EntityID]system.BoundaryTouch
	AnimationsCompleted []entity.EntityID
}

// Result is the outcome of one Step
type Result struct {
	Commands []system.Command

	// Transition is set when the frame ended the level. The new level (if it
	// loaded) is available from Session.Level.
	Transition *system.RequestTransition
}

// Session drives one player's run through the level list
type Session struct {
	source   LevelSource
	settings *config.Settings
	logger   *log.Logger

	resolver *system.Resolver
	input    *system.InputSystem

	state state.GameState
	level *level.Level
	out   system.Outbox
}

// New creates a session in the Loading state. A nil logger discards output.
func New(source LevelSource, settings *config.Settings, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		source:   source,
		settings: settings,
		logger:   logger,
		resolver: system.NewResolver(),
		input:    system.NewInputSystem(),
		state:    state.StateLoading,
	}
}

// State returns the lifecycle state
func (s *Session) State() state.GameState {
	return s.state
}

// Level returns the current level, nil while none is loaded
func (s *Session) Level() *level.Level {
	return s.level
}

// Start loads the level at index (wrapped) and enters Playing.
// Any level already in play is torn down first.
// On a load error the session stays in Loading and Start may be retried.
func (s *Session) Start(index int) ([]system.Command, error) {
	s.out.Reset()
	s.teardown()

	if err := s.load(index); err != nil {
		return s.commands(), err
	}
	return s.commands(), nil
}

// Step advances the current level by one frame
func (s *Session) Step(f Frame) (Result, error) {
	if s.state != state.StatePlaying {
		return Result{}, ErrNotPlaying
	}

	s.out.Reset()
	lvl := s.level
	lvl.Player.Grounded = f.PlayerGrounded

	s.resolver.Resolve(lvl, f.Contacts, &s.out)

	if req, ok := s.out.Transition(); ok {
		return s.transition(req)
	}

	s.input.UpdatePlayer(lvl.Player, f.Input, &s.out)
	system.PatrolEnemies(lvl, f.Boundaries, &s.out)
	system.CompleteAnimations(lvl, f.AnimationsCompleted, &s.out)
	system.UpdatePlayerAnimation(lvl, &s.out)

	return Result{Commands: s.commands()}, nil
}

// Pause freezes a playing session
func (s *Session) Pause() bool {
	if s.state != state.StatePlaying {
		return false
	}
	s.state = state.StatePaused
	return true
}

// Resume continues a paused session
func (s *Session) Resume() bool {
	if s.state != state.StatePaused {
		return false
	}
	s.state = state.StatePlaying
	return true
}

func (s *Session) transition(req system.RequestTransition) (Result, error) {
	s.state = state.StateTransitioning
	s.logger.Info("level transition",
		"kind", req.Kind,
		"from", s.level.Index,
		"target", req.Target,
		"coins", s.level.CoinCount())

	s.teardown()
	err := s.load(req.Target)

	return Result{Commands: s.commands(), Transition: &req}, err
}

func (s *Session) teardown() {
	if s.level == nil {
		return
	}
	for _, id := range s.level.Teardown() {
		s.out.Emit(system.DestroyEntity{Entity: id})
	}
	s.level = nil
}

func (s *Session) load(index int) error {
	s.state = state.StateLoading

	count := s.source.Count()
	index = level.Wrap(index, count)

	desc, err := s.source.Descriptor(index)
	if err != nil {
		s.logger.Error("level load failed", "index", index, "err", err)
		return err
	}

	lvl, err := system.LoadLevel(desc, index, count, s.settings)
	if err != nil {
		s.logger.Error("level load failed", "index", index, "level", desc.Name, "err", err)
		return err
	}

	s.level = lvl
	system.StartAnimations(lvl, &s.out)
	s.state = state.StatePlaying

	s.logger.Info("level loaded",
		"index", lvl.Index,
		"level", lvl.Name,
		"platforms", len(lvl.Platforms),
		"spiders", len(lvl.Enemies()),
		"coins", len(lvl.Coins()))
	return nil
}

// commands copies the outbox so callers may keep the slice across frames
func (s *Session) commands() []system.Command {
	cmds := s.out.Commands()
	if len(cmds) == 0 {
		return nil
	}
	return append([]system.Command(nil), cmds...)
}
