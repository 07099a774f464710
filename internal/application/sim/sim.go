// Package sim runs the gameplay core against its collaborators: the resolv
// physics world and the animator. Both the playing scene and headless replays
// step the game through a Sim so they behave identically.
package sim

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/coinhop/internal/application/hud"
	"github.com/younwookim/coinhop/internal/application/session"
	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/domain/level"
	"github.com/younwookim/coinhop/internal/infrastructure/anim"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
	"github.com/younwookim/coinhop/internal/infrastructure/physics"
)

// Sim owns a session and keeps physics and animation in sync with it
type Sim struct {
	session  *session.Session
	settings *config.Settings
	world    *physics.World
	animator *anim.Animator
	frame    int
}

// New creates a simulation over a level source. Call Start before Step.
func New(source session.LevelSource, settings *config.Settings, logger *log.Logger) *Sim {
	return &Sim{
		session:  session.New(source, settings, logger),
		settings: settings,
		animator: anim.New(settings.Animations),
	}
}

// Start loads the level at index and rebuilds the collaborators for it
func (s *Sim) Start(index int) ([]system.Command, error) {
	cmds, err := s.session.Start(index)
	s.rebuild(cmds)
	return cmds, err
}

// Step advances one frame: physics, animations, then the gameplay core.
// The returned commands have already been applied to physics and animation;
// callers only act on sounds.
func (s *Sim) Step(input system.InputState, dt float64) (session.Result, error) {
	if s.session.State() != state.StatePlaying {
		return session.Result{}, session.ErrNotPlaying
	}
	s.frame++

	rep := s.world.Step(dt)
	completed := s.animator.Update(dt)

	res, err := s.session.Step(session.Frame{
		Input:               input,
		Contacts:            rep.Contacts,
		PlayerGrounded:      rep.PlayerGrounded,
		Boundaries:          rep.Boundaries,
		AnimationsCompleted: completed,
	})
	if res.Transition != nil {
		s.rebuild(res.Commands)
		return res, err
	}
	if err != nil {
		return res, err
	}

	s.world.Apply(res.Commands)
	s.animator.Apply(res.Commands)
	return res, nil
}

// rebuild replaces the physics world and animations after a level load.
// Teardown commands refer to the old level, whose ids the new one reuses, so
// only the new level's animations are replayed.
func (s *Sim) rebuild(cmds []system.Command) {
	s.animator.Reset()
	s.world = nil

	lvl := s.session.Level()
	if lvl == nil {
		return
	}

	cfg := s.settings
	s.world = physics.NewWorld(lvl, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Physics.CellSize)
	s.bind(lvl)
	for _, cmd := range cmds {
		if play, ok := cmd.(system.PlayAnimation); ok {
			s.animator.Play(play.Entity, play.Name)
		}
	}
}

func (s *Sim) bind(lvl *level.Level) {
	if lvl.Player != nil {
		s.animator.Bind(lvl.Player.ID, config.SpriteHero)
	}
	for _, e := range lvl.Enemies() {
		s.animator.Bind(e.ID, config.SpriteSpider)
	}
	for _, c := range lvl.Coins() {
		s.animator.Bind(c.ID, config.SpriteCoin)
	}
	if lvl.Key != nil {
		s.animator.Bind(lvl.Key.ID, config.SpriteKey)
	}
	if lvl.Door != nil {
		s.animator.Bind(lvl.Door.ID, config.SpriteDoor)
	}
}

// Pause freezes the simulation
func (s *Sim) Pause() bool {
	return s.session.Pause()
}

// Resume continues a paused simulation
func (s *Sim) Resume() bool {
	return s.session.Resume()
}

// State returns the level lifecycle state
func (s *Sim) State() state.GameState {
	return s.session.State()
}

// Level returns the level in play, nil if none loaded
func (s *Sim) Level() *level.Level {
	return s.session.Level()
}

// Animator exposes the animation frames for drawing
func (s *Sim) Animator() *anim.Animator {
	return s.animator
}

// HUD projects the current level for display
func (s *Sim) HUD() hud.Snapshot {
	return hud.Project(s.session.Level())
}

// Frames returns how many frames have been stepped
func (s *Sim) Frames() int {
	return s.frame
}
