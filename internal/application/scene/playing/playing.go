// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/scene"
	"github.com/younwookim/coinhop/internal/application/sim"
	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/infrastructure/audio"
	"github.com/younwookim/coinhop/internal/infrastructure/render"
	"github.com/younwookim/coinhop/internal/infrastructure/watch"
)

// Options configures a Playing scene
type Options struct {
	Level      int     // level index to start at
	DT         float64 // fixed frame time written into recordings
	RecordPath string  // record input to this file when not empty
	Debug      bool    // draw boundary markers

	// Watcher, when set, invalidates Levels as level files change
	Watcher *watch.Watcher
	Levels  watch.Invalidator
}

// Playing is the main gameplay scene
type Playing struct {
	sim      *sim.Sim
	renderer *render.Renderer
	audio    audio.Player
	logger   *log.Logger
	opts     Options

	input       func() system.InputState
	pausePushed func() bool

	recorder *replay.Recorder
	err      error
}

// New creates a new Playing scene. The level starts in OnEnter.
func New(s *sim.Sim, renderer *render.Renderer, player audio.Player, logger *log.Logger, opts Options) *Playing {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == nil {
		player = audio.Mute{}
	}
	if opts.DT <= 0 {
		opts.DT = 1.0 / 60.0
	}
	renderer.Debug = opts.Debug

	inputSystem := system.NewInputSystem()
	return &Playing{
		sim:      s,
		renderer: renderer,
		audio:    player,
		logger:   logger,
		opts:     opts,
		input:    inputSystem.GetInput,
		pausePushed: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
	}
}

// OnEnter loads the starting level
func (p *Playing) OnEnter() {
	cmds, err := p.sim.Start(p.opts.Level)
	if err != nil {
		p.err = fmt.Errorf("failed to start level %d: %w", p.opts.Level, err)
		return
	}
	audio.Apply(p.audio, cmds)

	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.sim.Level().Index, p.opts.DT)
		p.logger.Info("recording enabled", "file", p.opts.RecordPath)
	}
}

// Update steps the simulation once unless paused
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.err != nil {
		return nil, p.err
	}

	if p.opts.Watcher != nil && p.opts.Levels != nil {
		p.opts.Watcher.Drain(p.opts.Levels, p.logger)
	}

	if p.pausePushed() {
		p.togglePause()
		return nil, nil
	}
	if p.sim.State() == state.StatePaused {
		return nil, nil
	}

	input := p.input()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	res, err := p.sim.Step(input, dt)
	if err != nil {
		p.err = fmt.Errorf("failed to step frame %d: %w", p.sim.Frames(), err)
		return nil, p.err
	}
	audio.Apply(p.audio, res.Commands)
	p.renderer.Update(dt)

	return nil, nil
}

func (p *Playing) togglePause() {
	if p.sim.Pause() {
		p.logger.Debug("paused", "frame", p.sim.Frames())
		return
	}
	if p.sim.Resume() {
		p.logger.Debug("resumed", "frame", p.sim.Frames())
	}
}

// Draw renders the level and HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.sim.Level(), p.sim.Animator(), p.sim.HUD())
	if p.sim.State() == state.StatePaused {
		p.renderer.DrawPaused(screen)
	}
}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Error("failed to save replay", "file", p.opts.RecordPath, "err", err)
		return
	}
	p.logger.Info("replay saved", "file", p.opts.RecordPath, "frames", p.recorder.FrameCount())
}
