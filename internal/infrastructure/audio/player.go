// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// Player plays sound effects
type Player interface {
	Play(id system.SoundID)
}

// Apply plays every PlaySound command of a frame
func Apply(p Player, cmds []system.Command) {
	for _, cmd := range cmds {
		if ps, ok := cmd.(system.PlaySound); ok {
			p.Play(ps.Sound)
		}
	}
}

// Mute drops every sound
type Mute struct{}

// Play does nothing
func (Mute) Play(system.SoundID) {}

// Speaker plays effects through the system audio device
type Speaker struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	logger *log.Logger
}

// NewSpeaker initializes the audio device. It can be called once per process.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	s := &Speaker{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes a new instance of the effect into the output
func (s *Speaker) Play(id system.SoundID) {
	effect := Effect(id, s.rate, s.volume)
	if effect == nil {
		s.logger.Warn("unknown sound", "sound", id)
		return
	}
	speaker.Lock()
	s.mixer.Add(effect)
	speaker.Unlock()
}

// Close silences the output
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Open returns a Speaker when audio is enabled and available, Mute otherwise
func Open(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Mute{}
	}
	s, err := NewSpeaker(cfg, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Mute{}
	}
	return s
}
