package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/younwookim/coinhop/internal/application/system"
)

// Effect builds the streamer of a sound effect. volume is a base-2 exponent,
// 0 plays at full scale. Unknown sounds return nil.
func Effect(id system.SoundID, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch id {
	case system.SoundJump:
		s = tone(330, 660, 150*time.Millisecond, WaveSquare, rate)
	case system.SoundCoin:
		// B5 then E6
		s = beep.Seq(
			tone(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 180*time.Millisecond, WaveSquare, rate),
		)
	case system.SoundStomp:
		s = beep.Mix(
			tone(0, 0, 120*time.Millisecond, WaveNoise, rate),
			tone(160, 60, 120*time.Millisecond, WaveSaw, rate),
		)
	case system.SoundKey:
		s = beep.Seq(
			tone(659.25, 659.25, 80*time.Millisecond, WaveSine, rate),
			tone(783.99, 783.99, 80*time.Millisecond, WaveSine, rate),
			tone(1046.5, 1046.5, 160*time.Millisecond, WaveSine, rate),
		)
	case system.SoundDoor:
		s = tone(220, 110, 400*time.Millisecond, WaveSine, rate)
	default:
		return nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
