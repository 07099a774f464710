package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

const rate = beep.SampleRate(44100)

// drain streams s to the end and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillator(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, NewOscillator(440, 100*time.Millisecond, tt.wave, rate))

			assert.Len(t, samples, rate.N(100*time.Millisecond))
			for _, v := range samples {
				assert.LessOrEqual(t, math.Abs(v), 1.0)
			}
		})
	}

	t.Run("square is bipolar", func(t *testing.T) {
		for _, v := range drain(t, NewOscillator(220, 10*time.Millisecond, WaveSquare, rate)) {
			assert.Contains(t, []float64{-1, 1}, v)
		}
	})
}

func TestEnvelope(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))

	require.Len(t, samples, rate.N(d))
	assert.Equal(t, 0.0, samples[0], "attack starts silent")
	assert.Equal(t, 1.0, samples[len(samples)/2], "sustain at full scale")
	assert.Less(t, samples[len(samples)-1], 0.01, "release fades out")
}

func TestEffect(t *testing.T) {
	lengths := map[system.SoundID]time.Duration{
		system.SoundJump:  150 * time.Millisecond,
		system.SoundCoin:  250 * time.Millisecond,
		system.SoundStomp: 120 * time.Millisecond,
		system.SoundKey:   320 * time.Millisecond,
		system.SoundDoor:  400 * time.Millisecond,
	}
	for _, id := range system.Sounds {
		t.Run(string(id), func(t *testing.T) {
			s := Effect(id, rate, 0)
			require.NotNil(t, s)

			samples := drain(t, s)
			assert.InDelta(t, rate.N(lengths[id]), len(samples), 2)

			peak := 0.0
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v))
			}
			assert.Greater(t, peak, 0.1, "audible")
			assert.LessOrEqual(t, peak, 2.0)
		})
	}

	t.Run("quieter", func(t *testing.T) {
		loud := drain(t, Effect(system.SoundDoor, rate, 0))
		quiet := drain(t, Effect(system.SoundDoor, rate, -1))
		assert.InDelta(t, loud[1000]/2, quiet[1000], 1e-9)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Nil(t, Effect("boing", rate, 0))
	})
}

type capture struct {
	played []system.SoundID
}

func (c *capture) Play(id system.SoundID) { c.played = append(c.played, id) }

func TestApply(t *testing.T) {
	c := &capture{}
	Apply(c, []system.Command{
		system.PlaySound{Sound: system.SoundCoin},
		system.DestroyEntity{Entity: 3},
		system.PlaySound{Sound: system.SoundStomp},
	})
	assert.Equal(t, []system.SoundID{system.SoundCoin, system.SoundStomp}, c.played)

	assert.NotPanics(t, func() { Apply(Mute{}, []system.Command{system.PlaySound{Sound: system.SoundJump}}) })
}

func TestOpenDisabled(t *testing.T) {
	cfg := config.DefaultSettings().Audio
	cfg.Enabled = false

	assert.IsType(t, Mute{}, Open(cfg, log.New(io.Discard)))
}
