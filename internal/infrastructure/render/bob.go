package render

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bob is an endless sinusoidal yoyo between -amplitude and +amplitude
type Bob struct {
	amplitude float32
	duration  float32
	tween     *gween.Tween
	down      bool
	offset    float32
}

// NewBob creates a bob that takes duration to travel one way
func NewBob(amplitude float64, duration time.Duration) *Bob {
	b := &Bob{
		amplitude: float32(amplitude),
		duration:  float32(duration.Seconds()),
		offset:    -float32(amplitude),
	}
	b.tween = gween.New(-b.amplitude, b.amplitude, b.duration, ease.InOutSine)
	return b
}

// Update advances the tween by dt seconds and returns the new offset
func (b *Bob) Update(dt float64) float64 {
	if b.duration <= 0 {
		return 0
	}

	current, finished := b.tween.Update(float32(dt))
	b.offset = current
	if finished {
		b.down = !b.down
		from, to := -b.amplitude, b.amplitude
		if b.down {
			from, to = to, from
		}
		b.tween = gween.New(from, to, b.duration, ease.InOutSine)
	}
	return float64(b.offset)
}

// Offset is the current displacement in pixels
func (b *Bob) Offset() float64 {
	if b.duration <= 0 {
		return 0
	}
	return float64(b.offset)
}
