package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBob_Yoyo(t *testing.T) {
	b := NewBob(3, 800*time.Millisecond)
	assert.Equal(t, -3.0, b.Offset())

	assert.InDelta(t, 0, b.Update(0.4), 0.01, "half way through the first leg")
	assert.InDelta(t, 3, b.Update(0.4), 1e-6)
	assert.InDelta(t, 0, b.Update(0.4), 0.01, "heading back")
	assert.InDelta(t, -3, b.Update(0.4), 1e-6)
	assert.InDelta(t, 0, b.Update(0.4), 0.01, "and again")
}

func TestBob_Disabled(t *testing.T) {
	b := NewBob(3, 0)
	assert.Equal(t, 0.0, b.Update(1))
	assert.Equal(t, 0.0, b.Offset())
}
