package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/coinhop/internal/domain/entity"
)

func TestCoinRect(t *testing.T) {
	r := entity.Rect{X: 100, Y: 50, W: 20, H: 22}

	tests := []struct {
		frame int
		want  entity.Rect
	}{
		{0, entity.Rect{X: 100, Y: 50, W: 20, H: 22}},
		{1, entity.Rect{X: 105, Y: 50, W: 10, H: 22}},
		{3, entity.Rect{X: 105, Y: 50, W: 10, H: 22}},
		{4, entity.Rect{X: 100, Y: 50, W: 20, H: 22}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coinRect(r, tt.frame), "frame %d", tt.frame)
	}

	edge := coinRect(r, 2)
	assert.InDelta(t, 3, edge.W, 1e-9)
	assert.InDelta(t, 110, edge.X+edge.W/2, 1e-9, "stays centered")
}

func TestSpiderColor(t *testing.T) {
	assert.Equal(t, colorSpider, spiderColor(entity.AnimCrawl, 0))
	assert.Equal(t, colorSpiderLo, spiderColor(entity.AnimCrawl, 1))
	assert.Equal(t, colorDying, spiderColor(entity.AnimDie, 4))
	assert.Equal(t, colorSpider, spiderColor(entity.AnimDie, 5))
	assert.Equal(t, colorSpider, spiderColor("", 0))
}
