package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "Player"},
		{KindEnemy, "Enemy"},
		{KindCoin, "Coin"},
		{KindKey, "Key"},
		{KindDoor, "Door"},
		{KindPlatform, "Platform"},
		{KindBoundary, "Boundary"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestNewBoundary(t *testing.T) {
	platform := &Platform{ID: 3, Pos: Vec2{X: 100, Y: 300}, Size: Vec2{X: 168, Y: 42}}
	size := Vec2{X: 4, Y: 32}

	t.Run("left marker sits left of the platform's top edge", func(t *testing.T) {
		b := NewBoundary(4, platform, SideLeft, size)
		assert.Equal(t, EntityID(3), b.Platform)
		assert.Equal(t, Vec2{X: 96, Y: 268}, b.Pos)
		assert.Equal(t, 100.0, b.Rect().Right())
		assert.Equal(t, 300.0, b.Rect().Bottom())
	})

	t.Run("right marker sits right of the platform's top edge", func(t *testing.T) {
		b := NewBoundary(5, platform, SideRight, size)
		assert.Equal(t, Vec2{X: 268, Y: 268}, b.Pos)
		assert.Equal(t, 300.0, b.Rect().Bottom())
	})
}
