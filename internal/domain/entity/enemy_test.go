package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnemy() *Enemy {
	return NewEnemy(7, Vec2{X: 100, Y: 200}, Vec2{X: 42, Y: 32}, DefaultEnemySpeed)
}

func TestNewEnemy(t *testing.T) {
	enemy := newTestEnemy()

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(7), enemy.ID)
	assert.Equal(t, Vec2{X: 100, Y: 200}, enemy.Pos)
	assert.Equal(t, EnemyCrawl, enemy.State)
	assert.Equal(t, 100.0, enemy.Vel.X)
	assert.True(t, enemy.Collidable)
	assert.True(t, enemy.IsAlive())
}

func TestEnemy_Patrol(t *testing.T) {
	t.Run("right boundary turns left", func(t *testing.T) {
		enemy := newTestEnemy()
		enemy.Patrol(false, true)
		assert.Equal(t, -100.0, enemy.Vel.X)
		assert.Equal(t, -1, enemy.Facing)
	})

	t.Run("left boundary turns right", func(t *testing.T) {
		enemy := newTestEnemy()
		enemy.Vel.X = -100
		enemy.Patrol(true, false)
		assert.Equal(t, 100.0, enemy.Vel.X)
		assert.Equal(t, 1, enemy.Facing)
	})

	t.Run("no touch keeps direction", func(t *testing.T) {
		enemy := newTestEnemy()
		enemy.Patrol(false, false)
		assert.Equal(t, 100.0, enemy.Vel.X)

		enemy.Vel.X = -100
		enemy.Patrol(false, false)
		assert.Equal(t, -100.0, enemy.Vel.X)
	})

	t.Run("speed magnitude is preserved", func(t *testing.T) {
		enemy := newTestEnemy()
		for i := 0; i < 5; i++ {
			enemy.Patrol(i%2 == 0, i%2 == 1)
			assert.Equal(t, 100.0, abs(enemy.Vel.X))
		}
	})

	t.Run("dying enemy ignores boundaries", func(t *testing.T) {
		enemy := newTestEnemy()
		enemy.Die()
		enemy.Patrol(false, true)
		assert.Equal(t, 0.0, enemy.Vel.X)
	})
}

func TestEnemy_Die(t *testing.T) {
	enemy := newTestEnemy()

	assert.True(t, enemy.Die())
	assert.Equal(t, EnemyDying, enemy.State)
	assert.False(t, enemy.Collidable)
	assert.False(t, enemy.IsAlive())
	assert.Equal(t, Vec2{}, enemy.Vel)

	// Second call is rejected
	assert.False(t, enemy.Die())
	assert.Equal(t, EnemyDying, enemy.State)
}

func TestEnemy_AnimationCompleted(t *testing.T) {
	enemy := newTestEnemy()

	// Crawl animation loops forever, completion events are ignored
	assert.False(t, enemy.AnimationCompleted())
	assert.Equal(t, EnemyCrawl, enemy.State)

	enemy.Die()
	assert.True(t, enemy.AnimationCompleted())
	assert.Equal(t, EnemyDead, enemy.State)
	assert.False(t, enemy.Alive)

	assert.False(t, enemy.AnimationCompleted(), "dead is terminal")
}

func TestEnemyState_String(t *testing.T) {
	tests := []struct {
		state    EnemyState
		expected string
	}{
		{EnemyCrawl, "Crawl"},
		{EnemyDying, "Dying"},
		{EnemyDead, "Dead"},
		{EnemyState(9), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
