// Package hud projects level state into what the heads-up display shows.
package hud

import (
	"fmt"

	"github.com/younwookim/coinhop/internal/domain/level"
)

// Snapshot is a read-only view of the score state
type Snapshot struct {
	Level  int
	Coins  int
	HasKey bool
}

// Project reads the HUD values from a level. A nil level yields the zero snapshot.
func Project(lvl *level.Level) Snapshot {
	if lvl == nil {
		return Snapshot{}
	}
	return Snapshot{
		Level:  lvl.Index,
		Coins:  lvl.CoinCount(),
		HasKey: lvl.HasKey(),
	}
}

// CoinText is the counter label next to the coin icon
func (s Snapshot) CoinText() string {
	return fmt.Sprintf("x%d", s.Coins)
}

// KeyIconFrame selects the key icon frame: 0 empty, 1 collected
func (s Snapshot) KeyIconFrame() int {
	if s.HasKey {
		return 1
	}
	return 0
}
