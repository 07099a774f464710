package config

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// Tiled object groups and object names understood by the level loader
const (
	tiledPlatforms = "platforms"
	tiledSpiders   = "spiders"
	tiledCoins     = "coins"
	tiledHero      = "hero"
	tiledDoor      = "door"
	tiledKey       = "key"
)

// loadTiled converts a .tmx map into a LevelDescriptor.
// Platforms carry their image id in the "image" property; hero, door and key
// are matched by object name in any group.
func (l *Loader) loadTiled(path, name string) (*LevelDescriptor, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to parse tmx %s: %w", path, err)
	}

	desc := &LevelDescriptor{Name: name}
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			pt := Point{X: o.X, Y: o.Y}

			switch o.Name {
			case tiledHero:
				desc.Hero = &pt
				continue
			case tiledDoor:
				desc.Door = &pt
				continue
			case tiledKey:
				desc.Key = &pt
				continue
			}

			switch og.Name {
			case tiledPlatforms:
				desc.Platforms = append(desc.Platforms, PlatformDescriptor{
					X:     o.X,
					Y:     o.Y,
					Image: o.Properties.GetString("image"),
				})
			case tiledSpiders:
				desc.Spiders = append(desc.Spiders, pt)
			case tiledCoins:
				desc.Coins = append(desc.Coins, pt)
			}
		}
	}

	return desc, nil
}
