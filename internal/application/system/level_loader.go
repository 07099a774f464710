package system

import (
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// LoadLevel validates a descriptor and spawns it into a fresh Level.
// Spawn order is platforms (with their boundary markers), hero, spiders,
// coins, door, key. Gravity is enabled last.
func LoadLevel(desc *config.LevelDescriptor, index, count int, cfg *config.Settings) (*level.Level, error) {
	if err := desc.Validate(cfg); err != nil {
		return nil, err
	}

	lvl := level.New(index, count, desc.Name)
	boundary := vec(cfg.Boundary)

	for _, p := range desc.Platforms {
		size, _ := cfg.PlatformSize(p.Image)
		lvl.SpawnPlatform(p.Image, entity.Vec2{X: p.X, Y: p.Y}, vec(size), boundary)
	}

	heroSize := vec(cfg.Sprite(config.SpriteHero))
	tuning := entity.PlayerTuning{
		Speed:       cfg.Hero.Speed,
		JumpSpeed:   cfg.Hero.JumpSpeed,
		BounceSpeed: cfg.Hero.BounceSpeed,
	}
	lvl.SpawnPlayer(entity.AnchorCenter.TopLeft(point(*desc.Hero), heroSize), heroSize, tuning)

	spiderSize := vec(cfg.Sprite(config.SpriteSpider))
	for _, s := range desc.Spiders {
		lvl.SpawnEnemy(entity.AnchorCenter.TopLeft(point(s), spiderSize), spiderSize, cfg.Spider.Speed)
	}

	coinSize := vec(cfg.Sprite(config.SpriteCoin))
	for _, c := range desc.Coins {
		lvl.SpawnCoin(entity.AnchorCenter.TopLeft(point(c), coinSize), coinSize)
	}

	doorSize := vec(cfg.Sprite(config.SpriteDoor))
	lvl.SpawnDoor(entity.AnchorBottomCenter.TopLeft(point(*desc.Door), doorSize), doorSize)

	keySize := vec(cfg.Sprite(config.SpriteKey))
	lvl.SpawnKey(entity.AnchorCenter.TopLeft(point(*desc.Key), keySize), keySize)

	lvl.EnableGravity(cfg.Physics.Gravity)

	return lvl, nil
}

func vec(s config.SizeConfig) entity.Vec2 {
	return entity.Vec2{X: s.Width, Y: s.Height}
}

func point(p config.Point) entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}
