package config

// Settings is the root config for settings.yaml
type Settings struct {
	Display    DisplayConfig              `yaml:"display"`
	Physics    PhysicsConfig              `yaml:"physics"`
	Hero       HeroConfig                 `yaml:"hero"`
	Spider     SpiderConfig               `yaml:"spider"`
	Sprites    map[string]SizeConfig      `yaml:"sprites"`    // hero, spider, coin, key, door, keyIcon
	Platforms  map[string]SizeConfig      `yaml:"platforms"`  // platform image id -> size
	Boundary   SizeConfig                 `yaml:"boundary"`   // invisible patrol markers
	Animations map[string]AnimationConfig `yaml:"animations"` // "<sprite>/<name>"
	KeyBob     KeyBobConfig               `yaml:"keyBob"`
	Audio      AudioConfig                `yaml:"audio"`
	Levels     []string                   `yaml:"levels"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
}

type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // px/s², enabled once a level has spawned
	CellSize int     `yaml:"cellSize"` // broadphase cell size
}

type HeroConfig struct {
	Speed       float64 `yaml:"speed"`
	JumpSpeed   float64 `yaml:"jumpSpeed"`
	BounceSpeed float64 `yaml:"bounceSpeed"`
}

type SpiderConfig struct {
	Speed float64 `yaml:"speed"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationConfig struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type KeyBobConfig struct {
	Amplitude  float64 `yaml:"amplitude"`  // pixels above and below the rest position
	DurationMs int     `yaml:"durationMs"` // one leg of the yoyo
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"` // beep volume exponent, 0 is unchanged
}

// Sprite names used in Settings.Sprites
const (
	SpriteHero    = "hero"
	SpriteSpider  = "spider"
	SpriteCoin    = "coin"
	SpriteKey     = "key"
	SpriteDoor    = "door"
	SpriteKeyIcon = "keyIcon"
)

// DefaultSettings mirrors the shipped game's tuning
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplayConfig{
			Title:        "coinhop",
			ScreenWidth:  960,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity:  1200,
			CellSize: 16,
		},
		Hero: HeroConfig{
			Speed:       200,
			JumpSpeed:   600,
			BounceSpeed: 200,
		},
		Spider: SpiderConfig{Speed: 100},
		Sprites: map[string]SizeConfig{
			SpriteHero:    {Width: 36, Height: 42},
			SpriteSpider:  {Width: 42, Height: 32},
			SpriteCoin:    {Width: 22, Height: 22},
			SpriteKey:     {Width: 30, Height: 30},
			SpriteDoor:    {Width: 42, Height: 66},
			SpriteKeyIcon: {Width: 34, Height: 30},
		},
		Platforms: map[string]SizeConfig{
			"ground":    {Width: 960, Height: 42},
			"grass:8x1": {Width: 336, Height: 42},
			"grass:6x1": {Width: 252, Height: 42},
			"grass:4x1": {Width: 168, Height: 42},
			"grass:2x1": {Width: 84, Height: 42},
			"grass:1x1": {Width: 42, Height: 42},
		},
		Boundary: SizeConfig{Width: 4, Height: 32},
		Animations: map[string]AnimationConfig{
			"hero/idle":    {Frames: 1, FPS: 1},
			"hero/run":     {Frames: 3, FPS: 8, Loop: true},
			"hero/jump":    {Frames: 1, FPS: 1},
			"hero/fall":    {Frames: 1, FPS: 1},
			"spider/crawl": {Frames: 3, FPS: 8, Loop: true},
			"spider/die":   {Frames: 12, FPS: 12},
			"coin/rotate":  {Frames: 4, FPS: 6, Loop: true},
		},
		KeyBob: KeyBobConfig{
			Amplitude:  3,
			DurationMs: 800,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Levels: []string{"level00.json", "level01.json"},
	}
}

// Sprite returns the configured size of a sprite, zero if unknown
func (s *Settings) Sprite(name string) SizeConfig {
	return s.Sprites[name]
}

// PlatformSize resolves a platform image id to its size
func (s *Settings) PlatformSize(image string) (SizeConfig, bool) {
	size, ok := s.Platforms[image]
	return size, ok
}

// fillDefaults backfills zero values left by a partial settings.yaml
func (s *Settings) fillDefaults() {
	def := DefaultSettings()

	if s.Display.Title == "" {
		s.Display.Title = def.Display.Title
	}
	if s.Display.ScreenWidth == 0 || s.Display.ScreenHeight == 0 {
		s.Display.ScreenWidth, s.Display.ScreenHeight = def.Display.ScreenWidth, def.Display.ScreenHeight
	}
	if s.Display.Scale == 0 {
		s.Display.Scale = def.Display.Scale
	}
	if s.Display.Framerate == 0 {
		s.Display.Framerate = def.Display.Framerate
	}
	if s.Physics.Gravity == 0 {
		s.Physics.Gravity = def.Physics.Gravity
	}
	if s.Physics.CellSize == 0 {
		s.Physics.CellSize = def.Physics.CellSize
	}
	if s.Hero.Speed == 0 {
		s.Hero.Speed = def.Hero.Speed
	}
	if s.Hero.JumpSpeed == 0 {
		s.Hero.JumpSpeed = def.Hero.JumpSpeed
	}
	if s.Hero.BounceSpeed == 0 {
		s.Hero.BounceSpeed = def.Hero.BounceSpeed
	}
	if s.Spider.Speed == 0 {
		s.Spider.Speed = def.Spider.Speed
	}
	if s.Boundary.Width == 0 || s.Boundary.Height == 0 {
		s.Boundary = def.Boundary
	}
	if s.KeyBob.DurationMs == 0 {
		s.KeyBob = def.KeyBob
	}
	if s.Audio.SampleRate == 0 {
		s.Audio.SampleRate = def.Audio.SampleRate
	}
	if len(s.Levels) == 0 {
		s.Levels = def.Levels
	}

	s.Sprites = mergeMap(s.Sprites, def.Sprites)
	s.Platforms = mergeMap(s.Platforms, def.Platforms)
	s.Animations = mergeMap(s.Animations, def.Animations)
}

func mergeMap[V any](dst, def map[string]V) map[string]V {
	if dst == nil {
		dst = make(map[string]V, len(def))
	}
	for k, v := range def {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}
