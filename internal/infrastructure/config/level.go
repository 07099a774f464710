package config

import (
	"errors"
	"fmt"
)

// Level descriptor errors. Every one of them is fatal for the level being loaded.
var (
	ErrMissingHero  = errors.New("level has no hero")
	ErrMissingDoor  = errors.New("level has no door")
	ErrMissingKey   = errors.New("level has no key")
	ErrUnknownImage = errors.New("unknown platform image")
	ErrNoLevels     = errors.New("no levels configured")
)

// LoadError reports why a level could not be loaded
type LoadError struct {
	Level string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("level %s: %v", e.Level, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Point is a spawn position in level space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformDescriptor places one static platform by its top-left corner
type PlatformDescriptor struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Image string  `json:"image"`
}

// LevelDescriptor is the static description of a level.
// Hero, door and key are mandatory; nil means the source omitted them.
type LevelDescriptor struct {
	Name      string               `json:"-"`
	Platforms []PlatformDescriptor `json:"platforms"`
	Hero      *Point               `json:"hero"`
	Spiders   []Point              `json:"spiders"`
	Coins     []Point              `json:"coins"`
	Door      *Point               `json:"door"`
	Key       *Point               `json:"key"`
}

// Validate checks the descriptor against the known platform images.
// All problems are reported together inside a single *LoadError.
func (d *LevelDescriptor) Validate(s *Settings) error {
	var errs []error

	if d.Hero == nil {
		errs = append(errs, ErrMissingHero)
	}
	if d.Door == nil {
		errs = append(errs, ErrMissingDoor)
	}
	if d.Key == nil {
		errs = append(errs, ErrMissingKey)
	}
	for i, p := range d.Platforms {
		if _, ok := s.PlatformSize(p.Image); !ok {
			errs = append(errs, fmt.Errorf("%w %q (platform %d)", ErrUnknownImage, p.Image, i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &LoadError{Level: d.Name, Err: errors.Join(errs...)}
}
