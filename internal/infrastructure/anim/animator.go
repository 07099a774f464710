// Package anim plays sprite animations for the display layer and reports when
// non-looping ones finish.
package anim

import (
	"slices"

	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// Clip is one named animation of a sprite
type Clip struct {
	Frames int
	FPS    float64
	Loop   bool
}

// static is used for animations missing from the catalogue
var static = Clip{Frames: 1}

type track struct {
	sprite  string
	name    string
	clip    Clip
	elapsed float64
	frame   int
	done    bool
}

// Animator tracks the playing animation of every bound entity
type Animator struct {
	clips  map[string]Clip // "<sprite>/<name>"
	tracks map[entity.EntityID]*track
}

// New builds an animator from the configured catalogue
func New(animations map[string]config.AnimationConfig) *Animator {
	clips := make(map[string]Clip, len(animations))
	for key, a := range animations {
		if a.Frames <= 0 {
			continue
		}
		clips[key] = Clip{Frames: a.Frames, FPS: a.FPS, Loop: a.Loop}
	}
	return &Animator{
		clips:  clips,
		tracks: make(map[entity.EntityID]*track),
	}
}

// Bind attaches an entity to a sprite. Until Play is called it shows frame 0.
func (a *Animator) Bind(id entity.EntityID, sprite string) {
	a.tracks[id] = &track{sprite: sprite, clip: static}
}

// Play starts a named animation from its first frame.
// Returns false if the entity is not bound.
func (a *Animator) Play(id entity.EntityID, name string) bool {
	t, ok := a.tracks[id]
	if !ok {
		return false
	}
	clip, ok := a.clips[t.sprite+"/"+name]
	if !ok {
		clip = static
	}
	t.name = name
	t.clip = clip
	t.elapsed = 0
	t.frame = 0
	t.done = false
	return true
}

// Remove forgets an entity
func (a *Animator) Remove(id entity.EntityID) {
	delete(a.tracks, id)
}

// Reset forgets every entity
func (a *Animator) Reset() {
	clear(a.tracks)
}

// Apply consumes the animation and destroy commands of a frame
func (a *Animator) Apply(cmds []system.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case system.PlayAnimation:
			a.Play(c.Entity, c.Name)
		case system.DestroyEntity:
			a.Remove(c.Entity)
		}
	}
}

// Update advances every animation by dt seconds and returns the entities
// whose non-looping animation finished during this update
func (a *Animator) Update(dt float64) []entity.EntityID {
	var completed []entity.EntityID
	for id, t := range a.tracks {
		if t.done || t.name == "" || t.clip.FPS <= 0 {
			continue
		}
		t.elapsed += dt
		n := int(t.elapsed * t.clip.FPS)
		if t.clip.Loop {
			t.frame = n % t.clip.Frames
			continue
		}
		if n >= t.clip.Frames {
			t.frame = t.clip.Frames - 1
			t.done = true
			completed = append(completed, id)
			continue
		}
		t.frame = n
	}
	// map order is random
	slices.Sort(completed)
	return completed
}

// Frame returns what an entity currently shows
func (a *Animator) Frame(id entity.EntityID) (name string, frame int, ok bool) {
	t, ok := a.tracks[id]
	if !ok {
		return "", 0, false
	}
	return t.name, t.frame, true
}

// Len returns the number of bound entities
func (a *Animator) Len() int {
	return len(a.tracks)
}
