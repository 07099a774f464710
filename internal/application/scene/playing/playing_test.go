package playing

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/sim"
	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
	"github.com/younwookim/coinhop/internal/infrastructure/render"
)

const dt = 1.0 / 60.0

type capture struct {
	played []system.SoundID
}

func (c *capture) Play(id system.SoundID) { c.played = append(c.played, id) }

type brokenSource struct{}

func (brokenSource) Count() int { return 1 }

func (brokenSource) Descriptor(int) (*config.LevelDescriptor, error) {
	return nil, errors.New("disk on fire")
}

// newTestPlaying builds a scene over the shipped levels with scripted input
func newTestPlaying(t *testing.T, opts Options) (*Playing, *capture, *[]system.InputState, *bool) {
	t.Helper()
	loader := config.NewLoader("../../../../cmd/game/assets")
	settings, err := loader.LoadSettings()
	require.NoError(t, err)
	levels, err := config.NewLevelSet(loader, settings.Levels)
	require.NoError(t, err)

	sounds := &capture{}
	p := New(sim.New(levels, settings, nil), render.New(settings), sounds, nil, opts)

	script := &[]system.InputState{}
	pause := new(bool)
	p.input = func() system.InputState {
		if len(*script) == 0 {
			return system.InputState{}
		}
		in := (*script)[0]
		*script = (*script)[1:]
		return in
	}
	p.pausePushed = func() bool {
		pushed := *pause
		*pause = false
		return pushed
	}
	return p, sounds, script, pause
}

func TestPlaying_StartsLevel(t *testing.T) {
	p, _, _, _ := newTestPlaying(t, Options{Level: 3})
	p.OnEnter()

	require.NotNil(t, p.sim.Level())
	assert.Equal(t, 1, p.sim.Level().Index, "index wraps over the level list")
	assert.Equal(t, state.StatePlaying, p.sim.State())
}

func TestPlaying_UpdateStepsAndPlaysSounds(t *testing.T) {
	p, sounds, script, _ := newTestPlaying(t, Options{})
	p.OnEnter()
	*script = []system.InputState{{UpJustPressed: true}}

	next, err := p.Update(dt)
	require.NoError(t, err)
	assert.Nil(t, next)

	assert.Equal(t, 1, p.sim.Frames())
	assert.Equal(t, []system.SoundID{system.SoundJump}, sounds.played)
	assert.Less(t, p.sim.Level().Player.Vel.Y, 0.0)
}

func TestPlaying_Pause(t *testing.T) {
	p, _, _, pause := newTestPlaying(t, Options{})
	p.OnEnter()

	*pause = true
	_, err := p.Update(dt)
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, p.sim.State())

	for i := 0; i < 5; i++ {
		_, err = p.Update(dt)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, p.sim.Frames(), "nothing moves while paused")

	*pause = true
	_, err = p.Update(dt)
	require.NoError(t, err)
	_, err = p.Update(dt)
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, p.sim.State())
	assert.Equal(t, 1, p.sim.Frames())
}

func TestPlaying_RecordsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, _, script, _ := newTestPlaying(t, Options{Level: 1, RecordPath: path})
	p.OnEnter()
	*script = []system.InputState{{Right: true}, {Right: true, UpJustPressed: true}, {}}

	for i := 0; i < 3; i++ {
		_, err := p.Update(dt)
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, []replay.FrameInput{{F: 0, R: true}, {F: 1, R: true, U: true}, {F: 2}}, data.Frames)
}

func TestPlaying_StartFailureEndsTheGame(t *testing.T) {
	settings := config.DefaultSettings()
	p := New(sim.New(brokenSource{}, settings, nil), render.New(settings), nil, nil, Options{})
	p.OnEnter()

	_, err := p.Update(dt)
	assert.ErrorContains(t, err, "disk on fire")
	assert.NotPanics(t, p.OnExit)
}
