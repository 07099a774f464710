package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

func TestOpenAssets_Embedded(t *testing.T) {
	settings, levels, err := loadLevels(openAssets(""))
	require.NoError(t, err)

	assert.Equal(t, 960, settings.Display.ScreenWidth)
	assert.Equal(t, 2, levels.Count())
	desc, err := levels.Descriptor(0)
	require.NoError(t, err)
	assert.Equal(t, "level00.json", desc.Name)
}

func TestValidate_Embedded(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runValidate(&out, openAssets("")))

	assert.Contains(t, out.String(), "level00.json")
	assert.Contains(t, out.String(), "level01.json")
	assert.Contains(t, out.String(), "6 platforms, 2 spiders, 10 coins")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestValidate_ReportsBrokenLevels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.LevelsDir), 0o755))
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("settings.yaml", "levels: [good.json, nokey.json, missing.json]\n")
	write("levels/good.json", `{"hero":{"x":1,"y":1},"door":{"x":1,"y":1},"key":{"x":1,"y":1},
		"platforms":[{"image":"ground","x":0,"y":546}]}`)
	write("levels/nokey.json", `{"hero":{"x":1,"y":1},"door":{"x":1,"y":1},
		"platforms":[{"image":"lava","x":0,"y":546}]}`)

	var out bytes.Buffer
	err := runValidate(&out, config.NewLoader(dir))

	assert.EqualError(t, err, "2 of 3 levels failed validation")
	assert.Contains(t, out.String(), config.ErrMissingKey.Error())
	assert.Contains(t, out.String(), `unknown platform image "lava"`)
	assert.Contains(t, out.String(), "missing.json")
}

func TestReplay_RoundTrip(t *testing.T) {
	rec := replay.NewRecorder(0, 1.0/60.0)
	for i := 0; i < 90; i++ {
		rec.RecordFrame(system.InputState{Right: true, UpJustPressed: i == 0})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	require.NoError(t, runReplay(&out, path))

	assert.Contains(t, out.String(), "frames:   90\n")
	assert.Contains(t, out.String(), "level:    0\n")
	assert.Contains(t, out.String(), "sound jump  1\n")
}

func TestReplay_MissingFile(t *testing.T) {
	err := runReplay(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["play"])
	assert.True(t, names["replay"])
	assert.True(t, names["validate"])

	assert.NotNil(t, rootCmd.Flags().Lookup("record"), "play flags work without the subcommand")
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("assets"))
}
