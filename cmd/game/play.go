package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/coinhop/internal/application/game"
	"github.com/younwookim/coinhop/internal/application/scene/playing"
	"github.com/younwookim/coinhop/internal/application/sim"
	"github.com/younwookim/coinhop/internal/infrastructure/audio"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
	"github.com/younwookim/coinhop/internal/infrastructure/render"
	"github.com/younwookim/coinhop/internal/infrastructure/watch"
)

var (
	flagRecord string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game (default command)",
	Long: `Open the game window and start at --level.

With --record the input of every frame is saved on exit and can be
re-run with 'coinhop replay'. With --watch and --assets, edited level
files are picked up the next time a level loads.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to this replay file")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload edited level files (needs --assets)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	loader := openAssets(flagAssets)
	settings, levels, err := loadLevels(loader)
	if err != nil {
		return err
	}

	display := settings.Display
	opts := playing.Options{
		Level:      flagLevel,
		DT:         1.0 / float64(display.Framerate),
		RecordPath: flagRecord,
		Debug:      flagDebug,
	}

	if flagWatch {
		if flagAssets == "" {
			logger.Warn("--watch needs --assets; embedded levels cannot change")
		} else {
			w, err := watch.New(filepath.Join(flagAssets, config.LevelsDir))
			if err != nil {
				return fmt.Errorf("failed to watch levels: %w", err)
			}
			defer func() { _ = w.Close() }()
			opts.Watcher = w
			opts.Levels = levels
			logger.Info("watching levels", "dir", filepath.Join(flagAssets, config.LevelsDir))
		}
	}

	player := audio.Open(settings.Audio, logger)
	if s, ok := player.(*audio.Speaker); ok {
		defer s.Close()
	}

	scene := playing.New(sim.New(levels, settings, logger), render.New(settings), player, logger, opts)
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, logger)
	g.SetDT(opts.DT)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}
