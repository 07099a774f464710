// coinhop is a small platformer: collect the coins, grab the key, reach the door.
//
// Usage:
//
//	coinhop [play]            - Play from the first level
//	coinhop replay <file>     - Re-run a recording headlessly and print the result
//	coinhop validate          - Load every configured level and report problems
//
// Global flags:
//
//	--assets <dir>  - Read settings and levels from a directory instead of the embedded copy
//	--level <n>     - Level index to start at
//	--debug         - Debug logging and visible boundary markers
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

var (
	// Global flags
	flagAssets string
	flagLevel  int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinhop",
	Short: "coinhop - a coin collecting platformer",
	Long: `coinhop is a 2D platformer. Collect coins, pick up the key and
walk through the door to reach the next level. Touching a spider from
anywhere but above restarts the level.

Controls:
  Left/Right or A/D  - Run
  Up or W            - Jump
  Esc                - Pause

Examples:
  coinhop
  coinhop play --level 1 --record run.json
  coinhop replay run.json
  coinhop validate --assets ./assets`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: embedded assets)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Level index to start at")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and boundary markers")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "coinhop",
		ReportTimestamp: true,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadLevels reads the settings and the level list they name
func loadLevels(loader *config.Loader) (*config.Settings, *config.LevelSet, error) {
	settings, err := loader.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	levels, err := config.NewLevelSet(loader, settings.Levels)
	if err != nil {
		return nil, nil, err
	}
	return settings, levels, nil
}
