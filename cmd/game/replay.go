package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/sim"
	"github.com/younwookim/coinhop/internal/application/system"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording without a window",
	Long: `Feed a recording made with 'coinhop play --record' through the
simulation at its recorded frame time and print where it ended.
The run starts at the level stored in the recording; --level is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.OutOrStdout(), args[0])
	},
}

func runReplay(w io.Writer, path string) error {
	logger := newLogger()
	settings, levels, err := loadLevels(openAssets(flagAssets))
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	s := sim.New(levels, settings, logger)
	if _, err := s.Start(data.Level); err != nil {
		return err
	}

	sum, err := replay.Run(s, replay.NewReplayer(*data))
	if err != nil {
		return err
	}

	printSummary(w, sum)
	return nil
}

func printSummary(w io.Writer, sum replay.Summary) {
	_, _ = fmt.Fprintf(w, "frames:   %d\n", sum.Frames)
	_, _ = fmt.Fprintf(w, "level:    %d\n", sum.HUD.Level)
	_, _ = fmt.Fprintf(w, "coins:    %s\n", sum.HUD.CoinText())
	_, _ = fmt.Fprintf(w, "key:      %t\n", sum.HUD.HasKey)
	_, _ = fmt.Fprintf(w, "restarts: %d\n", sum.Restarts)
	_, _ = fmt.Fprintf(w, "advances: %d\n", sum.Advances)
	for _, id := range system.Sounds {
		if n := sum.Sounds[id]; n > 0 {
			_, _ = fmt.Fprintf(w, "sound %-5s %d\n", id, n)
		}
	}
}
