package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleName  = lipgloss.NewStyle().Width(16)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleTitle = lipgloss.NewStyle().Underline(true)
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every configured level",
	Long: `Load settings.yaml and every level it lists, then report missing
heroes, doors, keys and unknown platform images.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), openAssets(flagAssets))
	},
}

func runValidate(w io.Writer, loader *config.Loader) error {
	settings, err := loader.LoadSettings()
	if err != nil {
		return err
	}
	if len(settings.Levels) == 0 {
		return config.ErrNoLevels
	}

	_, _ = fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("levels in %s", loader.BasePath())))

	failed := 0
	for i, name := range settings.Levels {
		desc, err := loader.LoadLevel(name)
		if err == nil {
			err = desc.Validate(settings)
		}

		label := styleName.Render(fmt.Sprintf("%2d %s", i, name))
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(w, "%s %s %s\n", label, styleFail.Render("FAIL"), err)
			continue
		}
		detail := fmt.Sprintf("%d platforms, %d spiders, %d coins", len(desc.Platforms), len(desc.Spiders), len(desc.Coins))
		_, _ = fmt.Fprintf(w, "%s %s %s\n", label, styleOK.Render("ok"), styleDim.Render(detail))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed validation", failed, len(settings.Levels))
	}
	return nil
}
