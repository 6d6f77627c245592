package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/config"
	"github.com/licensedesk/licensedesk/internal/ui"
)

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes and the variants that offer them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), lookupEnv)
			if err != nil {
				return err
			}
			variant, err := commands.LookupVariant(cfg.Variant)
			if err != nil {
				return err
			}
			printThemes(cmd.OutOrStdout(), variant, cfg.Theme)
			return nil
		},
	}
}

// printThemes lists every theme, numbering the ones the variant offers
// in quick-select order.
func printThemes(w io.Writer, v commands.Variant, current string) {
	fmt.Fprintf(w, "Themes (%s variant):\n", v.Name)
	for _, key := range ui.AvailableThemes() {
		t := ui.GetTheme(key)
		marker := " "
		if key == current {
			marker = color.GreenString("●")
		}

		idx := slices.Index(v.Themes, key)
		if idx < 0 {
			fmt.Fprintf(w, "%s %s %s\n", marker, color.HiBlackString("- %-7s %s", t.Name, t.Season), color.HiBlackString("(unavailable)"))
			continue
		}
		fmt.Fprintf(w, "%s %d %-7s %s\n", marker, idx+1, t.Name, color.CyanString(t.Season))
	}
}
