package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/logging"
)

func execCmd() *cobra.Command {
	var joined bool

	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run palette commands and print their results",
		Long: `Run one or more palette commands without starting the console.

Each argument is a separate command line:
  licensedesk exec help "theme rose" "export csv"

With --join all arguments form a single command line:
  licensedesk exec --join theme rose`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			lines := args
			if joined {
				lines = []string{strings.Join(args, " ")}
			}
			return runLines(cmd.OutOrStdout(), env, lines)
		},
	}

	cmd.Flags().BoolVar(&joined, "join", false, "Treat all arguments as one command line")
	return cmd
}

// runLines submits each line and prints the resulting history entry.
// Exports are carried out; other side effects only exist in the console.
func runLines(w io.Writer, env *environment, lines []string) error {
	var failed int
	for _, line := range lines {
		effect := env.dispatcher.Submit(line)
		if effect.Entry == nil {
			continue
		}
		ok := !isFailure(effect.Entry.Result)
		if !ok {
			failed++
		}
		printEntry(w, *effect.Entry, ok)

		if err := runExport(w, env, effect.Export); err != nil {
			failed++
			fmt.Fprintf(w, "  %s %v\n", color.RedString("✗"), err)
		}
		if effect.SoundTheme != "" {
			if err := env.store.SetSoundTheme(effect.SoundTheme); err != nil {
				logging.Warn("save sound theme failed", "theme", effect.SoundTheme, "error", err)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, len(lines))
	}
	return nil
}

func runExport(w io.Writer, env *environment, target commands.ExportTarget) error {
	switch target {
	case commands.ExportCSV:
		path, err := license.ExportFile(env.cfg.ExportDir, license.Rows(), time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s Exported %d licenses to %s\n", color.GreenString("✓"), license.RowCount(), path)
	case commands.ExportClipboard:
		if err := license.ExportClipboard(license.Rows()); err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s Copied %d licenses to clipboard\n", color.GreenString("✓"), license.RowCount())
	}
	return nil
}

func printEntry(w io.Writer, e commands.HistoryEntry, ok bool) {
	marker := color.GreenString("✓")
	if !ok {
		marker = color.RedString("✗")
	}
	fmt.Fprintf(w, "%s %s %s\n", color.HiBlackString(e.Timestamp.Format("15:04:05")), color.CyanString("$"), e.Command)
	fmt.Fprintf(w, "  %s %s\n", marker, e.Result)
}

// isFailure reports whether a result line describes a rejected command.
func isFailure(result string) bool {
	for _, prefix := range []string{"Unknown ", "Missing ", "Invalid "} {
		if strings.HasPrefix(result, prefix) {
			return true
		}
	}
	return false
}
