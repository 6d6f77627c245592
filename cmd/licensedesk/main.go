package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/licensedesk/licensedesk/internal/app"
	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/config"
	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/prefs"
	"github.com/licensedesk/licensedesk/internal/sound"
)

var (
	version = "0.1.0"

	// lookupEnv reads LICENSEDESK_* variables
	lookupEnv = os.LookupEnv
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "licensedesk",
		Short: "Themed terminal console for license management",
		Long: `licensedesk: license management console with a command palette.

Usage modes:
  licensedesk                 Start the interactive console
  licensedesk exec <cmd>...   Run palette commands without the UI
  licensedesk themes          List the themes of the selected variant

Press ctrl+k inside the console and type 'help' for the command list.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			return runUI(env)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(execCmd(), themesCmd())
	return root
}

// environment is everything a subcommand needs once configuration has
// been resolved.
type environment struct {
	cfg        config.Config
	store      *prefs.Store
	sounds     *sound.Library
	dispatcher *commands.Dispatcher
}

func (e *environment) close() {
	if err := logging.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log: %v\n", err)
	}
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load(cmd.Flags(), lookupEnv)
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.Logging()); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	env := &environment{cfg: cfg}
	env.store, err = openPrefs(cfg.PrefsPath)
	if err != nil {
		env.close()
		return nil, err
	}

	p, err := env.store.Load()
	if err != nil {
		logging.Warn("using default preferences", "path", env.store.Path(), "error", err)
	}
	env.sounds = sound.NewLibrary(p.SoundThemes)

	variant, err := commands.LookupVariant(cfg.Variant)
	if err != nil {
		env.close()
		return nil, err
	}
	env.dispatcher, err = commands.NewDispatcher(commands.Options{
		Variant:     variant,
		Theme:       cfg.Theme,
		AutoMode:    cfg.AutoMode,
		SoundTheme:  p.SoundTheme,
		SoundThemes: env.sounds.Names(),
	})
	if err != nil {
		env.close()
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}

	logging.Info("licensedesk starting",
		"version", version,
		"variant", variant.Name,
		"theme", env.dispatcher.Theme().Key,
		"prefs", env.store.Path())
	return env, nil
}

func openPrefs(path string) (*prefs.Store, error) {
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, fmt.Errorf("locate preferences: %w", err)
		}
	}
	return prefs.NewStore(path), nil
}

func runUI(env *environment) error {
	var player sound.Player = sound.NopPlayer{}
	if env.cfg.Sound {
		player = sound.NewBellPlayer(os.Stderr)
	}

	model := app.NewModel(app.Options{
		Dispatcher: env.dispatcher,
		Sounds:     env.sounds,
		Player:     player,
		Prefs:      env.store,
		ExportDir:  env.cfg.ExportDir,
		Seed:       uint64(time.Now().UnixNano()),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("program failed", "error", err)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
