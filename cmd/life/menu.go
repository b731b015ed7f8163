package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a world picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a world, then pick a
rule set. Tab opens the snapshot browser. Quitting a world returns to
the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Snapshots
  Q            - Quit

Examples:
  life menu
  life menu --seed 42
  life menu --db ./life.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	launcher := tui.Launcher{
		ConfigPath: flagConfig,
		Seed:       flagSeed,
		Store:      store,
		Logger:     newLogger("life"),
	}
	width, height := terminalSize()

	for {
		menuResult, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return
		}

		var (
			sess *session.Session
			opts tui.WorldOptions
		)
		switch {
		case menuResult.WantsSnapshots:
			res, err := tui.RunSnapshots(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if res.Open == "" {
				if res.Back {
					continue
				}
				return
			}
			sess, opts, err = launcher.Open(res.Open, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}

		default:
			preset, ok, err := tui.RunRulesMenu(menuResult.VariantID, menuResult.Title, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !ok {
				continue
			}
			sess, opts, err = launcher.Build(menuResult.VariantID, preset, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
		}

		if err := tui.Run(sess, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
