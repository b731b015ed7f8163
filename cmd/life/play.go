package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRule     string
	flagTickRate int
	flagSnapshot string
)

var playCmd = &cobra.Command{
	Use:   "play <world>",
	Short: "Run a world interactively",
	Long: `Start the specified world paused at generation 0.

Controls:
  Space      - Run/pause
  Right/n    - Next generation (replays history, then computes)
  Left/b     - Previous generation
  s          - Step and discard any later history
  r          - Clear to the starting pattern
  g / f      - Scatter gliders / random fill
  [ / ]      - Previous/next layer (3D)
  + / -      - Faster/slower
  Ctrl+S     - Save snapshot
  ?          - All keys
  Q/Ctrl+C   - Quit

Rule presets:
  conway, highlife, seeds          - 2D and sphere worlds
  life3d, life3d-compact           - 3D worlds

Examples:
  life play life2d
  life play life3d --rule life3d-compact
  life play sphere --fps 20
  life play life2d --snapshot life2d-g120-20260101-120000
  life play life2d --config ./my-world.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRule, "rule", "", "Rule preset overriding the config")
	playCmd.Flags().IntVar(&flagTickRate, "fps", 0, "Generations per second while running (0 = config)")
	playCmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Start from a saved snapshot instead of the seed")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a TTY.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the snapshot database. Failure is a warning only.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open snapshot database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'life list' to see available worlds.")
		os.Exit(1)
	}

	// Below warn, log lines interleave with the alt screen.
	logger := newLogger("life")
	store := openStore()

	launcher := tui.Launcher{
		ConfigPath: flagConfig,
		Seed:       flagSeed,
		TickRate:   flagTickRate,
		Store:      store,
		Logger:     logger,
	}
	width, height := terminalSize()

	play := func() error {
		if flagSnapshot != "" {
			sess, opts, err := launcher.Open(flagSnapshot, width, height)
			if err != nil {
				return err
			}
			return tui.Run(sess, opts)
		}
		sess, opts, err := launcher.Build(variantID, config.RulePreset(flagRule), width, height)
		if err != nil {
			return err
		}
		return tui.Run(sess, opts)
	}
	runErr := play()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
