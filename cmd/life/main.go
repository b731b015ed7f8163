// life runs cellular automata on flat, volumetric and spherical worlds in
// the terminal.
//
// Usage:
//
//	life list                 - List available worlds
//	life play <world>         - Run a world interactively
//	life menu                 - Pick worlds from a menu
//	life run <world> -n 500   - Run headless and print statistics
//	life serve                - Start SSH server for remote sessions
//	life snapshots [world]    - List saved snapshots
//	life show <snapshot>      - Print a saved snapshot
//	life runs [world]         - Show headless run history
//	life config <world>       - Print a world's configuration
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible worlds (0 = time based)
//	--db <path>         - Database path (default: ~/.life/life.db)
//	--config <path>     - Custom world config YAML
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-life/internal/variants"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "TUI Life - cellular automata in your terminal",
	Long: `TUI Life runs Conway-style cellular automata on three kinds of world:
a flat torus, a 3D torus and a cube-mapped sphere.

Available commands:
  list       - Show all available worlds
  play       - Run a world interactively
  menu       - Interactive world picker
  run        - Run a world headless and print statistics
  serve      - Start SSH server for remote sessions
  snapshots  - List or delete saved snapshots
  show       - Print a saved snapshot
  runs       - Show headless run history
  config     - Print a world's configuration

Examples:
  life list
  life play life2d
  life play life3d --rule life3d-compact
  life run sphere -n 200 --save sphere-200
  life serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, or time if unset)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/life.db", "Path to snapshot database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger at the --log-level threshold.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
