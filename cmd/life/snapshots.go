package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagSnapLimit  int
	flagSnapDelete string
	flagSnapBrowse bool
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [world]",
	Short: "List, browse or delete saved snapshots",
	Long: `Display saved snapshots, newest first. Without a world, lists every
world in turn.

Examples:
  life snapshots
  life snapshots life3d --limit 5
  life snapshots --delete life2d-g120-20260101-120000
  life snapshots --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSnapshots,
}

func init() {
	snapshotsCmd.Flags().IntVar(&flagSnapLimit, "limit", 20, "Maximum snapshots per world")
	snapshotsCmd.Flags().StringVar(&flagSnapDelete, "delete", "", "Delete the named snapshot")
	snapshotsCmd.Flags().BoolVar(&flagSnapBrowse, "browse", false, "Open the interactive browser")
}

func runSnapshots(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSnapDelete != "" {
		deleted, err := store.DeleteSnapshot(flagSnapDelete)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "No snapshot named %q\n", flagSnapDelete)
			os.Exit(1)
		}
		fmt.Printf("Deleted %q\n", flagSnapDelete)
		return
	}

	if flagSnapBrowse {
		browse(store)
		return
	}

	var variants []string
	if len(args) == 1 {
		variants = []string{args[0]}
	} else {
		for _, v := range registry.List() {
			variants = append(variants, v.ID)
		}
	}

	total := 0
	for _, id := range variants {
		snaps, err := store.ListSnapshots(id, flagSnapLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving snapshots: %v\n", err)
			os.Exit(1)
		}
		if len(snaps) == 0 {
			continue
		}
		total += len(snaps)

		fmt.Printf("Snapshots - %s\n\n", id)
		fmt.Printf("  %-36s  %7s  %7s  %-12s  %s\n", "Name", "Gen", "Pop", "Rule", "Saved")
		fmt.Printf("  %-36s  %7s  %7s  %-12s  %s\n", "----", "---", "---", "----", "-----")
		for _, s := range snaps {
			fmt.Printf("  %-36s  %7d  %7d  %-12s  %s\n",
				s.Name, s.Generation, s.Population, s.Rule, s.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	if total == 0 {
		fmt.Println("No snapshots saved yet.")
		fmt.Println()
		fmt.Println("Press Ctrl+S in 'life play', or use 'life run --save <name>'.")
	}
}

// browse runs the interactive browser and plays the chosen snapshot.
func browse(store *storage.Store) {
	width, height := terminalSize()
	res, err := tui.RunSnapshots(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if res.Open == "" {
		return
	}

	launcher := tui.Launcher{
		ConfigPath: flagConfig,
		Seed:       flagSeed,
		Store:      store,
		Logger:     newLogger("life"),
	}
	sess, opts, err := launcher.Open(res.Open, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(sess, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
