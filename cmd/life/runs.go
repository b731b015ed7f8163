package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [world]",
	Short: "Show headless run history",
	Long: `Display the most recent 'life run' invocations, newest first.

Examples:
  life runs
  life runs sphere --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum runs per world")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

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
		runs, err := store.RecentRuns(id, flagRunsLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		if len(runs) == 0 {
			continue
		}
		total += len(runs)

		fmt.Printf("Runs - %s\n\n", id)
		fmt.Printf("  %-20s  %-12s  %7s  %9s  %10s  %s\n", "Seed", "Rule", "Gens", "Final pop", "Time", "Date")
		fmt.Printf("  %-20s  %-12s  %7s  %9s  %10s  %s\n", "----", "----", "----", "---------", "----", "----")
		for _, r := range runs {
			fmt.Printf("  %-20d  %-12s  %7d  %9d  %10s  %s\n",
				r.Seed, r.Rule, r.Generations, r.FinalPopulation,
				r.Duration.Round(time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	if total == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Try 'life run life2d -n 500'.")
	}
}
