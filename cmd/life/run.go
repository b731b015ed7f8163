package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/render"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagGenerations int
	flagRunRule     string
	flagSaveAs      string
	flagPrint       bool
	flagWorkers     int
	flagEvery       int
)

var runCmd = &cobra.Command{
	Use:   "run <world>",
	Short: "Run a world headless and print statistics",
	Long: `Build the specified world, advance it a number of generations without
a UI and print population statistics. The run is recorded in the database
(see 'life runs'); --save also stores the final state as a snapshot.

Examples:
  life run life2d -n 1000
  life run life3d -n 100 --rule life3d-compact --seed 7
  life run sphere -n 500 --save sphere-500 --print
  life run life2d -n 200 --every 50`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVarP(&flagGenerations, "generations", "n", 100, "Generations to compute")
	runCmd.Flags().StringVar(&flagRunRule, "rule", "", "Rule preset overriding the config")
	runCmd.Flags().StringVar(&flagSaveAs, "save", "", "Save the final state as a named snapshot")
	runCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final grid")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Goroutines per step (0 = config)")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Print population every N generations")
}

func runRun(cmd *cobra.Command, args []string) {
	variantID := args[0]
	logger := newLogger("life-run")

	v, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'life list' to see available worlds.")
		os.Exit(1)
	}

	cfg, err := config.Load(variantID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagRunRule != "" {
		if err := config.ApplyRulePreset(&cfg, config.RulePreset(flagRunRule)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	switch {
	case flagSeed != 0:
		cfg.Seed.Value = flagSeed
	case cfg.Seed.Value == 0:
		cfg.Seed.Value = time.Now().UnixNano()
	}
	if flagWorkers != 0 {
		cfg.Sim.Workers = flagWorkers
	}
	if flagGenerations < 0 {
		fmt.Fprintln(os.Stderr, "Error: --generations must not be negative")
		os.Exit(1)
	}

	sess, err := v.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := sess.Stats()
	fmt.Printf("%s  %s %s  rule %s  seed %d\n", v.Title(), sess.Kind(), sess.Dimensions(), start.Rule, cfg.Seed.Value)
	fmt.Printf("  gen %6d  pop %d\n", start.Generation, start.Population)

	began := time.Now()
	for done := 0; done < flagGenerations; {
		batch := flagGenerations - done
		if flagEvery > 0 {
			batch = min(batch, flagEvery)
		}
		if _, err := sess.Run(batch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		done += batch
		if flagEvery > 0 && done < flagGenerations {
			st := sess.Stats()
			fmt.Printf("  gen %6d  pop %d\n", st.Generation, st.Population)
		}
	}
	elapsed := time.Since(began)

	final := sess.Stats()
	fmt.Printf("  gen %6d  pop %d\n", final.Generation, final.Population)
	if flagGenerations > 0 {
		perGen := elapsed / time.Duration(flagGenerations)
		fmt.Printf("%d generations in %s (%s/gen)\n", flagGenerations, elapsed.Round(time.Millisecond), perGen)
	}

	if flagPrint {
		fmt.Println()
		fmt.Println(render.String(sess.Current().Grid, 0, render.DefaultGlyphs))
	}

	run := storage.RunRecord{
		Variant:         variantID,
		Seed:            cfg.Seed.Value,
		Rule:            final.Rule,
		Generations:     flagGenerations,
		FinalPopulation: final.Population,
		Duration:        elapsed,
	}
	var snap *storage.Snapshot
	if flagSaveAs != "" {
		snap = &storage.Snapshot{
			Name:       flagSaveAs,
			Variant:    variantID,
			Kind:       sess.Kind().String(),
			Generation: final.Generation,
			Population: final.Population,
			Rule:       final.Rule,
			Data:       sess.Snapshot(),
		}
	}
	if err := recordRun(flagDBPath, run, snap, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		os.Exit(1)
	}
	if snap != nil {
		fmt.Printf("Saved snapshot %q\n", snap.Name)
	}
}

// recordRun stores the run summary and, when snap is set, the final state.
// A failure to record the run is only logged; a requested snapshot that
// cannot be saved is an error. The store is closed before returning.
func recordRun(dbPath string, run storage.RunRecord, snap *storage.Snapshot, logger *log.Logger) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		if snap != nil {
			return err
		}
		logger.Warn("could not open database, run not recorded", "error", err)
		return nil
	}
	defer store.Close()

	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not record run", "error", err)
	}
	if snap == nil {
		return nil
	}
	_, err = store.SaveSnapshot(*snap)
	return err
}
