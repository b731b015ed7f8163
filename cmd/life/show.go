package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/render"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagShowLayer int
	flagShowAll   bool
)

var showCmd = &cobra.Command{
	Use:   "show <snapshot>",
	Short: "Print a saved snapshot",
	Long: `Print a stored snapshot as text. Sphere worlds print as an unfolded
cube net; 3D worlds print one z layer, or every layer with --all.

Examples:
  life show sphere-500
  life show life3d-g40-20260101-120000 --layer 3
  life show life3d-g40-20260101-120000 --all`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowLayer, "layer", 0, "Layer to print for 3D worlds")
	showCmd.Flags().BoolVar(&flagShowAll, "all", false, "Print every layer of a 3D world")
}

func runShow(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := store.LoadSnapshot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if snap == nil {
		fmt.Fprintf(os.Stderr, "No snapshot named %q\n", args[0])
		os.Exit(1)
	}

	frame, err := automaton.DecodeSnapshot(snap.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g := frame.Grid
	ext := g.Extents()

	fmt.Printf("%s  %s %s  gen %d  pop %d  rule %s  saved %s\n\n",
		snap.Name, g.Kind(), ext, frame.Generation, g.Population(), snap.Rule,
		snap.CreatedAt.Format("2006-01-02 15:04"))

	if g.Kind() != automaton.Flat3D {
		fmt.Println(render.String(g, 0, render.DefaultGlyphs))
		return
	}

	layers := []int{flagShowLayer}
	if flagShowAll {
		layers = layers[:0]
		for z := range ext.Layers {
			layers = append(layers, z)
		}
	}
	for _, z := range layers {
		if z < 0 || z >= ext.Layers {
			fmt.Fprintf(os.Stderr, "Error: layer %d out of range 0..%d\n", z, ext.Layers-1)
			os.Exit(1)
		}
		fmt.Printf("z=%d  pop %d\n", z, g.LayerPopulation(z))
		fmt.Println(render.String(g, z, render.DefaultGlyphs))
		fmt.Println()
	}
}
