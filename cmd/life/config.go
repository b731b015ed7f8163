package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config <world>",
	Short: "Print a world's configuration",
	Long: `Print the effective YAML configuration for a world, after the search
chain (--config, ~/.life/configs/<world>.yaml, ./configs/<world>.yaml,
built-in default). With --default, print the built-in file instead; it is a
good starting point for a custom config.

Examples:
  life config life2d
  life config sphere --default > ~/.life/configs/sphere.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if flagConfigDefault {
		data := config.GetDefaultYAML(variantID)
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", variantID)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	cfg, err := config.Load(variantID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config is invalid:\n%v\n\n", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
