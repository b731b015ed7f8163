package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available worlds",
	Long:  `Shows a list of all world variants and their default topology.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-10s  %s\n", maxIDLen, "ID", "Topology", "Rules", "Title")
	fmt.Printf("  %-*s  %-10s  %-10s  %s\n", maxIDLen, "--", "--------", "-----", "-----")

	for _, v := range variants {
		topology, rule := "?", "?"
		if cfg, ok := config.Default(v.ID); ok {
			topology = cfg.Topology
			if rs, err := cfg.RuleSet(); err == nil {
				rule = rs.String()
			}
		}
		fmt.Printf("  %-*s  %-10s  %-10s  %s\n", maxIDLen, v.ID, topology, rule, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'life play <id>' to start a world.")
}
