package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the loaded levels",
	Long: `Shows the build list in play order, and any level files that
were skipped because they failed validation.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lvls, loader, err := loadLevels(cfg.Rocket)
	if err != nil {
		return err
	}

	fmt.Printf("Levels from %s:\n", loader.Root)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "#", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "-", maxIDLen, "--", "----", "----")
	for i, l := range lvls {
		fmt.Printf("  %-3d  %-*s  %-16s  %dx%d\n", i+1, maxIDLen, l.ID, l.Name, l.Width, l.Height)
	}

	if len(loader.Problems) > 0 {
		fmt.Println()
		fmt.Println("Skipped:")
		for _, p := range loader.Problems {
			fmt.Printf("  %v\n", p)
		}
	}

	fmt.Println()
	fmt.Println("Run 'lander play <id>' to start at a level.")
	return nil
}
