package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the flight log",
	Long: `Without an argument, print a summary line per level.
With a level ID, print that level's ten fastest landings and its totals.

Examples:
  lander scores
  lander scores lvl01
  lander scores lvl01 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded flights (of one level, or all)")
}

func runScores(_ *cobra.Command, args []string) error {
	a, err := setup(setupOptions{})
	if err != nil {
		return err
	}
	defer a.close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening flight log: %w", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if !a.build.Exists(levelID) {
			return fmt.Errorf("unknown level %q (run 'lander levels' to list them)", levelID)
		}
	}

	if flagClear {
		if err := store.ClearFlights(levelID); err != nil {
			return err
		}
		fmt.Println("Flight log cleared.")
		return nil
	}

	if levelID == "" {
		return printSummary(a, store)
	}
	return printLevel(store, levelID)
}

func printSummary(a *app, store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return err
	}

	fmt.Println("Flight log")
	fmt.Println()
	fmt.Printf("  %-10s  %-16s  %8s  %6s  %7s  %9s\n", "Level", "Name", "Attempts", "Landed", "Crashed", "Best")
	fmt.Printf("  %-10s  %-16s  %8s  %6s  %7s  %9s\n", "-----", "----", "--------", "------", "-------", "----")

	for _, info := range a.build.List() {
		st, ok := all[info.ID]
		if !ok {
			st = &storage.LevelStats{LevelID: info.ID}
		}
		fmt.Printf("  %-10s  %-16s  %8d  %6d  %7d  %9s\n",
			info.ID, info.Title, st.Attempts, st.Landings, st.Crashes, formatBest(st.Best))
	}
	return nil
}

func printLevel(store *storage.Store, levelID string) error {
	flights, err := store.BestLandings(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Fastest landings - %s\n", levelID)
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No landings recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lander play %s' to set the first time!\n", levelID)
	} else {
		fmt.Printf("  %-4s  %-9s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-9s  %s\n", "----", "----", "----")
		for i, f := range flights {
			fmt.Printf("  %-4d  %-9s  %s\n", i+1, formatBest(f.Duration), f.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.LevelStats(levelID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Attempts: %d  Landed: %d  Crashed: %d\n", stats.Attempts, stats.Landings, stats.Crashes)
	return nil
}

func formatBest(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
