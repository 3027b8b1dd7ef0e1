package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game at the title screen",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Flight log
  Q            - Quit

Examples:
  lander menu
  lander menu --fps 30
  lander menu --db ./lander.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(setupOptions{audio: true, storage: true})
	if err != nil {
		return err
	}
	defer a.close()

	done := false
	game := a.newGame()
	title := lander.NewMainMenu(game, func() { done = true })
	cfg := a.runtimeConfig()

	for !done {
		result, err := tui.RunMenu(a.build.Len(), cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceStart:
			title.Start()
			if err := runGame(a, game); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			// A desktop window can be opened once per process.
			if flagGUI {
				title.Quit()
			}

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(a.build, a.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				title.Quit()
			}

		default:
			title.Quit()
		}
	}

	return nil
}
