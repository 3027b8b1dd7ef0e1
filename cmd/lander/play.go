package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/gui"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start flying. Without an argument play starts at the first level;
with a level ID it starts there. Finishing the last level wraps to the first.

Controls:
  Space/W/Up   - Main engine
  A/Left       - Rotate left
  D/Right      - Rotate right
  P            - Pause
  Esc          - Leave the game
  Ctrl+S       - Save a text screenshot (terminal only)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Lower gravity, stronger engine
  normal  - Tuning file as is
  hard    - Heavier gravity, weaker engine

Examples:
  lander play
  lander play lvl03
  lander play --difficulty hard
  lander play --config ./my-lander.yaml
  lander play --levels ./my-levels --gui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup(setupOptions{audio: true, storage: true})
	if err != nil {
		return err
	}
	defer a.close()

	game := a.newGame()
	if len(args) == 1 {
		idx, ok := a.build.IndexOf(args[0])
		if !ok {
			return fmt.Errorf("unknown level %q (run 'lander levels' to list them)", args[0])
		}
		game.LoadScene(idx)
	} else {
		lander.NewMainMenu(game, nil).Start()
	}

	return runGame(a, game)
}

// runGame plays game in the host picked by --gui until the player leaves.
func runGame(a *app, game *lander.Game) error {
	if flagGUI {
		return gui.Run(game, a.store, a.runtimeConfig(), a.logger)
	}
	return tui.Run(game, a.store, a.runtimeConfig(), a.holdTicks())
}
