// lander is a terminal rocket-landing game: fly the rocket from the launch
// pad to the finish pad of each level without touching anything else.
//
// Usage:
//
//	lander play [level]      - Play from the first level, or from the given one
//	lander menu              - Title screen with the flight log
//	lander serve             - Start SSH server for remote play
//	lander scores [level]    - Show the flight log
//	lander levels            - List the loaded levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible effects
//	--db <path>          - Set database path (default: ~/.lander/lander.db)
//	--levels <dir>       - Load levels from a directory instead of the built-in pack
//	--config <path>      - Use a custom tuning file
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--gui                - Open a desktop window instead of the terminal UI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagGUI        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lander - fly a rocket between launch pads in your terminal",
	Long: `Lander is a small rocket game played in the terminal.

Take off from the launch pad, steer around the obstacles and touch
down on the finish pad. Touching anything else wrecks the rocket and
restarts the level.

Available commands:
  play     - Play from the first level or a given one
  menu     - Title screen with the flight log
  serve    - Start SSH server for remote play
  scores   - View the flight log
  levels   - List the loaded levels

Examples:
  lander play
  lander play lvl03 --difficulty hard
  lander menu --gui
  lander serve --ssh :2222
  lander scores lvl01`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.lander/lander.db", "Path to flight log database")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal UI")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
