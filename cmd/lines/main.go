// lines is a terminal Color Lines game: move balls to line up five of a
// colour and keep the board from filling up.
//
// Usage:
//
//	lines list              - List available variants
//	lines play [game]       - Play a variant (default: lines)
//	lines menu              - Start menu to pick variants interactively
//	lines serve             - Start SSH server for remote play
//	lines scores [game]     - Show high scores for a variant
//	lines scores --all      - Summarize every variant
//	lines scores --reset    - Delete the recorded games of a variant
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.arcade/lines.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--theme <name>       - Colour theme: default, neon, pastel
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-lines/internal/games/colorlines"
)

const defaultGame = "lines"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lines",
	Short: "Color Lines - line up coloured balls in your terminal",
	Long: `Color Lines is a terminal puzzle game. Move one ball per turn to an
empty cell; five or more balls of one colour in a row, column or diagonal
disappear. Every move that clears nothing brings three new balls. The game
ends when the board is full.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  lines play
  lines play lines_mini --difficulty hard
  lines menu --theme neon
  lines serve --ssh :2222
  lines scores lines`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyTheme(flagTheme)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/lines.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagTheme, "theme", "default", "Colour theme: default, neon, pastel")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
