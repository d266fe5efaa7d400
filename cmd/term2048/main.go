// term2048 is a terminal 2048 puzzle with several board variants.
//
// Usage:
//
//	term2048 list              - List available board variants
//	term2048 play [variant]    - Play a board (default from config)
//	term2048 menu              - Start the interactive variant picker
//	term2048 serve             - Start SSH server for remote play
//	term2048 scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config, 30)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.term2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game to register the variants
	_ "github.com/vovakirdan/term2048/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `term2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Available commands:
  list     - Show all board variants
  play     - Play a board variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  term2048 list
  term2048 play classic
  term2048 menu
  term2048 serve --ssh :2222
  term2048 scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config file, default 30)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.term2048/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
