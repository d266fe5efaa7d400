package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a board variant",
	Long: `Display the top 10 high scores for the specified board variant.

Examples:
  term2048 scores classic
  term2048 scores mini
  term2048 scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'term2048 list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	g, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variantID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'term2048 play %s' to set the first high score!\n", variantID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.BestTile, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(variantID)
	if err == nil {
		fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}
