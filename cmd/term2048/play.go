package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagConfig   string
	flagSize     int
	flagTarget   int
	flagFourProb float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given board variant. Without an argument the
default variant from the config file is used.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Board overrides apply on top of the variant, config file first, then flags:
  --size       - Board dimension (2 or larger)
  --target     - Tile value that wins the game
  --four-prob  - Probability of spawning a 4 instead of a 2

Examples:
  term2048 play
  term2048 play classic
  term2048 play mini --seed 42
  term2048 play classic --size 6 --target 8192
  term2048 play classic --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board dimension override (0 = variant default)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Win target override (0 = variant default)")
	playCmd.Flags().Float64Var(&flagFourProb, "four-prob", 0, "Four-spawn probability override (0 = variant default)")
}

// applyBoardOverrides layers the config file and flags over the variant and
// validates the result before the board is ever shown.
func applyBoardOverrides(variantID string, fileCfg config.GameConfig) error {
	size := fileCfg.Board.Size
	target := fileCfg.Board.WinTarget
	fourProb := fileCfg.Board.FourProbability

	// Flags win over the config file
	if flagSize != 0 {
		size = flagSize
	}
	if flagTarget != 0 {
		target = flagTarget
	}
	if flagFourProb != 0 {
		fourProb = flagFourProb
	}

	if size == 0 && target == 0 && fourProb == 0 {
		return nil
	}

	// Resolve against the variant and let the engine validate the result
	params := engine.Config{Size: size, WinTarget: target, FourProb: fourProb}
	if v := game.VariantByID(variantID); v != nil {
		if params.Size == 0 {
			params.Size = v.Size
		}
		if params.WinTarget == 0 {
			params.WinTarget = v.WinTarget
		}
		if params.FourProb == 0 {
			params.FourProb = v.FourProb
		}
	}
	if _, err := engine.New(params); err != nil {
		return err
	}

	game.SetBoardOverride(size, target, fourProb)
	return nil
}

// resolveTickRate picks the tick rate from the --fps flag, then the config
// file, then the built-in default.
func resolveTickRate(fileCfg config.GameConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if fileCfg.UI.TickRate > 0 {
		return fileCfg.UI.TickRate
	}
	return core.DefaultConfig().TickRate
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	variantID := fileCfg.DefaultVariant
	if variantID == "" {
		variantID = config.DefaultGameConfig().DefaultVariant
	}
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'term2048 list' to see available variants.")
		os.Exit(1)
	}

	if err := applyBoardOverrides(variantID, fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: resolveTickRate(fileCfg),
		Seed:     flagSeed,
	}

	// Create game instance
	g, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
