// Package game adapts the 2048 board engine to the terminal platform:
// it maps input actions to moves, renders the board, and exposes the
// playable variants.
package game

import "github.com/vovakirdan/term2048/internal/registry"

// Variant defines a playable board configuration.
type Variant struct {
	ID        string
	Title     string
	Size      int     // Board dimension
	WinTarget int     // Tile value that wins the game
	FourProb  float64 // Probability of spawning 4 instead of 2
}

// Variants lists the built-in board configurations, from smallest to largest.
var Variants = []Variant{
	{ID: "mini", Title: "Mini (3x3 to 1024)", Size: 3, WinTarget: 1024, FourProb: 0.10},
	{ID: "classic", Title: "Classic (4x4 to 2048)", Size: 4, WinTarget: 2048, FourProb: 0.10},
	{ID: "big", Title: "Big Board (5x5 to 4096)", Size: 5, WinTarget: 4096, FourProb: 0.10},
}

func init() {
	for _, v := range Variants {
		variant := v
		registry.Register(variant.ID, func() registry.Game {
			return New(variant)
		})
	}
}

// VariantByID returns the built-in variant with the given ID, or nil.
func VariantByID(id string) *Variant {
	for i := range Variants {
		if Variants[i].ID == id {
			return &Variants[i]
		}
	}
	return nil
}

// Package-level overrides set by the CLI before a game is created.
var (
	overrideSize     int
	overrideTarget   int
	overrideFourProb float64
)

// SetBoardOverride forces board parameters for the next game, taking
// precedence over both the variant and the config file. Zero values leave
// the corresponding parameter untouched.
func SetBoardOverride(size, target int, fourProb float64) {
	overrideSize = size
	overrideTarget = target
	overrideFourProb = fourProb
}
