package game

import "github.com/vovakirdan/term2048/internal/engine"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Target  int
	Score   int
	Grid    [][]int
	MaxTile int
	Status  engine.Status
	Paused  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Target:  g.eng.WinTarget(),
		Score:   g.eng.Score(),
		Grid:    g.eng.Grid(),
		MaxTile: g.eng.MaxTile(),
		Status:  g.eng.Status(),
		Paused:  g.paused,
	}
}
