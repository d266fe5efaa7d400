package game

import (
	"math/rand"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Game drives one 2048 board for the platform layer.
type Game struct {
	variant Variant
	eng     *engine.Engine
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// New creates a game for the given variant. The engine is built on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// boardParams resolves the effective board configuration: variant defaults,
// then the overrides the CLI derived from config files and flags.
func (g *Game) boardParams() engine.Config {
	params := engine.Config{
		Size:      g.variant.Size,
		WinTarget: g.variant.WinTarget,
		FourProb:  g.variant.FourProb,
	}

	if overrideSize != 0 {
		params.Size = overrideSize
	}
	if overrideTarget != 0 {
		params.WinTarget = overrideTarget
	}
	if overrideFourProb != 0 {
		params.FourProb = overrideFourProb
	}

	return params
}

// Reset initializes/restarts the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false

	params := g.boardParams()
	params.Rand = rand.New(rand.NewSource(cfg.Seed))

	eng, err := engine.New(params)
	if err != nil {
		// Overrides are validated by the CLI before play; if a bad config
		// file slips through, fall back to the variant defaults.
		eng, _ = engine.New(engine.Config{
			Size:      g.variant.Size,
			WinTarget: g.variant.WinTarget,
			FourProb:  g.variant.FourProb,
			Rand:      rand.New(rand.NewSource(cfg.Seed)),
		})
	}
	g.eng = eng

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.eng != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	boardW := g.eng.Size()*cellWidth + 1
	boardH := g.eng.Size()*cellHeight + 1
	minW := core.Max(boardW, 30)
	minH := boardH + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Terminal states wait for restart, which the platform handles.
	if g.eng.Status() != engine.StatusInProgress {
		return core.StepResult{State: g.State()}
	}

	var dir engine.Direction
	requested := false

	switch {
	case in.Has(core.ActionUp):
		dir = engine.DirUp
		requested = true
	case in.Has(core.ActionDown):
		dir = engine.DirDown
		requested = true
	case in.Has(core.ActionLeft):
		dir = engine.DirLeft
		requested = true
	case in.Has(core.ActionRight):
		dir = engine.DirRight
		requested = true
	}

	if requested && !g.moveProcessed {
		// Directions come from the closed action set, so the error path
		// is unreachable here; ineffective moves are simply ignored.
		//nolint:errcheck
		g.eng.Move(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		BestTile: g.eng.MaxTile(),
		GameOver: g.eng.Status() != engine.StatusInProgress,
		Won:      g.eng.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying board engine for inspection (scores,
// snapshots). The returned engine must not be mutated concurrently with Step.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
