// Package engine implements the 2048 board state machine: sliding, merging,
// random tile spawns, and win/loss detection. It is pure game logic with no
// rendering, input, or I/O dependencies; a presentation layer drives it
// through Move/Reset and redraws itself from the accessors.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "invalid"
	}
}

// Status is the three-way game classification.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ErrInvalidDirection is returned by Move for a direction outside the four
// recognized values. Callers passing a literal direction never see it.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Source supplies the engine's randomness: uniform cell choice via Intn and
// the 2-vs-4 biased coin via Float64. *math/rand.Rand satisfies it; tests
// inject scripted sources for determinism.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Default parameters matching the classic game.
const (
	DefaultSize      = 4
	DefaultWinTarget = 2048
	DefaultFourProb  = 0.10
)

// Config holds construction parameters. Zero values select the classic
// defaults: 4x4 board, 2048 win target, 10% four spawns, time-seeded RNG.
type Config struct {
	Size      int
	WinTarget int
	FourProb  float64
	Rand      Source
}

// Engine owns the grid, score, and terminal status of a single game.
// It is not safe for concurrent use; callers must serialize access.
type Engine struct {
	size     int
	target   int
	fourProb float64
	rng      Source

	grid   [][]int
	score  int
	status Status
}

// New creates an engine and places the two initial tiles.
// Configuration errors are reported here, never later.
func New(cfg Config) (*Engine, error) {
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	if cfg.WinTarget == 0 {
		cfg.WinTarget = DefaultWinTarget
	}
	if cfg.FourProb == 0 {
		cfg.FourProb = DefaultFourProb
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if cfg.Size < 2 {
		return nil, fmt.Errorf("engine: board size must be at least 2, got %d", cfg.Size)
	}
	if cfg.WinTarget < 1 {
		return nil, fmt.Errorf("engine: win target must be positive, got %d", cfg.WinTarget)
	}
	if cfg.FourProb < 0 || cfg.FourProb > 1 {
		return nil, fmt.Errorf("engine: four-spawn probability must be in [0,1], got %g", cfg.FourProb)
	}

	e := &Engine{
		size:     cfg.Size,
		target:   cfg.WinTarget,
		fourProb: cfg.FourProb,
		rng:      cfg.Rand,
	}
	e.Reset()
	return e, nil
}

// Reset clears the grid and score, returns the status to in-progress,
// and spawns the two starting tiles. Always available, from any state.
func (e *Engine) Reset() {
	e.grid = make([][]int, e.size)
	for row := range e.grid {
		e.grid[row] = make([]int, e.size)
	}
	e.score = 0
	e.status = StatusInProgress
	e.spawnTile()
	e.spawnTile()
}

// Move slides all tiles in the given direction, merging equal adjacent
// pairs once each. It reports whether the board changed. Ineffective moves
// spawn nothing and leave all state untouched. Once the game is won or
// lost, Move returns false until Reset.
func (e *Engine) Move(dir Direction) (bool, error) {
	switch dir {
	case DirLeft, DirRight, DirUp, DirDown:
	default:
		return false, ErrInvalidDirection
	}

	if e.status != StatusInProgress {
		return false, nil
	}

	moved := false
	for i := 0; i < e.size; i++ {
		line := e.readLine(dir, i)
		merged, gained := mergeLine(line)
		if e.writeLine(dir, i, merged) {
			moved = true
		}
		e.score += gained
	}

	if !moved {
		return false, nil
	}

	e.spawnTile()
	e.status = e.classify()
	return true, nil
}

// mergeLine compacts a line read from its source end: non-zero values keep
// their order, equal adjacent pairs collapse into their sum exactly once
// (a merged tile never merges again within the same move), and zeros pad
// the far end. Returns the new line and the score gained.
func mergeLine(line []int) ([]int, int) {
	out := make([]int, 0, len(line))
	gained := 0

	vals := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			vals = append(vals, v)
		}
	}

	for i := 0; i < len(vals); i++ {
		if i+1 < len(vals) && vals[i] == vals[i+1] {
			out = append(out, vals[i]*2)
			gained += vals[i] * 2
			i++ // skip the partner; no cascading
		} else {
			out = append(out, vals[i])
		}
	}

	for len(out) < len(line) {
		out = append(out, 0)
	}
	return out, gained
}

// readLine extracts line i in source order: rows left-to-right for DirLeft,
// right-to-left for DirRight, columns top-to-bottom for DirUp, bottom-to-top
// for DirDown.
func (e *Engine) readLine(dir Direction, i int) []int {
	line := make([]int, e.size)
	for j := 0; j < e.size; j++ {
		row, col := e.cellAt(dir, i, j)
		line[j] = e.grid[row][col]
	}
	return line
}

// writeLine stores a processed line back in the same orientation readLine
// used, reporting whether any cell changed.
func (e *Engine) writeLine(dir Direction, i int, line []int) bool {
	changed := false
	for j := 0; j < e.size; j++ {
		row, col := e.cellAt(dir, i, j)
		if e.grid[row][col] != line[j] {
			e.grid[row][col] = line[j]
			changed = true
		}
	}
	return changed
}

// cellAt maps (line index, offset from source end) to grid coordinates.
func (e *Engine) cellAt(dir Direction, i, j int) (row, col int) {
	switch dir {
	case DirLeft:
		return i, j
	case DirRight:
		return i, e.size - 1 - j
	case DirUp:
		return j, i
	default: // DirDown
		return e.size - 1 - j, i
	}
}

// spawnTile places a 2 (or, with probability fourProb, a 4) on a uniformly
// chosen empty cell. No-op on a full grid.
func (e *Engine) spawnTile() {
	empty := e.emptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.fourProb {
		value = 4
	}
	e.grid[cell[0]][cell[1]] = value
}

// emptyCells returns the coordinates of all empty cells in row-major order.
func (e *Engine) emptyCells() [][2]int {
	var cells [][2]int
	for row := 0; row < e.size; row++ {
		for col := 0; col < e.size; col++ {
			if e.grid[row][col] == 0 {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

// classify runs terminal detection after an effective move: won if any cell
// reached the target, lost if the grid is full with no equal orthogonal
// neighbors, otherwise still in progress.
func (e *Engine) classify() Status {
	for row := 0; row < e.size; row++ {
		for col := 0; col < e.size; col++ {
			if e.grid[row][col] >= e.target {
				return StatusWon
			}
		}
	}

	for row := 0; row < e.size; row++ {
		for col := 0; col < e.size; col++ {
			val := e.grid[row][col]
			if val == 0 {
				return StatusInProgress
			}
			if col < e.size-1 && e.grid[row][col+1] == val {
				return StatusInProgress
			}
			if row < e.size-1 && e.grid[row+1][col] == val {
				return StatusInProgress
			}
		}
	}
	return StatusLost
}

// Grid returns a deep copy of the board. Mutating it never affects the
// engine's internal state.
func (e *Engine) Grid() [][]int {
	grid := make([][]int, e.size)
	for row := range grid {
		grid[row] = make([]int, e.size)
		copy(grid[row], e.grid[row])
	}
	return grid
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the three-way game classification.
func (e *Engine) Status() Status {
	return e.status
}

// Won reports whether the win target has been reached.
func (e *Engine) Won() bool {
	return e.status == StatusWon
}

// GameOver reports whether no further moves are possible.
func (e *Engine) GameOver() bool {
	return e.status == StatusLost
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// WinTarget returns the tile value that wins the game.
func (e *Engine) WinTarget() int {
	return e.target
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	maxVal := 0
	for row := 0; row < e.size; row++ {
		for col := 0; col < e.size; col++ {
			if e.grid[row][col] > maxVal {
				maxVal = e.grid[row][col]
			}
		}
	}
	return maxVal
}
