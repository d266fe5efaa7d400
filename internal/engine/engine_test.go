package engine

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedSource replays fixed values so spawn position and value are
// controlled exactly.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5 // below nothing: spawns a 2 at the default probability
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func countNonZero(grid [][]int) int {
	n := 0
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}, wantErr: false},
		{name: "minimum size", cfg: Config{Size: 2}, wantErr: false},
		{name: "size too small", cfg: Config{Size: 1}, wantErr: true},
		{name: "negative size", cfg: Config{Size: -4}, wantErr: true},
		{name: "negative target", cfg: Config{WinTarget: -2048}, wantErr: true},
		{name: "probability above one", cfg: Config{FourProb: 1.5}, wantErr: true},
		{name: "custom board", cfg: Config{Size: 5, WinTarget: 4096}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Rand = rand.New(rand.NewSource(7))
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}

func TestInitialTileCount(t *testing.T) {
	for _, size := range []int{2, 3, 4, 6} {
		e := newTestEngine(t, Config{Size: size})

		grid := e.Grid()
		if len(grid) != size {
			t.Fatalf("size %d: Grid() has %d rows", size, len(grid))
		}
		for _, row := range grid {
			if len(row) != size {
				t.Fatalf("size %d: Grid() row has %d cells", size, len(row))
			}
		}
		if n := countNonZero(grid); n != 2 {
			t.Errorf("size %d: %d non-zero cells after init, want 2", size, n)
		}
		if e.Score() != 0 {
			t.Errorf("size %d: initial score = %d, want 0", size, e.Score())
		}
		if e.Status() != StatusInProgress {
			t.Errorf("size %d: initial status = %v", size, e.Status())
		}
	}
}

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		want   []int
		gained int
	}{
		{name: "simple merge", input: []int{2, 2, 0, 0}, want: []int{4, 0, 0, 0}, gained: 4},
		{name: "merge with trailing tile", input: []int{2, 2, 2, 0}, want: []int{4, 2, 0, 0}, gained: 4},
		{name: "no cascade on four equal", input: []int{2, 2, 2, 2}, want: []int{4, 4, 0, 0}, gained: 8},
		{name: "two distinct pairs", input: []int{2, 2, 4, 4}, want: []int{4, 8, 0, 0}, gained: 12},
		{name: "merge across gap", input: []int{0, 2, 0, 2}, want: []int{4, 0, 0, 0}, gained: 4},
		{name: "no merge possible", input: []int{2, 4, 2, 4}, want: []int{2, 4, 2, 4}, gained: 0},
		{name: "already compact", input: []int{4, 2, 0, 0}, want: []int{4, 2, 0, 0}, gained: 0},
		{name: "empty line", input: []int{0, 0, 0, 0}, want: []int{0, 0, 0, 0}, gained: 0},
		{name: "single tile slides", input: []int{0, 0, 8, 0}, want: []int{8, 0, 0, 0}, gained: 0},
		{name: "merged tile does not re-merge", input: []int{4, 2, 2, 0}, want: []int{4, 4, 0, 0}, gained: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained := mergeLine(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("mergeLine(%v) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("mergeLine(%v) = %v, want %v", tt.input, got, tt.want)
					break
				}
			}
			if gained != tt.gained {
				t.Errorf("mergeLine(%v) gained = %d, want %d", tt.input, gained, tt.gained)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		grid [][]int
		want [][]int
	}{
		{
			name: "left",
			dir:  DirLeft,
			grid: [][]int{
				{0, 2, 0, 2},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			want: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right mirrors left",
			dir:  DirRight,
			grid: [][]int{
				{2, 0, 2, 0},
				{0, 4, 0, 4},
				{2, 2, 2, 2},
				{2, 0, 0, 0},
			},
			want: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			grid: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			want: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			grid: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			want: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Spawn onto whatever cell is free; the spawned 2 lands on the
			// first empty cell so expected cells below account for it.
			e := newTestEngine(t, Config{Rand: &scriptedSource{}})
			e.grid = tt.grid

			moved, err := e.Move(tt.dir)
			if err != nil {
				t.Fatalf("Move(%v) error: %v", tt.dir, err)
			}
			if !moved {
				t.Fatalf("Move(%v) = false, want true", tt.dir)
			}

			// The scripted source spawns a 2 on the first empty cell of the
			// post-slide grid; mask it out before comparing.
			got := e.Grid()
			spawned := false
			for row := range got {
				for col := range got[row] {
					if tt.want[row][col] == 0 && got[row][col] == 2 && !spawned {
						got[row][col] = 0
						spawned = true
					}
				}
			}
			if !spawned {
				t.Fatalf("Move(%v): no tile spawned after effective move", tt.dir)
			}
			for row := range got {
				for col := range got[row] {
					if got[row][col] != tt.want[row][col] {
						t.Fatalf("Move(%v) grid = %v, want %v (+1 spawn)", tt.dir, e.Grid(), tt.want)
					}
				}
			}
		})
	}
}

func TestMoveScoring(t *testing.T) {
	e := newTestEngine(t, Config{Rand: &scriptedSource{}})
	e.grid = [][]int{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e.score = 100

	moved, err := e.Move(DirLeft)
	if err != nil || !moved {
		t.Fatalf("Move(left) = %v, %v", moved, err)
	}
	if e.Score() != 112 {
		t.Errorf("score = %d, want 112 (100 + 4 + 8)", e.Score())
	}
}

func TestNoOpMove(t *testing.T) {
	e := newTestEngine(t, Config{Rand: &scriptedSource{}})
	e.grid = [][]int{
		{2, 4, 2, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e.score = 8

	moved, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move(left) error: %v", err)
	}
	if moved {
		t.Fatal("Move(left) = true for an already-compact row, want false")
	}
	if n := countNonZero(e.Grid()); n != 4 {
		t.Errorf("no-op move spawned a tile: %d non-zero cells, want 4", n)
	}
	if e.Score() != 8 {
		t.Errorf("no-op move changed score: %d, want 8", e.Score())
	}
	if e.Status() != StatusInProgress {
		t.Errorf("no-op move changed status: %v", e.Status())
	}
}

func TestInvalidDirection(t *testing.T) {
	e := newTestEngine(t, Config{})
	before := e.Grid()

	moved, err := e.Move(Direction(42))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Move(42) error = %v, want ErrInvalidDirection", err)
	}
	if moved {
		t.Error("Move(42) reported an effective move")
	}

	after := e.Grid()
	for row := range before {
		for col := range before[row] {
			if before[row][col] != after[row][col] {
				t.Fatal("invalid direction mutated the grid")
			}
		}
	}
}

func TestWinDetection(t *testing.T) {
	e := newTestEngine(t, Config{Rand: &scriptedSource{}})
	e.grid = [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	moved, err := e.Move(DirLeft)
	if err != nil || !moved {
		t.Fatalf("Move(left) = %v, %v", moved, err)
	}
	if e.Status() != StatusWon {
		t.Errorf("status = %v after reaching 2048, want won", e.Status())
	}
	if !e.Won() {
		t.Error("Won() = false after reaching the target")
	}
	if e.GameOver() {
		t.Error("GameOver() = true for a won game")
	}
}

func TestCustomWinTarget(t *testing.T) {
	e := newTestEngine(t, Config{Size: 3, WinTarget: 64, Rand: &scriptedSource{}})
	e.grid = [][]int{
		{32, 32, 0},
		{0, 0, 0},
		{0, 0, 0},
	}

	if _, err := e.Move(DirLeft); err != nil {
		t.Fatalf("Move(left) error: %v", err)
	}
	if e.Status() != StatusWon {
		t.Errorf("status = %v after reaching custom target 64, want won", e.Status())
	}
}

func TestLossDetection(t *testing.T) {
	// Top row slides left without merging; the spawned 2 fills the freed
	// cell (0,3), whose neighbors are 4 and 8, leaving a full board with
	// no equal orthogonal pair anywhere.
	e := newTestEngine(t, Config{Rand: &scriptedSource{}})
	e.grid = [][]int{
		{0, 8, 2, 4},
		{4, 8, 2, 8},
		{8, 4, 8, 4},
		{2, 8, 4, 2},
	}

	moved, err := e.Move(DirLeft)
	if err != nil || !moved {
		t.Fatalf("Move(left) = %v, %v", moved, err)
	}
	if e.Status() != StatusLost {
		t.Errorf("status = %v for a dead board, want lost\ngrid: %v", e.Status(), e.Grid())
	}
	if !e.GameOver() {
		t.Error("GameOver() = false for a lost game")
	}
}

func TestFullBoardWithMergeIsNotLost(t *testing.T) {
	e := newTestEngine(t, Config{Rand: &scriptedSource{}})
	// After sliding up, column 0 merges and a 2 spawns in the freed cell,
	// leaving the board full but with adjacent equal pairs still present.
	e.grid = [][]int{
		{2, 8, 4, 8},
		{2, 16, 8, 4},
		{8, 4, 16, 2},
		{4, 2, 4, 8},
	}

	moved, err := e.Move(DirUp)
	if err != nil || !moved {
		t.Fatalf("Move(up) = %v, %v", moved, err)
	}
	if countNonZero(e.Grid()) != 16 {
		t.Fatalf("expected full board after spawn, grid: %v", e.Grid())
	}
	if e.Status() != StatusInProgress {
		t.Errorf("status = %v for a full board with a mergeable pair, want in_progress", e.Status())
	}
}

func TestPostTerminalImmutability(t *testing.T) {
	for _, status := range []Status{StatusWon, StatusLost} {
		e := newTestEngine(t, Config{Rand: &scriptedSource{}})
		e.grid = [][]int{
			{2, 0, 2, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}
		e.status = status
		e.score = 40
		before := e.Grid()

		for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
			moved, err := e.Move(dir)
			if err != nil {
				t.Fatalf("status %v: Move(%v) error: %v", status, dir, err)
			}
			if moved {
				t.Errorf("status %v: Move(%v) = true, want false", status, dir)
			}
		}

		after := e.Grid()
		for row := range before {
			for col := range before[row] {
				if before[row][col] != after[row][col] {
					t.Fatalf("status %v: terminal move mutated the grid", status)
				}
			}
		}
		if e.Score() != 40 {
			t.Errorf("status %v: terminal move changed score to %d", status, e.Score())
		}
	}
}

func TestResetFromTerminal(t *testing.T) {
	e := newTestEngine(t, Config{})
	e.status = StatusLost
	e.score = 999

	e.Reset()

	if e.Status() != StatusInProgress {
		t.Errorf("status after Reset = %v, want in_progress", e.Status())
	}
	if e.Score() != 0 {
		t.Errorf("score after Reset = %d, want 0", e.Score())
	}
	if n := countNonZero(e.Grid()); n != 2 {
		t.Errorf("%d non-zero cells after Reset, want 2", n)
	}
}

func TestGridDefensiveCopy(t *testing.T) {
	e := newTestEngine(t, Config{})

	grid := e.Grid()
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = 65536
		}
	}

	for _, row := range e.Grid() {
		for _, v := range row {
			if v == 65536 {
				t.Fatal("mutating Grid() result corrupted engine state")
			}
		}
	}
}

func TestSpawnBias(t *testing.T) {
	// Float64 below FourProb spawns a 4, at or above spawns a 2.
	e := newTestEngine(t, Config{})
	e.rng = &scriptedSource{ints: []int{0, 0}, floats: []float64{0.5, 0.05}}
	e.grid = make([][]int, 4)
	for row := range e.grid {
		e.grid[row] = make([]int, 4)
	}

	e.spawnTile()
	if e.grid[0][0] != 2 {
		t.Errorf("spawn with Float64=0.5 placed %d, want 2", e.grid[0][0])
	}

	e.grid[0][0] = 0
	e.spawnTile()
	if e.grid[0][0] != 4 {
		t.Errorf("spawn with Float64=0.05 placed %d, want 4", e.grid[0][0])
	}
}

func TestDeterministicSequence(t *testing.T) {
	run := func() ([][]int, int) {
		e := newTestEngine(t, Config{Rand: rand.New(rand.NewSource(12345))})
		dirs := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirDown}
		for _, d := range dirs {
			if _, err := e.Move(d); err != nil {
				t.Fatalf("Move(%v) error: %v", d, err)
			}
		}
		return e.Grid(), e.Score()
	}

	grid1, score1 := run()
	grid2, score2 := run()

	if score1 != score2 {
		t.Errorf("same seed produced different scores: %d vs %d", score1, score2)
	}
	for row := range grid1 {
		for col := range grid1[row] {
			if grid1[row][col] != grid2[row][col] {
				t.Fatalf("same seed produced different grids:\n%v\nvs\n%v", grid1, grid2)
			}
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	e := newTestEngine(t, Config{Rand: rand.New(rand.NewSource(99))})

	prev := e.Score()
	dirs := []Direction{DirLeft, DirRight, DirUp, DirDown}
	for i := 0; i < 200 && e.Status() == StatusInProgress; i++ {
		if _, err := e.Move(dirs[i%len(dirs)]); err != nil {
			t.Fatalf("Move error: %v", err)
		}
		if e.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, e.Score())
		}
		prev = e.Score()
	}
}
