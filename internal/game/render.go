package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.eng.Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score, and target info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(boardX, 1, scoreStr)

	infoStr := fmt.Sprintf("Target: %d  Max: %d", g.eng.WinTarget(), g.eng.MaxTile())
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	variantX := boardX + (boardW-len(g.variant.Title))/2
	dst.DrawText(variantX, 2, g.variant.Title)
}

// renderBoard draws the grid with tiles colored by value.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.eng.Size()
	grid := g.eng.Grid()

	// Grid borders
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, core.TileColor(val))
		}
	}
}

// renderOverlays draws pause/win/game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch g.eng.Status() {
	case engine.StatusWon:
		targetStr := fmt.Sprintf("You reached %d!", g.eng.WinTarget())
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", targetStr, "Press R to play again")
	case engine.StatusLost:
		maxStr := fmt.Sprintf("Max tile: %d", g.eng.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to play again")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
