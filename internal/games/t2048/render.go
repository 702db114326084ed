package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	footerRows = 2
)

// layoutSize returns the minimum screen size needed to draw the board.
func (g *Game) layoutSize() (w, h int) {
	height, width := g.size()
	boardW := width*cellWidth + 1
	boardH := height*cellHeight + 1
	return max(boardW, 30), hudHeight + boardH + footerRows
}

// tileColor picks a color by tile value so larger tiles stand out.
func tileColor(v int) core.Color {
	switch {
	case v <= 2:
		return core.ColorWhite
	case v <= 4:
		return core.ColorCyan
	case v <= 8:
		return core.ColorGreen
	case v <= 16:
		return core.ColorYellow
	case v <= 64:
		return core.ColorOrange
	case v <= 512:
		return core.ColorRed
	default:
		return core.ColorMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	height, width := g.size()
	boardW := width*cellWidth + 1
	boardH := height*cellHeight + 1
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFooter(dst, board)

	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title, move counter and largest tile.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.Title()
	dst.DrawText(board.X+(board.W-len(title))/2, 0, title)

	dst.DrawText(board.X, 1, fmt.Sprintf("Moves: %d", g.moves))

	info := fmt.Sprintf("Max: %d", g.board.grid.MaxTile())
	dst.DrawText(board.Right()-len(info), 1, info)

	if g.hasLastMove {
		last := "Last: " + g.lastMove.String()
		dst.DrawText(board.X+(board.W-len(last))/2, 2, last)
	}
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	height, width := g.size()

	for y := range height + 1 {
		for x := range width + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == width:
				corner = '┐'
			case y == height && x == 0:
				corner = '└'
			case y == height && x == width:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == height:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == width:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < width {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < height {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range height {
		for col := range width {
			val := g.board.GetTile(row, col)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max(0, (cellWidth-1-len(valStr))/2)
			cellX := board.X + col*cellWidth + 1
			cellY := board.Y + row*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderFooter draws the empty-cell count and any board notice.
func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	empty := g.board.CountEmptyTiles()
	dst.DrawText(board.X, y, fmt.Sprintf("Empty: %d", empty))

	switch {
	case g.lastErr != nil:
		dst.DrawTextColored(board.X, y+1, g.lastErr.Error(), core.ColorRed)
	case empty == 0:
		dst.DrawTextColored(board.X, y+1, "Board full - R to restart", core.ColorGray)
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}
