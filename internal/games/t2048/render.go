package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell (including the left border)
	cellHeight   = 2 // Height of each cell (including the top border)
	hudHeight    = 3
	footerHeight = 1
)

func boardWidth(size int) int  { return size*cellWidth + 1 }
func boardHeight(size int) int { return size*cellHeight + 1 }

// tileColors cycles through the palette as values double.
var tileColors = []core.Color{
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
	core.ColorMagenta,
	core.ColorBrightBlue,
	core.ColorBlue,
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	idx := int(math.Log2(float64(value))) - 1
	return tileColors[idx%len(tileColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if !g.hasView {
		return
	}

	size := g.view.Size
	boardW := boardWidth(size)
	boardH := boardHeight(size)

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score with the last addition, and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.view.Score)
	dst.DrawText(boardX, 1, scoreStr)
	if g.additionTicks > 0 && g.scoreAddition > 0 {
		dst.DrawTextColored(boardX+len(scoreStr)+1, 1, fmt.Sprintf("+%d", g.scoreAddition), core.ColorBrightGreen)
	}

	bestStr := fmt.Sprintf("Best: %d", g.view.BestScore)
	bestX := core.Clamp(boardX+boardW-len(bestStr), boardX, g.screenW-len(bestStr))
	dst.DrawText(bestX, 1, bestStr)

	if g.mgr != nil && g.mgr.KeepPlayingEnabled() {
		dst.DrawTextColored(boardX+(boardW-len("Endless"))/2, 2, "Endless", core.ColorGray)
	}
}

// renderBoard draws the grid and its tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.view.Size

	for y := range size + 1 {
		for x := range size + 1 {
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
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for _, t := range g.view.Tiles() {
		if g.anim.isHidden(t.Position) {
			continue
		}
		color := TileColor(t.Value)
		if pop, ok := g.anim.popAt(t.Position); ok && pop.Progress < 1 {
			color = core.ColorBrightWhite
		}
		drawTile(dst, boardX, boardY, float64(t.Position.X), float64(t.Position.Y), t.Value, color)
	}

	if g.anim.phase == PhaseSlide {
		for i := range g.anim.slides {
			s := &g.anim.slides[i]
			fx, fy := s.interpolatePosition()
			drawTile(dst, boardX, boardY, fx, fy, s.Value, TileColor(s.Value))
		}
	}
}

// drawTile centers a value inside the cell at fractional board coordinates.
func drawTile(dst *core.Screen, boardX, boardY int, fx, fy float64, value int, color core.Color) {
	cellX := boardX + int(math.Round(fx*cellWidth)) + 1
	cellY := boardY + int(math.Round(fy*cellHeight)) + 1

	valStr := strconv.Itoa(value)
	padLeft := max((cellWidth-1-len(valStr))/2, 0)

	dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
}

// renderOverlays draws the win and game-over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch g.message {
	case messageWon:
		drawOverlay(dst, board, core.ColorBrightYellow,
			"You win!", "C: keep going", "R: new game")
	case messageOver:
		drawOverlay(dst, board, core.ColorBrightRed,
			"Game over!", fmt.Sprintf("Score: %d", g.view.Score), "R: try again")
	}
}

// drawOverlay draws a boxed text overlay centered on area. The first line
// is the headline.
func drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	centerX, _ := box.Center()

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
