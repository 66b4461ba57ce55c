package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

// boardCellWidth fits a five-digit tile with padding.
const boardCellWidth = 7

// renderBoard draws a grid as a bordered table, one colored cell per tile.
func renderBoard(g *t2048.Grid) string {
	rows := g.Rows()
	text := make([][]string, len(rows))
	for y, row := range rows {
		text[y] = make([]string, len(row))
		for x, v := range row {
			if v != 0 {
				text[y][x] = strconv.Itoa(v)
			}
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Rows(text...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(boardCellWidth).Align(lipgloss.Center)
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return style
			}
			if v := rows[row][col]; v != 0 {
				style = style.Inherit(tui.ColorStyle(t2048.TileColor(v))).Bold(true)
			}
			return style
		}).
		Render()
}

// printGame writes the board and the game status.
func printGame(w io.Writer, m *t2048.Manager) {
	fmt.Fprintln(w, renderBoard(m.Grid()))
	fmt.Fprintf(w, "Score: %d  Best: %d\n", m.Score(), m.BestScore())

	switch {
	case m.Over():
		fmt.Fprintln(w, "Game over!")
	case m.Won() && !m.KeepPlayingEnabled():
		fmt.Fprintf(w, "You win! Run 'tui2048 move --keep-playing' to continue past %d.\n", m.WinValue())
	case m.KeepPlayingEnabled():
		fmt.Fprintln(w, "Endless mode")
	}
}
