package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is the N×N board. Cells are stored densely, index = x*size + y,
// and every stored tile sits at the index of its own (X, Y).
// The grid is the only writer of cell contents.
type Grid struct {
	size   int
	cells  []*Tile
	nextID TileID
}

// NewGrid creates an empty grid of the given size.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]*Tile, size*size),
	}
}

// NewGridFromState rebuilds a grid from its persisted form.
// The state is validated first; rehydrated tiles carry no previous
// position or merge provenance.
func NewGridFromState(state GridInfo) (*Grid, error) {
	if err := validateGridInfo(state); err != nil {
		return nil, err
	}

	g := NewGrid(state.Size)
	for x, column := range state.Cells {
		for y, info := range column {
			if info == nil {
				continue
			}
			g.InsertTile(g.CreateTile(Pos(x, y), info.Value))
		}
	}
	return g, nil
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) index(pos Position) int {
	return pos.X*g.size + pos.Y
}

// CreateTile allocates a tile with a fresh ID. It is not placed on the grid.
func (g *Grid) CreateTile(pos Position, value int) *Tile {
	g.nextID++
	return NewTile(g.nextID, pos, value)
}

// WithinBounds returns true if both coordinates lie in [0, size).
func (g *Grid) WithinBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.size && pos.Y >= 0 && pos.Y < g.size
}

// CellContent returns the tile at pos, or nil when the cell is empty or
// out of bounds.
func (g *Grid) CellContent(pos Position) *Tile {
	if !g.WithinBounds(pos) {
		return nil
	}
	return g.cells[g.index(pos)]
}

// CellOccupied returns true if a tile sits at pos.
func (g *Grid) CellOccupied(pos Position) bool {
	return g.CellContent(pos) != nil
}

// CellAvailable returns true if pos is on the board and empty.
// Out-of-bounds positions are never available.
func (g *Grid) CellAvailable(pos Position) bool {
	return g.WithinBounds(pos) && !g.CellOccupied(pos)
}

// EachCell calls fn for every cell, x ascending outer, y ascending inner.
func (g *Grid) EachCell(fn func(pos Position, tile *Tile)) {
	for x := range g.size {
		for y := range g.size {
			pos := Pos(x, y)
			fn(pos, g.cells[g.index(pos)])
		}
	}
}

// AvailableCells returns every empty cell in EachCell order.
func (g *Grid) AvailableCells() []Position {
	var cells []Position
	g.EachCell(func(pos Position, tile *Tile) {
		if tile == nil {
			cells = append(cells, pos)
		}
	})
	return cells
}

// CellsAvailable returns true if at least one cell is empty.
func (g *Grid) CellsAvailable() bool {
	for _, t := range g.cells {
		if t == nil {
			return true
		}
	}
	return false
}

// RandomAvailableCell picks a uniformly random empty cell.
// ok is false when the board is full.
func (g *Grid) RandomAvailableCell(rng RandSource) (pos Position, ok bool) {
	cells := g.AvailableCells()
	if len(cells) == 0 {
		return Position{}, false
	}
	return cells[rng.Intn(len(cells))], true
}

// InsertTile places t at its own coordinates, replacing any occupant.
// The caller guarantees the coordinates are in bounds.
func (g *Grid) InsertTile(t *Tile) {
	g.cells[g.index(t.Position())] = t
}

// RemoveTile clears the cell at t's coordinates.
func (g *Grid) RemoveTile(t *Tile) {
	g.cells[g.index(t.Position())] = nil
}

// MoveTile relocates t to pos, keeping the grid and the tile in sync.
func (g *Grid) MoveTile(t *Tile, pos Position) {
	g.cells[g.index(t.Position())] = nil
	g.cells[g.index(pos)] = t
	t.UpdatePosition(pos)
}

// Tiles returns every tile on the board in EachCell order.
func (g *Grid) Tiles() []*Tile {
	var tiles []*Tile
	g.EachCell(func(_ Position, tile *Tile) {
		if tile != nil {
			tiles = append(tiles, tile)
		}
	})
	return tiles
}

// MaxTile returns the highest tile value on the board, or 0 when empty.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, t := range g.cells {
		if t != nil && t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Serialize returns the persisted form of the grid.
func (g *Grid) Serialize() GridInfo {
	cells := make([][]*TileInfo, g.size)
	for x := range g.size {
		cells[x] = make([]*TileInfo, g.size)
		for y := range g.size {
			if t := g.cells[g.index(Pos(x, y))]; t != nil {
				info := t.Serialize()
				cells[x][y] = &info
			}
		}
	}
	return GridInfo{
		Size:  g.size,
		Cells: cells,
	}
}

// Rows returns tile values row by row (Rows()[y][x]), 0 for empty cells.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for y := range g.size {
		rows[y] = make([]int, g.size)
	}
	g.EachCell(func(pos Position, tile *Tile) {
		if tile != nil {
			rows[pos.Y][pos.X] = tile.Value
		}
	})
	return rows
}

// String renders the board as plain text, one row per line, with empty
// cells shown as dots.
func (g *Grid) String() string {
	width := max(len(strconv.Itoa(g.MaxTile())), 1)

	var sb strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v > 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
	}
	return sb.String()
}
