package t2048

import "fmt"

// Position is a zero-based board coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is a convenience constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position offset by a vector.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// TileID identifies a tile within one game session.
type TileID uint64

// MergeSource describes one of the two tiles consumed by a merge.
type MergeSource struct {
	ID    TileID
	From  Position // cell the source occupied before the move
	Value int
}

// MergeSources is the provenance of a merged tile. It only lives for the
// move that created the tile and is dropped when the next move starts.
type MergeSources struct {
	Sources [2]MergeSource
}

// Positions returns the pre-move cells of both sources.
func (m *MergeSources) Positions() []Position {
	if m == nil {
		return nil
	}
	return []Position{m.Sources[0].From, m.Sources[1].From}
}

// Tile is one numbered piece on the board.
type Tile struct {
	ID    TileID
	X     int
	Y     int
	Value int

	PreviousPosition *Position
	MergedFrom       *MergeSources
}

// NewTile creates a tile at pos. A non-positive value falls back to 2.
func NewTile(id TileID, pos Position, value int) *Tile {
	if value <= 0 {
		value = 2
	}
	return &Tile{
		ID:    id,
		X:     pos.X,
		Y:     pos.Y,
		Value: value,
	}
}

// Position returns the tile's current cell.
func (t *Tile) Position() Position {
	return Position{X: t.X, Y: t.Y}
}

// SavePosition records the current cell so renderers can animate from it.
func (t *Tile) SavePosition() {
	p := t.Position()
	t.PreviousPosition = &p
}

// UpdatePosition moves the tile's coordinates. It does not touch the grid.
func (t *Tile) UpdatePosition(pos Position) {
	t.X = pos.X
	t.Y = pos.Y
}

// Serialize returns a persistence snapshot of the tile.
func (t *Tile) Serialize() TileInfo {
	return TileInfo{
		Position: t.Position(),
		Value:    t.Value,
	}
}

// source describes t as the origin of a merge.
func (t *Tile) source() MergeSource {
	from := t.Position()
	if t.PreviousPosition != nil {
		from = *t.PreviousPosition
	}
	return MergeSource{ID: t.ID, From: from, Value: t.Value}
}
