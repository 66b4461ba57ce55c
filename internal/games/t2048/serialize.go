package t2048

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a persisted game cannot be rebuilt.
var ErrInvalidState = errors.New("t2048: invalid saved game")

// maxBoardSize bounds the size accepted from persisted state.
const maxBoardSize = 16

// TileInfo is the persisted form of a tile.
type TileInfo struct {
	Position Position `json:"position"`
	Value    int      `json:"value"`
}

// GridInfo is the persisted form of a grid. Cells are indexed [x][y].
type GridInfo struct {
	Size  int           `json:"size"`
	Cells [][]*TileInfo `json:"cells"`
}

// GameInfo is the persisted form of a whole game.
type GameInfo struct {
	Grid        GridInfo `json:"grid"`
	Score       int      `json:"score"`
	Over        bool     `json:"over"`
	Won         bool     `json:"won"`
	KeepPlaying bool     `json:"keepPlaying"`
}

// ValidateGameInfo checks that a persisted game describes a structurally
// valid board. A zero tile value is accepted and rehydrates as 2.
func ValidateGameInfo(info GameInfo) error {
	if err := validateGridInfo(info.Grid); err != nil {
		return err
	}
	if info.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, info.Score)
	}
	return nil
}

func validateGridInfo(g GridInfo) error {
	if g.Size < 1 || g.Size > maxBoardSize {
		return fmt.Errorf("%w: grid size %d out of range", ErrInvalidState, g.Size)
	}
	if len(g.Cells) != g.Size {
		return fmt.Errorf("%w: %d columns for size %d", ErrInvalidState, len(g.Cells), g.Size)
	}
	for x, column := range g.Cells {
		if len(column) != g.Size {
			return fmt.Errorf("%w: column %d has %d cells", ErrInvalidState, x, len(column))
		}
		for y, tile := range column {
			if tile == nil {
				continue
			}
			if tile.Position != Pos(x, y) {
				return fmt.Errorf("%w: tile at cell (%d,%d) claims position %s",
					ErrInvalidState, x, y, tile.Position)
			}
			if tile.Value != 0 && !isPowerOfTwo(tile.Value) {
				return fmt.Errorf("%w: tile at %s has value %d", ErrInvalidState, tile.Position, tile.Value)
			}
		}
	}
	return nil
}

// isPowerOfTwo reports whether v is 2, 4, 8, ...
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
