package t2048

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidDirection is returned by ParseDirection for unknown input.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirRight, DirDown, DirLeft}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts user input into a Direction.
// Accepts full names, WASD letters and vim keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "k":
		return DirUp, nil
	case "right", "d", "l":
		return DirRight, nil
	case "down", "s", "j":
		return DirDown, nil
	case "left", "a", "h":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Vector is a signed unit step.
type Vector struct {
	X int
	Y int
}

// Vector returns the unit step for d. Invalid directions map to the zero vector.
func (d Direction) Vector() Vector {
	switch d {
	case DirUp:
		return Vector{X: 0, Y: -1}
	case DirRight:
		return Vector{X: 1, Y: 0}
	case DirDown:
		return Vector{X: 0, Y: 1}
	case DirLeft:
		return Vector{X: -1, Y: 0}
	default:
		return Vector{}
	}
}

// Traversals is the order in which cells are visited during a move.
type Traversals struct {
	X []int
	Y []int
}

// buildTraversals orders cells so the ones nearest the destination edge
// are resolved first.
func buildTraversals(size int, v Vector) Traversals {
	t := Traversals{
		X: make([]int, size),
		Y: make([]int, size),
	}
	for pos := range size {
		t.X[pos] = pos
		t.Y[pos] = pos
	}

	if v.X == 1 {
		slices.Reverse(t.X)
	}
	if v.Y == 1 {
		slices.Reverse(t.Y)
	}
	return t
}

// findFarthestPosition walks from cell along v while the next cell is
// free. farthest is the last free cell reached (cell itself when blocked
// immediately); next is the first blocking cell, possibly out of bounds.
func findFarthestPosition(g *Grid, cell Position, v Vector) (farthest, next Position) {
	for {
		farthest = cell
		cell = farthest.Add(v)
		if !g.CellAvailable(cell) {
			return farthest, cell
		}
	}
}

// tileMatchesAvailable reports whether any two orthogonally adjacent tiles
// share a value.
func tileMatchesAvailable(g *Grid) bool {
	for x := range g.Size() {
		for y := range g.Size() {
			tile := g.CellContent(Pos(x, y))
			if tile == nil {
				continue
			}
			for _, dir := range Directions {
				other := g.CellContent(Pos(x, y).Add(dir.Vector()))
				if other != nil && other.Value == tile.Value {
					return true
				}
			}
		}
	}
	return false
}

// movesAvailable reports whether any move can still change the board.
func movesAvailable(g *Grid) bool {
	return g.CellsAvailable() || tileMatchesAvailable(g)
}
