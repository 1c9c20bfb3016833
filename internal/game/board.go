package game

import "github.com/katmatt/ishido/internal/core"

// anchorCoords are the six cells pre-filled with stones at game start:
// the four board corners plus the two near-center cells.
var anchorCoords = [6]core.Coord{
	{X: 0, Y: 0},
	{X: BoardWidth - 1, Y: 0},
	{X: 0, Y: BoardHeight - 1},
	{X: BoardWidth - 1, Y: BoardHeight - 1},
	{X: 6, Y: 4},
	{X: 5, Y: 3},
}

// Board is the fixed 12×8 grid of tiles plus the currently drawn stone.
// Tiles are stored in row-major order: index = y*BoardWidth + x.
// Backgrounds hold cosmetic per-cell variant indices with no rule effect.
type Board struct {
	tiles       []Tile
	backgrounds []int
	next        Tile // Empty when the deck is exhausted
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c core.Coord) int {
	return c.Y*BoardWidth + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < BoardWidth && c.Y >= 0 && c.Y < BoardHeight
}

// Tile returns the tile at the given coordinate.
// Returns an empty tile if out of bounds.
func (b *Board) Tile(c core.Coord) Tile {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.tiles[b.index(c)]
}

// setTile places a tile at the given coordinate.
func (b *Board) setTile(c core.Coord, t Tile) {
	if b.InBounds(c) {
		b.tiles[b.index(c)] = t
	}
}

// Background returns the cosmetic background index for the given cell.
func (b *Board) Background(c core.Coord) int {
	if !b.InBounds(c) {
		return 0
	}
	return b.backgrounds[b.index(c)]
}

// Next returns the stone currently available to place, if any.
func (b *Board) Next() (Stone, bool) {
	return b.next.Stone, b.next.Occupied
}

// Interior returns true if the cell is not on the outer ring of the grid.
// Only interior placements award per-move score. The distinction is derived
// from the coordinates on demand, never stored.
func Interior(c core.Coord) bool {
	return c.X > 0 && c.X < BoardWidth-1 && c.Y > 0 && c.Y < BoardHeight-1
}

// IsAnchor returns true if the coordinate is one of the six anchor cells.
func IsAnchor(c core.Coord) bool {
	for _, a := range anchorCoords {
		if a.Equal(c) {
			return true
		}
	}
	return false
}

// FilledCount returns the number of occupied cells on the board.
func (b *Board) FilledCount() int {
	count := 0
	for _, t := range b.tiles {
		if t.Occupied {
			count++
		}
	}
	return count
}
