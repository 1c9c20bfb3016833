// Package game implements the Ishido tile-matching rules: deck and board
// generation, neighbor-match classification, valid-move derivation, scoring,
// and the play/game-over session state machine.
package game

// Board and deck dimensions.
const (
	BoardWidth  = 12
	BoardHeight = 8

	NumColors  = 6
	NumSymbols = 6

	// Two physical copies of each color×symbol pair.
	DeckSize = NumColors * NumSymbols * 2

	// Number of cosmetic cell background variants.
	NumBackgrounds = 4
)

// Stone is a placeable tile value with a color and a symbol, both in [0, 6).
type Stone struct {
	Color  int
	Symbol int
}

// Tile is a board cell: either empty or occupied by a stone.
// A tile never reverts from occupied to empty.
type Tile struct {
	Stone    Stone
	Occupied bool
}

// Empty returns an unoccupied tile.
func Empty() Tile {
	return Tile{}
}

// OccupiedBy returns a tile holding the given stone.
func OccupiedBy(s Stone) Tile {
	return Tile{Stone: s, Occupied: true}
}
